package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
	"github.com/docuvault/ingestion-platform/internal/core/ports"
)

// DocumentService manages document metadata. File contents are stored by the
// upload layer before this service is called.
type DocumentService struct {
	repo   ports.DocumentRepository
	logger zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, logger zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, logger: logger}
}

func (s *DocumentService) Create(ctx context.Context, input ports.CreateDocumentInput) (*domain.Document, error) {
	now := time.Now().UTC()
	doc := &domain.Document{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		FilePath:    input.FilePath,
		UploadedBy:  input.UploadedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("document_id", created.ID).Str("uploaded_by", created.UploadedBy).Msg("document created")
	return created, nil
}

func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DocumentService) List(ctx context.Context) ([]*domain.Document, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial patch. A patch with no fields set is rejected.
func (s *DocumentService) Update(ctx context.Context, id string, patch ports.UpdateDocumentInput) (*domain.Document, error) {
	if patch.Title == nil && patch.Description == nil {
		return nil, domain.ErrNoUpdateValues
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Description != nil {
		doc.Description = *patch.Description
	}
	doc.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, doc)
}

// Delete soft-deletes: the record stays in storage but disappears from reads.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	doc.Deleted = true
	doc.UpdatedAt = time.Now().UTC()

	if _, err := s.repo.Update(ctx, doc); err != nil {
		return err
	}

	s.logger.Info().Str("document_id", id).Msg("document deleted")
	return nil
}
