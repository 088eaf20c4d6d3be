package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/docuvault/ingestion-platform/internal/core/domain"
)

const documentsCollection = "documents"

// MongoDocumentRepository persists document metadata. Soft-deleted records
// stay in the collection but are excluded from every read.
type MongoDocumentRepository struct {
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *MongoDocumentRepository {
	return &MongoDocumentRepository{coll: db.Collection(documentsCollection)}
}

func (r *MongoDocumentRepository) Insert(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return doc, nil
}

func (r *MongoDocumentRepository) FindByID(ctx context.Context, id string) (*domain.Document, error) {
	var doc domain.Document
	filter := bson.M{"_id": id, "deleted": false}
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return &doc, nil
}

func (r *MongoDocumentRepository) FindAll(ctx context.Context) ([]*domain.Document, error) {
	cur, err := r.coll.Find(ctx, bson.M{"deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []*domain.Document
	for cur.Next(ctx) {
		var doc domain.Document
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = append(docs, &doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (r *MongoDocumentRepository) Update(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	update := bson.M{"$set": bson.M{
		"title":       doc.Title,
		"description": doc.Description,
		"deleted":     doc.Deleted,
		"updated_at":  doc.UpdatedAt,
	}}
	res, err := r.coll.UpdateByID(ctx, doc.ID, update)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}
