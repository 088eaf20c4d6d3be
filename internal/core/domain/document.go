package domain

import (
	"errors"
	"time"
)

var ErrDocumentNotFound = errors.New("document not found")
var ErrNoUpdateValues = errors.New("no update values provided")

// Document is the metadata record for an uploaded file. The file bytes
// themselves live in external storage; FilePath points at them.
type Document struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	FilePath    string    `json:"file_path" bson:"file_path"`
	UploadedBy  string    `json:"uploaded_by" bson:"uploaded_by"`
	Deleted     bool      `json:"-" bson:"deleted"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
