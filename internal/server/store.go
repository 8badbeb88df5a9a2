package server

import (
	"context"

	"github.com/jonathan/resume-assistant/internal/db"
	"github.com/jonathan/resume-assistant/internal/types"
)

// Store is the record persistence the handlers depend on. *db.DB implements
// it; tests substitute an in-memory store.
type Store interface {
	SaveVersion(ctx context.Context, userID, editedBy string, snapshot types.Resume, pdfURL string) (*db.SaveResult, error)
	ListVersions(ctx context.Context, userID string) ([]db.VersionMeta, error)
	GetVersion(ctx context.Context, userID string, versionNumber *int) (*db.Version, error)
	GetBySlug(ctx context.Context, slug string) (*db.PublicProfile, error)
	AddComment(ctx context.Context, userID, author, message string) ([]db.Comment, error)
	ListComments(ctx context.Context, userID string) ([]db.Comment, error)
	Close()
}
