package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-assistant/internal/types"
)

// Record is one user's resume document: a slug plus append-only version and
// comment histories. Records are created on first save and never deleted.
type Record struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	ProfileSlug string    `json:"profileSlug"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Version is one immutable snapshot in a record's history. VersionNumber
// values form the dense sequence 1..N in insertion order.
type Version struct {
	VersionNumber  int          `json:"versionNumber"`
	EditedBy       string       `json:"editedBy"`
	Data           types.Resume `json:"data"`
	PDFDownloadURL string       `json:"pdfDownloadUrl"`
	Timestamp      time.Time    `json:"timestamp"`
}

// VersionMeta is the metadata projection used for listings; it never carries
// the snapshot itself.
type VersionMeta struct {
	VersionNumber  int       `json:"versionNumber"`
	Timestamp      time.Time `json:"timestamp"`
	EditedBy       string    `json:"editedBy"`
	PDFDownloadURL string    `json:"pdfDownloadUrl"`
}

// Comment is one append-only reader comment on a record.
type Comment struct {
	Author    string    `json:"author,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveResult reports the outcome of appending a version.
type SaveResult struct {
	RecordID      uuid.UUID
	VersionNumber int
	ProfileSlug   string
}

// PublicProfile is the publication-gateway view of a record: the latest
// snapshot under its public slug.
type PublicProfile struct {
	Resume        types.Resume `json:"resume"`
	VersionNumber int          `json:"versionNumber"`
	Slug          string       `json:"slug"`
}
