package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-assistant/internal/db"
	"github.com/jonathan/resume-assistant/internal/types"
)

// mockStore is an in-memory Store with the same append-only semantics as the
// real one: dense version numbers, slug precedence, editedBy fallback.
type mockStore struct {
	records map[string]*mockRecord
	failErr error // when set, every call fails with it
}

type mockRecord struct {
	id       uuid.UUID
	slug     string
	versions []db.Version
	comments []db.Comment
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[string]*mockRecord)}
}

func (m *mockStore) SaveVersion(_ context.Context, userID, editedBy string, snapshot types.Resume, pdfURL string) (*db.SaveResult, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}

	rec, ok := m.records[userID]
	if !ok {
		rec = &mockRecord{id: uuid.New()}
		m.records[userID] = rec
	}
	rec.slug = db.ResolveSlug(snapshot.Profile.PublicSlug, rec.slug, snapshot.Profile.Name)

	if editedBy == "" {
		editedBy = snapshot.Profile.Name
	}
	if editedBy == "" {
		editedBy = "Unknown"
	}

	rec.versions = append(rec.versions, db.Version{
		VersionNumber:  len(rec.versions) + 1,
		EditedBy:       editedBy,
		Data:           snapshot.Clone(),
		PDFDownloadURL: pdfURL,
		Timestamp:      time.Now(),
	})

	return &db.SaveResult{
		RecordID:      rec.id,
		VersionNumber: len(rec.versions),
		ProfileSlug:   rec.slug,
	}, nil
}

func (m *mockStore) ListVersions(_ context.Context, userID string) ([]db.VersionMeta, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}

	metas := []db.VersionMeta{}
	if rec, ok := m.records[userID]; ok {
		for _, v := range rec.versions {
			metas = append(metas, db.VersionMeta{
				VersionNumber:  v.VersionNumber,
				Timestamp:      v.Timestamp,
				EditedBy:       v.EditedBy,
				PDFDownloadURL: v.PDFDownloadURL,
			})
		}
	}
	return metas, nil
}

func (m *mockStore) GetVersion(_ context.Context, userID string, versionNumber *int) (*db.Version, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}

	rec, ok := m.records[userID]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	if versionNumber == nil {
		if len(rec.versions) == 0 {
			return nil, db.ErrVersionNotFound
		}
		v := rec.versions[len(rec.versions)-1]
		return &v, nil
	}
	for _, v := range rec.versions {
		if v.VersionNumber == *versionNumber {
			return &v, nil
		}
	}
	return nil, db.ErrVersionNotFound
}

func (m *mockStore) GetBySlug(_ context.Context, slug string) (*db.PublicProfile, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}

	for _, rec := range m.records {
		if rec.slug != slug || len(rec.versions) == 0 {
			continue
		}
		latest := rec.versions[len(rec.versions)-1]
		return &db.PublicProfile{
			Resume:        latest.Data,
			VersionNumber: latest.VersionNumber,
			Slug:          slug,
		}, nil
	}
	return nil, db.ErrSlugNotFound
}

func (m *mockStore) AddComment(_ context.Context, userID, author, message string) ([]db.Comment, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}

	rec, ok := m.records[userID]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	rec.comments = append(rec.comments, db.Comment{
		Author:    author,
		Message:   message,
		Timestamp: time.Now(),
	})
	return m.ListComments(context.Background(), userID)
}

func (m *mockStore) ListComments(_ context.Context, userID string) ([]db.Comment, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}

	comments := []db.Comment{}
	if rec, ok := m.records[userID]; ok {
		comments = append(comments, rec.comments...)
	}
	return comments, nil
}

func (m *mockStore) Close() {}
