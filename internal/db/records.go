package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-assistant/internal/types"
)

// SaveVersion appends a full resume snapshot to the user's record, creating
// the record on first save. The record row is locked for the duration of the
// transaction so concurrent saves for the same user serialize and version
// numbers stay dense.
func (db *DB) SaveVersion(ctx context.Context, userID, editedBy string, snapshot types.Resume, pdfURL string) (*SaveResult, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin save: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		recordID     uuid.UUID
		existingSlug string
	)
	err = tx.QueryRow(ctx,
		`SELECT id, profile_slug FROM resume_records WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&recordID, &existingSlug)
	if errors.Is(err, pgx.ErrNoRows) {
		// First save. FOR UPDATE cannot lock a row that does not exist yet,
		// so two concurrent first saves both reach this insert; ON CONFLICT
		// plus a re-select serializes on whichever insert wins.
		newID := uuid.New()
		seedSlug := ResolveSlug(snapshot.Profile.PublicSlug, "", snapshot.Profile.Name)
		tag, execErr := tx.Exec(ctx,
			`INSERT INTO resume_records (id, user_id, profile_slug) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id) DO NOTHING`,
			newID, userID, seedSlug,
		)
		if execErr != nil {
			return nil, fmt.Errorf("failed to create record: %w", execErr)
		}
		if tag.RowsAffected() == 1 {
			recordID, existingSlug = newID, seedSlug
		} else if err := tx.QueryRow(ctx,
			`SELECT id, profile_slug FROM resume_records WHERE user_id = $1 FOR UPDATE`,
			userID,
		).Scan(&recordID, &existingSlug); err != nil {
			return nil, fmt.Errorf("failed to look up record: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up record: %w", err)
	}

	slug := ResolveSlug(snapshot.Profile.PublicSlug, existingSlug, snapshot.Profile.Name)
	if slug != existingSlug {
		if _, err := tx.Exec(ctx,
			`UPDATE resume_records SET profile_slug = $1 WHERE id = $2`,
			slug, recordID,
		); err != nil {
			return nil, fmt.Errorf("failed to update slug: %w", err)
		}
	}

	var versionNumber int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(version_number), 0) + 1 FROM resume_versions WHERE record_id = $1`,
		recordID,
	).Scan(&versionNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to assign version number: %w", err)
	}

	if editedBy == "" {
		editedBy = snapshot.Profile.Name
	}
	if editedBy == "" {
		editedBy = "Unknown"
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO resume_versions (record_id, version_number, edited_by, data, pdf_download_url)
		 VALUES ($1, $2, $3, $4, $5)`,
		recordID, versionNumber, editedBy, data, pdfURL,
	); err != nil {
		return nil, fmt.Errorf("failed to append version: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit save: %w", err)
	}

	return &SaveResult{
		RecordID:      recordID,
		VersionNumber: versionNumber,
		ProfileSlug:   slug,
	}, nil
}

// ListVersions returns version metadata for a user in insertion order. A user
// with no record gets an empty list, not an error.
func (db *DB) ListVersions(ctx context.Context, userID string) ([]VersionMeta, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT v.version_number, v.created_at, v.edited_by, v.pdf_download_url
		 FROM resume_versions v
		 JOIN resume_records r ON r.id = v.record_id
		 WHERE r.user_id = $1
		 ORDER BY v.version_number`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	versions := []VersionMeta{}
	for rows.Next() {
		var meta VersionMeta
		if err := rows.Scan(&meta.VersionNumber, &meta.Timestamp, &meta.EditedBy, &meta.PDFDownloadURL); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, meta)
	}
	return versions, rows.Err()
}

// GetVersion returns one version snapshot for a user: the numbered version
// when versionNumber is non-nil, otherwise the version with the highest
// number. An unknown user yields ErrRecordNotFound; a known user without the
// requested version yields ErrVersionNotFound.
func (db *DB) GetVersion(ctx context.Context, userID string, versionNumber *int) (*Version, error) {
	var recordID uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM resume_records WHERE user_id = $1`,
		userID,
	).Scan(&recordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up record: %w", err)
	}

	var row pgx.Row
	if versionNumber != nil {
		row = db.pool.QueryRow(ctx,
			`SELECT version_number, edited_by, data, pdf_download_url, created_at
			 FROM resume_versions WHERE record_id = $1 AND version_number = $2`,
			recordID, *versionNumber,
		)
	} else {
		row = db.pool.QueryRow(ctx,
			`SELECT version_number, edited_by, data, pdf_download_url, created_at
			 FROM resume_versions WHERE record_id = $1
			 ORDER BY version_number DESC LIMIT 1`,
			recordID,
		)
	}

	version, err := scanVersion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// GetBySlug resolves a public slug to the latest snapshot of the owning
// record. Read-only; any caller who knows the slug may read it.
func (db *DB) GetBySlug(ctx context.Context, slug string) (*PublicProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT v.version_number, v.edited_by, v.data, v.pdf_download_url, v.created_at
		 FROM resume_versions v
		 JOIN resume_records r ON r.id = v.record_id
		 WHERE r.profile_slug = $1
		 ORDER BY v.version_number DESC LIMIT 1`,
		slug,
	)

	version, err := scanVersion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSlugNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}

	return &PublicProfile{
		Resume:        version.Data,
		VersionNumber: version.VersionNumber,
		Slug:          slug,
	}, nil
}

// AddComment appends a comment to an existing record and returns the full
// comment list. Commenting requires the record to exist.
func (db *DB) AddComment(ctx context.Context, userID, author, message string) ([]Comment, error) {
	var recordID uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM resume_records WHERE user_id = $1`,
		userID,
	).Scan(&recordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up record: %w", err)
	}

	if _, err := db.pool.Exec(ctx,
		`INSERT INTO resume_comments (record_id, author, message) VALUES ($1, $2, $3)`,
		recordID, author, message,
	); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return db.ListComments(ctx, userID)
}

// ListComments returns a record's comments in insertion order; empty list for
// an unknown user.
func (db *DB) ListComments(ctx context.Context, userID string) ([]Comment, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT c.author, c.message, c.created_at
		 FROM resume_comments c
		 JOIN resume_records r ON r.id = c.record_id
		 WHERE r.user_id = $1
		 ORDER BY c.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.Author, &c.Message, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func scanVersion(row pgx.Row) (*Version, error) {
	var (
		version Version
		data    []byte
	)
	if err := row.Scan(&version.VersionNumber, &version.EditedBy, &data, &version.PDFDownloadURL, &version.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &version.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &version, nil
}
