package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/common"
	"github.com/propintel/brochure-extractor/internal/entity"
)

// Schema for the project_records table. Applied by Store.Init.
const Schema = `
CREATE TABLE IF NOT EXISTS project_records (
	id TEXT NOT NULL,
	profile TEXT NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	location TEXT NOT NULL,
	developer TEXT NOT NULL,
	record_json TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (id, profile)
);
CREATE INDEX IF NOT EXISTS idx_project_records_name ON project_records(name);
`

// RecordRow is one stored record with its provenance columns.
type RecordRow struct {
	ID        string
	Profile   constants.ExtractionProfile
	Name      string
	Type      constants.ProjectType
	Location  string
	UpdatedAt time.Time
	Record    entity.ProjectRecord
}

// Store persists project records. One row per (document id, profile):
// re-processing a document under the same profile overwrites its row.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by the given database connection.
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

// Init creates the project_records table if it doesn't exist.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return common.NewAppError("STORE_INIT", "create project_records", err)
	}
	return nil
}

// Upsert writes one record for the given profile.
func (s *Store) Upsert(ctx context.Context, profile constants.ExtractionProfile, rec entity.ProjectRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", rec.ID, err)
	}
	now := time.Now().UTC().Unix()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO project_records (id, profile, name, type, location, developer, record_json, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id, profile) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			location = excluded.location,
			developer = excluded.developer,
			record_json = excluded.record_json,
			error = excluded.error,
			updated_at = excluded.updated_at`,
		rec.ID, string(profile), rec.Project.Name, string(rec.Project.Type),
		rec.Project.Location, rec.Project.Developer, string(payload), rec.Error, now, now,
	)
	if err != nil {
		return common.NewAppError("STORE_UPSERT", fmt.Sprintf("upsert record %s", rec.ID), err)
	}

	s.logger.Debug("store.upsert.ok", "id", rec.ID, "profile", string(profile))
	return nil
}

// Get loads one record by document id and profile.
func (s *Store) Get(ctx context.Context, id string, profile constants.ExtractionProfile) (*RecordRow, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, profile, name, type, location, updated_at, record_json
		FROM project_records WHERE id = ? AND profile = ?`,
		id, string(profile),
	)
	rec, err := scanRecordRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.NewAppError("STORE_GET", fmt.Sprintf("load record %s", id), err)
	}
	return rec, nil
}

// List returns all stored records for a profile, ordered by id.
func (s *Store) List(ctx context.Context, profile constants.ExtractionProfile) ([]RecordRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile, name, type, location, updated_at, record_json
		FROM project_records WHERE profile = ? ORDER BY id`,
		string(profile),
	)
	if err != nil {
		return nil, common.NewAppError("STORE_LIST", "list records", err)
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		rec, err := scanRecordRow(rows)
		if err != nil {
			return nil, common.NewAppError("STORE_LIST", "scan record", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("STORE_LIST", "iterate records", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecordRow(r rowScanner) (*RecordRow, error) {
	var (
		row       RecordRow
		profile   string
		typ       string
		updatedAt int64
		payload   string
	)
	if err := r.Scan(&row.ID, &profile, &row.Name, &typ, &row.Location, &updatedAt, &payload); err != nil {
		return nil, err
	}
	row.Profile = constants.ExtractionProfile(profile)
	row.Type = constants.ProjectType(typ)
	row.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	if err := json.Unmarshal([]byte(payload), &row.Record); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", row.ID, err)
	}
	return &row, nil
}
