package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/creait/sessionkit/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		date          TEXT NOT NULL,
		summary       TEXT NOT NULL,
		goals         TEXT NOT NULL,
		prerequisites TEXT NOT NULL,
		published     INTEGER NOT NULL DEFAULT 0,
		location      TEXT,
		presenter     TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
	CREATE INDEX IF NOT EXISTS idx_sessions_published ON sessions(published, date);

	CREATE TABLE IF NOT EXISTS blocks (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		type        TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT,
		start_time  TEXT,
		end_time    TEXT
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_blocks_session_seq ON blocks(session_id, seq);

	CREATE TABLE IF NOT EXISTS assets (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		kind        TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT,
		file_name   TEXT,
		mime_type   TEXT,
		size        INTEGER NOT NULL DEFAULT 0,
		storage_key TEXT,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_assets_session ON assets(session_id, created_at);

	CREATE TABLE IF NOT EXISTS submissions (
		id              TEXT PRIMARY KEY,
		session_id      TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		submitter_name  TEXT,
		submitter_email TEXT,
		github_url      TEXT,
		file_asset_id   TEXT REFERENCES assets(id) ON DELETE SET NULL,
		message         TEXT,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_session ON submissions(session_id, created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Create(ctx context.Context, p CreateParams) (*model.Session, error) {
	now := time.Now().UTC()
	id := s.newID()

	goals := p.Goals
	if goals == nil {
		goals = []string{}
	}
	prereqs := p.Prerequisites
	if prereqs == nil {
		prereqs = []string{}
	}
	goalsJSON, err := json.Marshal(goals)
	if err != nil {
		return nil, fmt.Errorf("marshal goals: %w", err)
	}
	prereqsJSON, err := json.Marshal(prereqs)
	if err != nil {
		return nil, fmt.Errorf("marshal prerequisites: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, title, date, summary, goals, prerequisites, published, location, presenter, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Title, p.Date, p.Summary, string(goalsJSON), string(prereqsJSON), boolInt(p.Published),
		nullString(p.Location), nullString(p.Presenter), now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	blocks := make([]model.Block, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		typ := b.Type
		if typ == "" {
			typ = model.BlockFlow
		}
		blk := model.Block{
			ID:          s.newID(),
			SessionID:   id,
			Order:       b.Order,
			Type:        typ,
			Title:       b.Title,
			Description: b.Description,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO blocks (id, session_id, seq, type, title, description, start_time, end_time)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			blk.ID, id, blk.Order, string(blk.Type), blk.Title,
			nullString(blk.Description), nullString(blk.StartTime), nullString(blk.EndTime))
		if err != nil {
			return nil, fmt.Errorf("insert block %d: %w", b.Order, err)
		}
		blocks = append(blocks, blk)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Session{
		ID:            id,
		Title:         p.Title,
		Date:          p.Date,
		Summary:       p.Summary,
		Goals:         goals,
		Prerequisites: prereqs,
		Published:     p.Published,
		Location:      p.Location,
		Presenter:     p.Presenter,
		CreatedAt:     now,
		UpdatedAt:     now,
		Blocks:        blocks,
		BlockCount:    len(blocks),
	}, nil
}

const sessionColumns = `s.id, s.title, s.date, s.summary, s.goals, s.prerequisites, s.published,
	s.location, s.presenter, s.created_at, s.updated_at,
	(SELECT COUNT(*) FROM blocks b WHERE b.session_id = s.id)`

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions s WHERE s.id = ?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	sess.Blocks, err = s.blocks(ctx, id)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SQLiteStore) blocks(ctx context.Context, sessionID string) ([]model.Block, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, seq, type, title, description, start_time, end_time
		 FROM blocks WHERE session_id = ? ORDER BY seq ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := []model.Block{}
	for rows.Next() {
		var b model.Block
		var typ string
		var desc, start, end sql.NullString
		if err := rows.Scan(&b.ID, &b.SessionID, &b.Order, &typ, &b.Title, &desc, &start, &end); err != nil {
			return nil, err
		}
		b.Type = model.BlockType(typ)
		b.Description = desc.String
		b.StartTime = start.String
		b.EndTime = end.String
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Session, error) {
	limit := p.Limit
	if limit == 0 {
		limit = 50
	}

	// A negative limit means no limit in SQLite.
	query := `SELECT ` + sessionColumns + ` FROM sessions s`
	var args []interface{}
	if p.PublishedOnly {
		query += ` WHERE s.published = 1`
	}
	query += ` ORDER BY s.date ASC, s.created_at ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []model.Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) SetPublished(ctx context.Context, id string, published bool) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET published = ?, updated_at = ? WHERE id = ?`,
		boolInt(published), now, id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func (s *SQLiteStore) Rm(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanSession reads sessionColumns followed by any extra columns.
func scanSession(row scanner, extra ...interface{}) (model.Session, error) {
	var sess model.Session
	var goalsJSON, prereqsJSON, createdAt, updatedAt string
	var published int
	var location, presenter sql.NullString

	dest := []interface{}{
		&sess.ID, &sess.Title, &sess.Date, &sess.Summary, &goalsJSON, &prereqsJSON,
		&published, &location, &presenter, &createdAt, &updatedAt, &sess.BlockCount,
	}
	err := row.Scan(append(dest, extra...)...)
	if err != nil {
		return sess, err
	}

	sess.Published = published != 0
	sess.Location = location.String
	sess.Presenter = presenter.String
	sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	sess.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	if err := json.Unmarshal([]byte(goalsJSON), &sess.Goals); err != nil {
		return sess, fmt.Errorf("decode goals of %s: %w", sess.ID, err)
	}
	if err := json.Unmarshal([]byte(prereqsJSON), &sess.Prerequisites); err != nil {
		return sess, fmt.Errorf("decode prerequisites of %s: %w", sess.ID, err)
	}

	return sess, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
