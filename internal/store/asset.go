package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/creait/sessionkit/internal/model"
)

// AssetParams holds parameters for recording asset metadata.
type AssetParams struct {
	SessionID   string          `json:"session_id" yaml:"session_id"`
	Kind        model.AssetKind `json:"kind" yaml:"kind"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	FileName    string          `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	MimeType    string          `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Size        int64           `json:"size" yaml:"size"`
	StorageKey  string          `json:"storage_key,omitempty" yaml:"storage_key,omitempty"`
}

// SubmissionParams holds parameters for recording a submission.
type SubmissionParams struct {
	SessionID      string `json:"session_id" yaml:"session_id"`
	SubmitterName  string `json:"submitter_name,omitempty" yaml:"submitter_name,omitempty"`
	SubmitterEmail string `json:"submitter_email,omitempty" yaml:"submitter_email,omitempty"`
	GithubURL      string `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	FileAssetID    string `json:"file_asset_id,omitempty" yaml:"file_asset_id,omitempty"`
	Message        string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (s *SQLiteStore) requireSession(ctx context.Context, id string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

func (s *SQLiteStore) AddAsset(ctx context.Context, p AssetParams) (*model.Asset, error) {
	if err := s.requireSession(ctx, p.SessionID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &model.Asset{
		ID:          s.newID(),
		SessionID:   p.SessionID,
		Kind:        p.Kind,
		Title:       p.Title,
		Description: p.Description,
		FileName:    p.FileName,
		MimeType:    p.MimeType,
		Size:        p.Size,
		StorageKey:  p.StorageKey,
		CreatedAt:   now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assets (id, session_id, kind, title, description, file_name, mime_type, size, storage_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, string(a.Kind), a.Title, nullString(a.Description), nullString(a.FileName),
		nullString(a.MimeType), a.Size, nullString(a.StorageKey), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}
	return a, nil
}

func (s *SQLiteStore) ListAssets(ctx context.Context, sessionID string) ([]model.Asset, error) {
	query := `SELECT id, session_id, kind, title, description, file_name, mime_type, size, storage_key, created_at FROM assets`
	var args []interface{}
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []model.Asset{}
	for rows.Next() {
		var a model.Asset
		var kind, createdAt string
		var desc, fileName, mimeType, key sql.NullString
		if err := rows.Scan(&a.ID, &a.SessionID, &kind, &a.Title, &desc, &fileName, &mimeType, &a.Size, &key, &createdAt); err != nil {
			return nil, err
		}
		a.Kind = model.AssetKind(kind)
		a.Description = desc.String
		a.FileName = fileName.String
		a.MimeType = mimeType.String
		a.StorageKey = key.String
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (s *SQLiteStore) RmAsset(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) AddSubmission(ctx context.Context, p SubmissionParams) (*model.Submission, error) {
	if err := s.requireSession(ctx, p.SessionID); err != nil {
		return nil, err
	}
	if p.FileAssetID != "" {
		var one int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM assets WHERE id = ?`, p.FileAssetID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, p.FileAssetID)
		}
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	sub := &model.Submission{
		ID:             s.newID(),
		SessionID:      p.SessionID,
		SubmitterName:  p.SubmitterName,
		SubmitterEmail: p.SubmitterEmail,
		GithubURL:      p.GithubURL,
		FileAssetID:    p.FileAssetID,
		Message:        p.Message,
		CreatedAt:      now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, session_id, submitter_name, submitter_email, github_url, file_asset_id, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.SessionID, nullString(sub.SubmitterName), nullString(sub.SubmitterEmail),
		nullString(sub.GithubURL), nullString(sub.FileAssetID), nullString(sub.Message), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

func (s *SQLiteStore) ListSubmissions(ctx context.Context, sessionID string) ([]model.Submission, error) {
	query := `SELECT id, session_id, submitter_name, submitter_email, github_url, file_asset_id, message, created_at FROM submissions`
	var args []interface{}
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []model.Submission{}
	for rows.Next() {
		var sub model.Submission
		var createdAt string
		var name, email, url, assetID, msg sql.NullString
		if err := rows.Scan(&sub.ID, &sub.SessionID, &name, &email, &url, &assetID, &msg, &createdAt); err != nil {
			return nil, err
		}
		sub.SubmitterName = name.String
		sub.SubmitterEmail = email.String
		sub.GithubURL = url.String
		sub.FileAssetID = assetID.String
		sub.Message = msg.String
		sub.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
