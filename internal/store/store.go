// Package store provides the session storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/creait/sessionkit/internal/model"
)

var (
	// ErrNotFound is returned when a session id does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrAssetNotFound is returned when an asset id does not exist.
	ErrAssetNotFound = errors.New("asset not found")
)

// BlockParams holds one block of a new session.
type BlockParams struct {
	Order       int             `json:"order" yaml:"order"`
	Type        model.BlockType `json:"type" yaml:"type"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	StartTime   string          `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime     string          `json:"end_time,omitempty" yaml:"end_time,omitempty"`
}

// CreateParams holds parameters for storing a session.
type CreateParams struct {
	Title         string        `json:"title" yaml:"title"`
	Date          string        `json:"date" yaml:"date"` // YYYY-MM-DD
	Summary       string        `json:"summary" yaml:"summary"`
	Goals         []string      `json:"goals" yaml:"goals"`
	Prerequisites []string      `json:"prerequisites" yaml:"prerequisites"`
	Published     bool          `json:"published" yaml:"published"`
	Location      string        `json:"location,omitempty" yaml:"location,omitempty"`
	Presenter     string        `json:"presenter,omitempty" yaml:"presenter,omitempty"`
	Blocks        []BlockParams `json:"blocks" yaml:"blocks"`
}

// ListParams holds parameters for listing sessions.
type ListParams struct {
	PublishedOnly bool
	Limit         int
}

// Store defines the session storage interface.
type Store interface {
	// Create stores a session and its blocks in one transaction.
	Create(ctx context.Context, p CreateParams) (*model.Session, error)

	// Get retrieves a session with its blocks in order.
	Get(ctx context.Context, id string) (*model.Session, error)

	// List lists sessions by date, without blocks.
	List(ctx context.Context, p ListParams) ([]model.Session, error)

	// SetPublished toggles whether a session is publicly listed.
	SetPublished(ctx context.Context, id string, published bool) error

	// Rm deletes a session with its blocks, assets and submissions.
	Rm(ctx context.Context, id string) error

	// AddAsset records file metadata for a session.
	AddAsset(ctx context.Context, p AssetParams) (*model.Asset, error)

	// ListAssets lists asset metadata, optionally for one session.
	ListAssets(ctx context.Context, sessionID string) ([]model.Asset, error)

	// RmAsset deletes asset metadata. Submissions pointing at it keep their
	// other fields.
	RmAsset(ctx context.Context, id string) error

	// AddSubmission records a submission for a session.
	AddSubmission(ctx context.Context, p SubmissionParams) (*model.Submission, error)

	// ListSubmissions lists submissions, optionally for one session.
	ListSubmissions(ctx context.Context, sessionID string) ([]model.Submission, error)

	// Close closes the store.
	Close() error
}
