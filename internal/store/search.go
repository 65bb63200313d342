package store

import (
	"context"
	"database/sql"

	"github.com/creait/sessionkit/internal/model"
)

// SearchParams holds parameters for searching sessions.
type SearchParams struct {
	Query         string
	PublishedOnly bool
	Limit         int
}

// SearchResult wraps a session with the first block that matched, if any.
type SearchResult struct {
	model.Session
	MatchBlock *model.Block `json:"match_block,omitempty" yaml:"match_block,omitempty"`
}

// Search finds sessions whose title, summary or block text contains the query.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	like := "%" + p.Query + "%"
	query := `
		SELECT ` + sessionColumns + `, b.id, b.seq, b.type, b.title, b.description
		FROM sessions s
		LEFT JOIN blocks b ON b.session_id = s.id AND (b.title LIKE ? OR b.description LIKE ?)
		WHERE (s.title LIKE ? OR s.summary LIKE ? OR b.id IS NOT NULL)`
	args := []interface{}{like, like, like, like}
	if p.PublishedOnly {
		query += ` AND s.published = 1`
	}
	query += ` ORDER BY s.date ASC, s.id ASC, b.seq ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []SearchResult{}
	seen := map[string]bool{}
	for rows.Next() {
		var blockID, blockType, blockTitle, blockDesc sql.NullString
		var blockSeq sql.NullInt64
		sess, err := scanSession(rows, &blockID, &blockSeq, &blockType, &blockTitle, &blockDesc)
		if err != nil {
			return nil, err
		}
		if seen[sess.ID] {
			continue
		}
		if len(results) >= limit {
			break
		}
		seen[sess.ID] = true

		r := SearchResult{Session: sess}
		if blockID.Valid {
			r.MatchBlock = &model.Block{
				ID:          blockID.String,
				SessionID:   sess.ID,
				Order:       int(blockSeq.Int64),
				Type:        model.BlockType(blockType.String),
				Title:       blockTitle.String,
				Description: blockDesc.String,
			}
		}
		results = append(results, r)
	}

	return results, rows.Err()
}
