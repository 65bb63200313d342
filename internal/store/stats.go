package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath            string         `json:"db_path" yaml:"db_path"`
	DBSizeBytes       int64          `json:"db_size_bytes" yaml:"db_size_bytes"`
	TotalSessions     int            `json:"total_sessions" yaml:"total_sessions"`
	PublishedSessions int            `json:"published_sessions" yaml:"published_sessions"`
	TotalBlocks       int            `json:"total_blocks" yaml:"total_blocks"`
	BlockTypes        map[string]int `json:"block_types" yaml:"block_types"`
	TotalAssets       int            `json:"total_assets" yaml:"total_assets"`
	TotalSubmissions  int            `json:"total_submissions" yaml:"total_submissions"`
	FirstDate         string         `json:"first_date,omitempty" yaml:"first_date,omitempty"`
	LastDate          string         `json:"last_date,omitempty" yaml:"last_date,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, BlockTypes: map[string]int{}}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(published), 0), COALESCE(MIN(date), ''), COALESCE(MAX(date), '') FROM sessions`,
	).Scan(&st.TotalSessions, &st.PublishedSessions, &st.FirstDate, &st.LastDate)
	if err != nil {
		return st, err
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM assets), (SELECT COUNT(*) FROM submissions)`,
	).Scan(&st.TotalAssets, &st.TotalSubmissions)
	if err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT type, COUNT(*) FROM blocks GROUP BY type ORDER BY type`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return st, err
		}
		st.BlockTypes[typ] = n
		st.TotalBlocks += n
	}

	return st, rows.Err()
}
