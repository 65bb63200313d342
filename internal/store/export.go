package store

import (
	"context"

	"github.com/creait/sessionkit/internal/model"
)

// ExportAll returns every session with its blocks, ordered by date.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Session, error) {
	sessions, err := s.List(ctx, ListParams{Limit: -1})
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Blocks, err = s.blocks(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// Import stores sessions from an export. Each session gets a fresh id.
func (s *SQLiteStore) Import(ctx context.Context, sessions []model.Session) (int, error) {
	imported := 0
	for _, sess := range sessions {
		blocks := make([]BlockParams, 0, len(sess.Blocks))
		for _, b := range sess.Blocks {
			blocks = append(blocks, BlockParams{
				Order:       b.Order,
				Type:        b.Type,
				Title:       b.Title,
				Description: b.Description,
				StartTime:   b.StartTime,
				EndTime:     b.EndTime,
			})
		}
		_, err := s.Create(ctx, CreateParams{
			Title:         sess.Title,
			Date:          sess.Date,
			Summary:       sess.Summary,
			Goals:         sess.Goals,
			Prerequisites: sess.Prerequisites,
			Published:     sess.Published,
			Location:      sess.Location,
			Presenter:     sess.Presenter,
			Blocks:        blocks,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
