package session

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/creait/sessionkit/internal/config"
	"github.com/creait/sessionkit/internal/model"
	"github.com/creait/sessionkit/internal/parser"
	"github.com/creait/sessionkit/internal/store"
)

// Creator persists a new session.
type Creator interface {
	Create(ctx context.Context, p store.CreateParams) (*model.Session, error)
}

// ImportOptions carries what the document itself does not say.
type ImportOptions struct {
	Day       int
	Date      string // overrides the parsed date when set
	Published bool
	Location  string
	Presenter string
}

// Importer runs the parse, validate, decorate and store steps for one document.
type Importer struct {
	store       Creator
	log         zerolog.Logger
	titleFormat string
	now         func() time.Time
}

// NewImporter returns an Importer writing to c.
func NewImporter(c Creator, log zerolog.Logger, titleFormat string) *Importer {
	if titleFormat == "" {
		titleFormat = config.DefaultTitleFormat
	}
	return &Importer{
		store:       c,
		log:         log.With().Str("component", "importer").Logger(),
		titleFormat: titleFormat,
		now:         time.Now,
	}
}

// Prepare parses raw and builds the create request without storing anything.
// The parsed draft is returned even when validation fails.
func (im *Importer) Prepare(raw string, opts ImportOptions) (parser.ParsedSession, store.CreateParams, error) {
	parsed := parser.ParseAt(raw, im.now())
	if opts.Date != "" {
		parsed.Date = opts.Date
	}

	if err := Validate(parsed); err != nil {
		return parsed, store.CreateParams{}, err
	}

	title, err := DecorateTitle(im.titleFormat, opts.Day, parsed.Title)
	if err != nil {
		return parsed, store.CreateParams{}, err
	}

	return parsed, Build(parsed, title, opts), nil
}

// Import parses, validates and stores one session document.
func (im *Importer) Import(ctx context.Context, raw string, opts ImportOptions) (*model.Session, error) {
	parsed, params, err := im.Prepare(raw, opts)
	if err != nil {
		im.log.Warn().Err(err).Str("title", parsed.Title).Int("day", opts.Day).Msg("session rejected")
		return nil, err
	}

	sess, err := im.store.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	im.log.Info().
		Str("id", sess.ID).
		Str("date", sess.Date).
		Int("blocks", len(sess.Blocks)).
		Bool("published", sess.Published).
		Msg("session imported")
	return sess, nil
}

// Build maps a validated draft onto a store create request.
func Build(parsed parser.ParsedSession, title string, opts ImportOptions) store.CreateParams {
	blocks := make([]store.BlockParams, 0, len(parsed.Blocks))
	for _, b := range parsed.Blocks {
		blocks = append(blocks, store.BlockParams{
			Order:       b.Order,
			Type:        b.Type,
			Title:       b.Title,
			Description: b.Description,
		})
	}

	return store.CreateParams{
		Title:         title,
		Date:          parsed.Date,
		Summary:       parsed.Summary,
		Goals:         append([]string{}, parsed.Goals...),
		Prerequisites: append([]string{}, parsed.Prerequisites...),
		Published:     opts.Published,
		Location:      opts.Location,
		Presenter:     opts.Presenter,
		Blocks:        blocks,
	}
}
