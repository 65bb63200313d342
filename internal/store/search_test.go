package store

import (
	"context"
	"testing"

	"github.com/creait/sessionkit/internal/model"
)

func TestSearchSessionFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := sampleParams("프롬프트 엔지니어링", "2026-03-09")
	s.Create(ctx, p)
	s.Create(ctx, sampleParams("에이전트", "2026-03-16"))

	results, err := s.Search(ctx, SearchParams{Query: "프롬프트"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "프롬프트 엔지니어링" {
		t.Errorf("unexpected result %q", results[0].Title)
	}
	if results[0].MatchBlock != nil {
		t.Error("expected no block match for a title hit")
	}
}

func TestSearchBlockText(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := sampleParams("세션", "2026-03-09")
	p.Blocks = append(p.Blocks,
		BlockParams{Order: 2, Type: model.BlockFlow, Title: "실습", Description: "Chain-of-Thought 실습"},
		BlockParams{Order: 3, Type: model.BlockFlow, Title: "복습", Description: "Chain-of-Thought 복습"},
	)
	s.Create(ctx, p)

	results, err := s.Search(ctx, SearchParams{Query: "Chain-of-Thought"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one deduplicated result, got %d", len(results))
	}
	mb := results[0].MatchBlock
	if mb == nil {
		t.Fatal("expected a matching block")
	}
	if mb.Title != "실습" || mb.Order != 2 {
		t.Errorf("expected first matching block, got %+v", mb)
	}
}

func TestSearchPublishedOnlyAndLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, _ := s.Create(ctx, sampleParams("공통 A", "2026-03-09"))
	s.Create(ctx, sampleParams("공통 B", "2026-03-16"))
	s.Create(ctx, sampleParams("공통 C", "2026-03-23"))
	s.SetPublished(ctx, a.ID, true)

	pub, _ := s.Search(ctx, SearchParams{Query: "공통", PublishedOnly: true})
	if len(pub) != 1 || pub[0].ID != a.ID {
		t.Errorf("expected only published session, got %d results", len(pub))
	}

	limited, _ := s.Search(ctx, SearchParams{Query: "공통", Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected 2 results, got %d", len(limited))
	}
}

func TestSearchNoMatch(t *testing.T) {
	s := newTestStore(t)
	s.Create(context.Background(), sampleParams("세션", "2026-03-09"))

	results, err := s.Search(context.Background(), SearchParams{Query: "없는 단어"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
