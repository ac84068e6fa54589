package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/primer/internal/domain"
)

type fakeCatalog struct {
	refs []domain.ReportRef
	err  error
}

func (c *fakeCatalog) ListReports() ([]domain.ReportRef, error) { return c.refs, c.err }

func TestListRuns_SortsAndLimits(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cat := &fakeCatalog{refs: []domain.ReportRef{
		{ID: "b", StartedAt: base.Add(2 * time.Hour)},
		{ID: "a", StartedAt: base},
		{ID: "c", StartedAt: base.Add(3 * time.Hour)},
	}}

	refs, err := NewListRuns(cat).Execute(2)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(refs) != 2 || refs[0].ID != "b" || refs[1].ID != "c" {
		t.Fatalf("unexpected refs: %+v", refs)
	}

	all, _ := NewListRuns(cat).Execute(0)
	if len(all) != 3 || all[0].ID != "a" {
		t.Fatalf("unexpected refs without limit: %+v", all)
	}
}

func TestListRuns_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := NewListRuns(&fakeCatalog{err: boom}).Execute(0); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
