package usecase

import (
	"testing"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/registry"
)

func TestListExamples_DoesNotExecute(t *testing.T) {
	calls := 0
	r := registry.New()
	r.Suite("flow").Register("switch", func() error { calls++; return nil })
	r.Suite("scope").Register("closures", func() error { calls++; return nil })

	refs, err := NewListExamples().Execute(r, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if calls != 0 {
		t.Fatalf("listing must not execute bodies")
	}
}

func TestListExamples_Filter(t *testing.T) {
	r := registry.New()
	r.Suite("flow").Register("switch", nil)
	r.Suite("scope").Register("closures", nil)

	refs, err := NewListExamples().Execute(r, "closures")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 1 || refs[0].Name != "closures" || refs[0].Index != 1 {
		t.Fatalf("unexpected refs: %+v", refs)
	}

	if _, err := NewListExamples().Execute(r, "["); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid filter error, got %v", err)
	}
}
