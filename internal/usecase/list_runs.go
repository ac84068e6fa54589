package usecase

import (
	"sort"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/ports"
)

type ListRuns struct {
	catalog ports.ReportCatalog
}

func NewListRuns(catalog ports.ReportCatalog) *ListRuns {
	return &ListRuns{catalog: catalog}
}

// Execute returns persisted reports oldest first, keeping at most the last
// limit entries when limit > 0.
func (uc *ListRuns) Execute(limit int) ([]domain.ReportRef, error) {
	refs, err := uc.catalog.ListReports()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].StartedAt.Before(refs[j].StartedAt) })
	if limit > 0 && len(refs) > limit {
		refs = refs[len(refs)-limit:]
	}
	return refs, nil
}
