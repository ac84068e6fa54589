package ports

import "github.com/aalvaropc/primer/internal/domain"

// ReportStore persists run reports for later inspection.
type ReportStore interface {
	SaveReport(report domain.RunReport) (id string, err error)
}

// ReportCatalog lists previously persisted reports.
type ReportCatalog interface {
	ListReports() ([]domain.ReportRef, error)
}
