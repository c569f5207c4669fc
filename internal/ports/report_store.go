package ports

import "github.com/aalvaropc/libcoords/internal/domain"

// ReportStore persists evaluation reports and reads them back as generic
// JSON trees for querying.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
	LoadReport(id string) (any, error)
}
