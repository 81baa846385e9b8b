package report

import (
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/stats"
)

// Report names carried in a Bundle
const (
	ReportQualification = "qualification"
	ReportTransactional = "transactional"
)

// Bundle is a rendered report: its tables in sheet order plus headline statistics
type Bundle struct {
	RunID  string
	Report string
	Stats  any
	Sheets []domain.Table
}

// Sheet returns the table with the given name
func (b Bundle) Sheet(name string) (domain.Table, bool) {
	for _, s := range b.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return domain.Table{}, false
}

// QualificationBundle renders a Report A result followed by the adapted ticket,
// scan and deposit tables. The all-customers table is only included on request.
func QualificationBundle(r *domain.QualificationResult, withAllCustomers bool) Bundle {
	b := Bundle{
		RunID:  r.RunID,
		Report: ReportQualification,
		Stats:  stats.FromQualification(r),
		Sheets: []domain.Table{
			QualifiedTable(r.QualifiedCustomers),
			DSASummaryTable(r.DSASummary, r.HasConversion),
		},
	}
	if withAllCustomers {
		b.Sheets = append(b.Sheets, AllCustomersTable(r.AllCustomers))
	}

	b.Sheets = append(b.Sheets,
		renamed(r.TicketDetails, SheetTicketDetails),
		renamed(r.ScanDetails, SheetScanDetails),
		renamed(r.DepositDetails, SheetDepositDetails),
	)
	return b
}

func renamed(t domain.Table, name string) domain.Table {
	t.Name = name
	if t.Rows == nil {
		t.Rows = make([][]string, 0)
	}
	return t
}

// TransactionalBundle renders a Report B result
func TransactionalBundle(r *domain.TransactionalResult) Bundle {
	return Bundle{
		RunID:  r.RunID,
		Report: ReportTransactional,
		Stats:  r.SummaryStats,
		Sheets: []domain.Table{TransactionalTable(r.Rows)},
	}
}
