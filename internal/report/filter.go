package report

import (
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/stats"
	"github.com/tirasundara/dsa-reconciliation/pkg/mobile"
)

// AgentFilter is a set of agent ids a report is narrowed to. A nil filter keeps everything.
type AgentFilter map[string]bool

// ParseAgentFilter splits a comma-separated list of agent ids. Entries are
// normalized like the dsa_mobile column; blank entries are ignored.
func ParseAgentFilter(filter string) AgentFilter {
	var f AgentFilter
	for _, id := range mobile.NormalizeList(filter) {
		if f == nil {
			f = make(AgentFilter)
		}
		f[id] = true
	}
	return f
}

// Keep reports whether rows of the agent survive the filter
func (f AgentFilter) Keep(agent string) bool {
	return f == nil || f[agent]
}

// FilterByAgent keeps the rows whose dsa_mobile is listed in filter. Tables without
// a dsa_mobile column and empty filters pass through unchanged.
func FilterByAgent(t domain.Table, filter string) domain.Table {
	f := ParseAgentFilter(filter)
	idx := t.Index(domain.ColDSAMobile)
	if f == nil || idx < 0 {
		return t
	}

	out := domain.NewTable(t.Name, t.Columns...)
	for _, row := range t.Rows {
		if idx < len(row) && f[row[idx]] {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// FilterQualification returns a copy of r narrowed to the agents listed in filter.
// The separator after a kept agent block is kept with it. Detail tables are
// filtered on dsa_mobile when they carry it.
func FilterQualification(r *domain.QualificationResult, filter string) *domain.QualificationResult {
	f := ParseAgentFilter(filter)
	if r == nil || f == nil {
		return r
	}

	out := *r

	out.QualifiedCustomers = make([]domain.QualifiedCustomerRow, 0)
	keepSeparator := false
	for _, row := range r.QualifiedCustomers {
		if row.Kind == domain.SeparatorRow {
			if keepSeparator {
				out.QualifiedCustomers = append(out.QualifiedCustomers, row)
			}
			keepSeparator = false
			continue
		}
		if f.Keep(row.DSAMobile) {
			out.QualifiedCustomers = append(out.QualifiedCustomers, row)
			keepSeparator = row.Kind == domain.SummaryRow
		}
	}

	out.DSASummary = make([]domain.AgentSummaryRow, 0)
	for _, row := range r.DSASummary {
		if f.Keep(row.DSAMobile) {
			out.DSASummary = append(out.DSASummary, row)
		}
	}

	out.AllCustomers = make([]domain.CustomerActivityRow, 0)
	for _, row := range r.AllCustomers {
		if f.Keep(row.DSAMobile) {
			out.AllCustomers = append(out.AllCustomers, row)
		}
	}

	out.TicketDetails = FilterByAgent(r.TicketDetails, filter)
	out.ScanDetails = FilterByAgent(r.ScanDetails, filter)
	out.DepositDetails = FilterByAgent(r.DepositDetails, filter)
	out.Onboarding = FilterByAgent(r.Onboarding, filter)

	return &out
}

// FilterTransactional returns a copy of r narrowed to the agents listed in filter,
// with the summary statistics recomputed over the remaining rows
func FilterTransactional(r *domain.TransactionalResult, filter string) *domain.TransactionalResult {
	f := ParseAgentFilter(filter)
	if r == nil || f == nil {
		return r
	}

	out := *r
	out.Rows = make([]domain.TransactionalRow, 0)
	for _, row := range r.Rows {
		if f.Keep(row.Attribution.AgentID) {
			out.Rows = append(out.Rows, row)
		}
	}
	out.SummaryStats = stats.FromTransactional(out.Rows)

	return &out
}
