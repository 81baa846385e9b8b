// Package stats derives the headline figures shown alongside each report.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
)

// TopN is the number of agents listed in SummaryStats.TopDSAs
const TopN = 5

// FromTransactional summarizes Report B rows. Agent, customer and payment totals
// come from summary rows; match statuses are tallied over every customer row.
func FromTransactional(rows []domain.TransactionalRow) domain.SummaryStats {
	s := domain.SummaryStats{
		TotalPayment:      decimal.Zero,
		MatchStatusCounts: make(map[domain.MatchStatus]int),
		TopDSAs:           make([]domain.AgentTotal, 0),
	}

	agents := make(map[string]bool)
	var summaries []domain.AgentTotal

	for _, r := range rows {
		if r.Attribution.CustomerID != "" {
			s.MatchStatusCounts[r.Attribution.Status]++
		}

		if !r.Summary {
			continue
		}

		agents[r.Attribution.AgentID] = true
		s.TotalCustomers += r.CustomerCount
		s.TotalPayment = s.TotalPayment.Add(r.Payment)
		summaries = append(summaries, domain.AgentTotal{
			DSAMobile:     r.Attribution.AgentID,
			CustomerCount: r.CustomerCount,
			Payment:       r.Payment,
		})
	}
	s.TotalDSAs = len(agents)

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CustomerCount > summaries[j].CustomerCount
	})
	if len(summaries) > TopN {
		summaries = summaries[:TopN]
	}
	s.TopDSAs = append(s.TopDSAs, summaries...)

	return s
}

// FromQualification summarizes a Report A result: agents and onboarded customers in
// the rollup, qualified customer rows, and commission over the rollup's customers
func FromQualification(result *domain.QualificationResult) domain.QualificationStats {
	s := domain.QualificationStats{TotalPayment: decimal.Zero}
	if result == nil {
		return s
	}

	agents := make(map[string]bool)
	for _, row := range result.DSASummary {
		agents[row.DSAMobile] = true
		s.TotalCustomers += row.CustomerCount
	}
	s.TotalDSAs = len(agents)
	s.TotalPayment = domain.QualificationRate.Mul(decimal.NewFromInt(int64(s.TotalCustomers)))

	for _, row := range result.QualifiedCustomers {
		if row.Kind == domain.DetailRow && row.CustomerID != "" {
			s.QualifiedCustomers++
		}
	}

	return s
}
