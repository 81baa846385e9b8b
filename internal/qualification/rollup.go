package qualification

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Payment is the commission owed for n qualified customers
func Payment(n int) decimal.Decimal {
	return domain.QualificationRate.Mul(decimal.NewFromInt(int64(n)))
}

// ConversionRate returns count/total as a percentage rounded to two places.
// A zero total is treated as one, so the rate is 0 rather than undefined.
func ConversionRate(count, total int) decimal.Decimal {
	if total == 0 {
		total = 1
	}
	return decimal.NewFromInt(int64(count)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).
		Round(2)
}

// buildAgentRollup summarizes every onboarded customer per agent, in agent order.
// Customers without a referring agent are not attributed to anyone.
func buildAgentRollup(onboarded []domain.CustomerActivityRow, conversions []domain.ConversionRecord, hasConversion bool) []domain.AgentSummaryRow {
	byAgent := make(map[string]*domain.AgentSummaryRow)
	var agents []string

	for _, c := range onboarded {
		if c.DSAMobile == "" {
			continue
		}

		row, ok := byAgent[c.DSAMobile]
		if !ok {
			row = &domain.AgentSummaryRow{DSAMobile: c.DSAMobile}
			byAgent[c.DSAMobile] = row
			agents = append(agents, c.DSAMobile)
		}

		row.CustomerCount++
		row.Deposited += flag(c.Activity.Deposited)
		row.BoughtTicket += flag(c.Activity.BoughtTicket)
		row.DidScan += flag(c.Activity.DidScan)
		row.TotalTicketAmount = row.TotalTicketAmount.Add(c.Activity.TicketAmount)
		row.TotalScanAmount = row.TotalScanAmount.Add(c.Activity.ScanAmount)
	}

	// First reported count per agent; the value is informational only
	reported := make(map[string]int64, len(conversions))
	for _, r := range conversions {
		if _, ok := reported[r.DSAMobile]; !ok && r.DSAMobile != "" {
			reported[r.DSAMobile] = r.DepositCount
		}
	}

	sort.Strings(agents)
	rollup := make([]domain.AgentSummaryRow, 0, len(agents))
	for _, agent := range agents {
		row := byAgent[agent]
		row.TicketConversionRate = ConversionRate(row.BoughtTicket, row.CustomerCount)
		row.ScanConversionRate = ConversionRate(row.DidScan, row.CustomerCount)
		row.DepositConversion = ConversionRate(row.Deposited, row.CustomerCount)

		if hasConversion {
			row.ConversionDeposits, row.HasConversion = reported[agent]
		}

		rollup = append(rollup, *row)
	}

	return rollup
}
