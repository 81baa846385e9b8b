// Package qualification attributes customers to the agent who onboarded them and
// pays the agent for every customer who deposited and then bought a ticket or scanned.
package qualification

import (
	"sort"

	"github.com/tirasundara/dsa-reconciliation/internal/activity"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/schema"
	"go.uber.org/zap"
)

// NotOnboardedAgent labels transacting customers that have no onboarding record
const NotOnboardedAgent = "Not Onboarded"

// Engine implements the QualificationEngine interface
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new Engine
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		logger: logger,
	}
}

// Run builds the qualified customers table, the agent rollup and the all-customers table
func (e *Engine) Run(ds domain.Dataset) (*domain.QualificationResult, error) {
	deposits := schema.Deposits(ds.Deposit)
	act := activity.Aggregate(schema.Tickets(ds.Ticket), schema.Scans(ds.Scan), deposits)

	records := schema.Onboarding(ds.Onboarding)
	onboarded := joinActivity(dedupeOnboarding(records), act)

	qualified := make([]domain.CustomerActivityRow, 0)
	for _, c := range onboarded {
		if c.DSAMobile != "" && c.Activity.Qualified() {
			qualified = append(qualified, c)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].DSAMobile != qualified[j].DSAMobile {
			return qualified[i].DSAMobile < qualified[j].DSAMobile
		}
		return qualified[i].CustomerID < qualified[j].CustomerID
	})

	var conversions []domain.ConversionRecord
	if ds.Conversion != nil {
		conversions = schema.Conversions(*ds.Conversion)
	}

	result := &domain.QualificationResult{
		QualifiedCustomers: buildQualifiedRows(qualified),
		DSASummary:         buildAgentRollup(onboarded, conversions, ds.Conversion != nil),
		HasConversion:      ds.Conversion != nil,
		AllCustomers:       allCustomers(onboarded, records, act),
		TicketDetails:      ds.Ticket,
		ScanDetails:        ds.Scan,
		DepositDetails:     ds.Deposit,
		Onboarding:         ds.Onboarding,
		Warnings:           ds.Warnings,
	}

	if len(qualified) == 0 {
		e.logger.Warn("no qualified customers found")
	}

	e.logger.Info("qualification analysis complete",
		zap.Int("agents", len(result.DSASummary)),
		zap.Int("onboarded_customers", len(onboarded)),
		zap.Int("qualified_customers", len(qualified)))

	return result, nil
}

// dedupeOnboarding keeps the first onboarding row per customer. Rows without a
// customer id and rows where the customer referred themselves are dropped first.
func dedupeOnboarding(records []domain.OnboardingRecord) []domain.OnboardingRecord {
	seen := make(map[string]bool, len(records))
	out := make([]domain.OnboardingRecord, 0, len(records))

	for _, r := range records {
		if r.CustomerMobile == "" || r.CustomerMobile == r.DSAMobile {
			continue
		}
		if seen[r.CustomerMobile] {
			continue
		}
		seen[r.CustomerMobile] = true
		out = append(out, r)
	}

	return out
}

func joinActivity(onboarding []domain.OnboardingRecord, act activity.Activity) []domain.CustomerActivityRow {
	rows := make([]domain.CustomerActivityRow, 0, len(onboarding))
	for _, r := range onboarding {
		rows = append(rows, domain.CustomerActivityRow{
			DSAMobile:  r.DSAMobile,
			CustomerID: r.CustomerMobile,
			FullName:   r.FullName,
			Activity:   act.Get(r.CustomerMobile),
		})
	}
	return rows
}

// buildQualifiedRows emits, per agent, one detail row per qualified customer, the
// agent's running totals on a trailing summary row, then a blank separator row.
// qualified must be sorted by agent.
func buildQualifiedRows(qualified []domain.CustomerActivityRow) []domain.QualifiedCustomerRow {
	rows := make([]domain.QualifiedCustomerRow, 0, len(qualified))

	for start := 0; start < len(qualified); {
		agent := qualified[start].DSAMobile
		summary := domain.QualifiedCustomerRow{Kind: domain.SummaryRow, DSAMobile: agent}

		end := start
		for ; end < len(qualified) && qualified[end].DSAMobile == agent; end++ {
			c := qualified[end]
			rows = append(rows, domain.QualifiedCustomerRow{
				Kind:         domain.DetailRow,
				DSAMobile:    agent,
				CustomerID:   c.CustomerID,
				FullName:     c.FullName,
				BoughtTicket: c.Activity.BoughtTicket,
				DidScan:      c.Activity.DidScan,
				Deposited:    c.Activity.Deposited,
				TicketAmount: c.Activity.TicketAmount,
				ScanAmount:   c.Activity.ScanAmount,
			})

			summary.CustomerCount++
			summary.DepositCount += flag(c.Activity.Deposited)
			summary.TicketCount += flag(c.Activity.BoughtTicket)
			summary.ScanCount += flag(c.Activity.DidScan)
		}

		summary.Payment = Payment(summary.CustomerCount)
		rows = append(rows, summary, domain.QualifiedCustomerRow{Kind: domain.SeparatorRow})
		start = end
	}

	return rows
}

// allCustomers lists every onboarded customer followed by the transacting customers
// that never appear in the onboarding log, in id order. Any onboarding row makes a
// customer known, including the ones dropped as self-referrals.
func allCustomers(onboarded []domain.CustomerActivityRow, records []domain.OnboardingRecord, act activity.Activity) []domain.CustomerActivityRow {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.CustomerMobile] = true
	}

	out := append(make([]domain.CustomerActivityRow, 0, len(onboarded)), onboarded...)
	for _, id := range act.Customers() {
		if known[id] {
			continue
		}
		out = append(out, domain.CustomerActivityRow{
			DSAMobile:  NotOnboardedAgent,
			CustomerID: id,
			FullName:   domain.UnknownName,
			Activity:   act.Get(id),
		})
	}

	return out
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
