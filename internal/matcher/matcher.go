// Package matcher attributes customers to the agent who processed their deposits
// and checks that agent against the one credited with onboarding them.
package matcher

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/dsa-reconciliation/internal/activity"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/identity"
	"github.com/tirasundara/dsa-reconciliation/internal/schema"
	"github.com/tirasundara/dsa-reconciliation/internal/stats"
	"go.uber.org/zap"
)

// Matcher implements the TransactionalMatcher interface
type Matcher struct {
	logger *zap.Logger
}

// NewMatcher creates a new Matcher
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Matcher{
		logger: logger,
	}
}

// Run attributes every credited deposit to the agent who processed it, counts the
// customer's debits against that agent and lays out one block per active agent
func (m *Matcher) Run(ds domain.Dataset) (*domain.TransactionalResult, error) {
	onboarding := schema.Onboarding(ds.Onboarding)
	deposits := schema.Deposits(ds.Deposit)
	tickets := schema.Tickets(ds.Ticket)
	scans := schema.Scans(ds.Scan)

	names, onboardingMap := identity.Resolve(onboarding, deposits, tickets, scans)
	m.logger.Info("identities resolved",
		zap.Int("customer_names", len(names)),
		zap.Int("onboarding_records", len(onboardingMap)))

	book := m.attribute(deposits, tickets, scans, names, onboardingMap)
	rows := buildRows(book)

	if len(rows) == 0 {
		m.logger.Warn("no agent-customer transactions with ticket or scan activity")
	}

	m.logger.Info("transactional analysis complete",
		zap.Int("agents", book.len()),
		zap.Int("rows", len(rows)))

	return &domain.TransactionalResult{
		Rows:          rows,
		CustomerNames: names,
		OnboardingMap: onboardingMap,
		SummaryStats:  stats.FromTransactional(rows),
		Warnings:      ds.Warnings,
	}, nil
}

func (m *Matcher) attribute(
	deposits []domain.DepositRecord,
	tickets []domain.TicketRecord,
	scans []domain.ScanRecord,
	names identity.Names,
	onboardingMap identity.OnboardingMap,
) *ledger {
	book := newLedger()

	selfProcessed := 0
	for _, r := range activity.Credits(deposits) {
		customer, agent := r.CustomerMobile, r.CreatedBy
		if customer == "" || agent == "" {
			continue
		}
		if customer == agent {
			selfProcessed++
			continue
		}

		rec := book.attribution(agent, customer, func() domain.TransactionAttribution {
			onboardedBy, ok := onboardingMap.Agent(customer)
			if !ok {
				onboardedBy = domain.NotOnboarded
			}
			return domain.TransactionAttribution{
				AgentID:     agent,
				CustomerID:  customer,
				FullName:    names.Name(customer),
				OnboardedBy: onboardedBy,
				Status:      provisionalStatus(ok),
			}
		})
		rec.DepositCount++
	}

	if selfProcessed > 0 {
		m.logger.Debug("self-processed deposits skipped", zap.Int("count", selfProcessed))
	}

	for _, r := range activity.TicketDebits(tickets) {
		if rec, ok := book.ownerOf(r.CustomerMobile); ok {
			rec.BoughtTicket++
		}
	}

	for _, r := range activity.ScanDebits(scans) {
		if rec, ok := book.ownerOf(r.CustomerMobile); ok {
			rec.DidScan++
		}
	}

	book.each(func(_ string, rec *domain.TransactionAttribution) {
		classify(rec)
	})

	return book
}

// Payment is the commission owed for n active customers
func Payment(n int) decimal.Decimal {
	return domain.TransactionalRate.Mul(decimal.NewFromInt(int64(n)))
}

// buildRows lays out one block per agent with at least one active customer. The
// first row of a block carries the agent's totals; agents with only deposit
// activity are left out.
func buildRows(book *ledger) []domain.TransactionalRow {
	rows := make([]domain.TransactionalRow, 0)

	for _, agent := range book.agents {
		var active []domain.TransactionAttribution
		for _, customer := range book.customers[agent] {
			if rec := book.records[agent][customer]; rec.Active() {
				active = append(active, *rec)
			}
		}

		if len(active) == 0 {
			continue
		}

		first := domain.TransactionalRow{
			Attribution:   active[0],
			Summary:       true,
			CustomerCount: len(active),
			Payment:       Payment(len(active)),
		}
		for _, a := range active {
			first.DepositCount += a.DepositCount
			first.TicketCount += a.BoughtTicket
			first.ScanCount += a.DidScan
		}

		rows = append(rows, first)
		for _, a := range active[1:] {
			rows = append(rows, domain.TransactionalRow{Attribution: a})
		}
	}

	return rows
}
