package matcher_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/matcher"
	"github.com/tirasundara/dsa-reconciliation/internal/schema"
)

func table(columns []string, rows ...[]string) *domain.Table {
	t := domain.NewTable("test", columns...)
	for _, r := range rows {
		t.AppendRow(r...)
	}
	return &t
}

var (
	onboardingHeader = []string{"Mobile", "Full Name", "Customer Referrer Mobile"}
	depositHeader    = []string{"User Identifier", "Full Name", "Created By", "Transaction Type"}
	ticketHeader     = []string{"User Identifier", "Transaction Type", "amount"}
	scanHeader       = []string{"User Identifier", "Transaction Type", "Amount"}
)

func run(t *testing.T, in domain.Inputs) *domain.TransactionalResult {
	t.Helper()

	ds, err := schema.NewAdapter(schema.Transactional, nil).AdaptInputs(in)
	if err != nil {
		t.Fatalf("Failed to adapt inputs: %v", err)
	}

	result, err := matcher.NewMatcher(nil).Run(ds)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return result
}

func TestMatcher_SingleMatch(t *testing.T) {
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader, []string{"1234567", "Awa Jallow", "7777777"}),
		Deposit:    table(depositHeader, []string{"1234567", "", "7777777", "CR"}),
		Ticket:     table(ticketHeader, []string{"1234567", "DR", "50"}),
		Scan:       table(scanHeader),
	})

	if len(result.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(result.Rows))
	}

	row := result.Rows[0]
	if !row.Summary || row.Attribution.AgentID != "7777777" || row.Attribution.CustomerID != "1234567" {
		t.Errorf("Unexpected row: %+v", row)
	}
	if row.Attribution.Status != domain.StatusMatch {
		t.Errorf("Expected MATCH, got %s", row.Attribution.Status)
	}
	if row.Attribution.FullName != "Awa Jallow" {
		t.Errorf("Expected name from onboarding, got '%s'", row.Attribution.FullName)
	}
	if row.CustomerCount != 1 || row.DepositCount != 1 || row.TicketCount != 1 || row.ScanCount != 0 {
		t.Errorf("Unexpected totals: %+v", row)
	}
	if !row.Payment.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected payment 25, got %s", row.Payment)
	}

	if result.OnboardingMap["1234567"] != "7777777" {
		t.Errorf("Expected onboarding map entry, got %v", result.OnboardingMap)
	}
	if result.SummaryStats.MatchStatusCounts[domain.StatusMatch] != 1 {
		t.Errorf("Expected 1 MATCH in stats, got %v", result.SummaryStats.MatchStatusCounts)
	}
}

func TestMatcher_StatusClassification(t *testing.T) {
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader,
			[]string{"1000001", "Alice", "1111111"},
			[]string{"2000002", "Bob", "1111111"},
		),
		Deposit: table(depositHeader,
			[]string{"1000001", "", "1111111", "CR"}, // processed by the onboarding agent
			[]string{"2000002", "", "2222222", "CR"}, // processed by someone else
			[]string{"3000003", "Carol", "2222222", "CR"},
		),
		Ticket: table(ticketHeader,
			[]string{"1000001", "DR", "10"},
			[]string{"2000002", "DR", "10"},
			[]string{"3000003", "DR", "10"},
		),
		Scan: table(scanHeader),
	})

	statuses := make(map[string]domain.MatchStatus)
	onboardedBy := make(map[string]string)
	for _, r := range result.Rows {
		statuses[r.Attribution.CustomerID] = r.Attribution.Status
		onboardedBy[r.Attribution.CustomerID] = r.Attribution.OnboardedBy
	}

	expected := map[string]domain.MatchStatus{
		"1000001": domain.StatusMatch,
		"2000002": domain.StatusMismatch,
		"3000003": domain.StatusNoOnboarding,
	}
	for customer, want := range expected {
		if statuses[customer] != want {
			t.Errorf("Expected %s for %s, got %s", want, customer, statuses[customer])
		}
	}

	if onboardedBy["3000003"] != domain.NotOnboarded {
		t.Errorf("Expected onboarded_by '%s', got '%s'", domain.NotOnboarded, onboardedBy["3000003"])
	}
	if onboardedBy["2000002"] != "1111111" {
		t.Errorf("Expected onboarded_by 1111111, got '%s'", onboardedBy["2000002"])
	}
}

func TestMatcher_DropsAgentsWithoutActiveCustomers(t *testing.T) {
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader),
		Deposit: table(depositHeader,
			[]string{"1000001", "", "1111111", "CR"},
			[]string{"1000001", "", "1111111", "CR"},
			[]string{"2000002", "", "2222222", "CR"},
		),
		Ticket: table(ticketHeader, []string{"2000002", "DR", "10"}),
		Scan:   table(scanHeader),
	})

	for _, r := range result.Rows {
		if r.Attribution.AgentID == "1111111" {
			t.Errorf("Expected deposit-only agent 1111111 to be dropped, got row %+v", r)
		}
	}

	if len(result.Rows) != 1 || result.Rows[0].Attribution.AgentID != "2222222" {
		t.Errorf("Expected only agent 2222222, got %+v", result.Rows)
	}
}

func TestMatcher_TransactionTypeFilters(t *testing.T) {
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader),
		Deposit: table(depositHeader,
			[]string{"1000001", "", "1111111", "CR"},
			[]string{"2000002", "", "1111111", "DR"}, // not a deposit to the customer
		),
		Ticket: table(ticketHeader,
			[]string{"1000001", "CR", "10"}, // refund, not a purchase
			[]string{"2000002", "DR", "10"},
		),
		Scan: table(scanHeader, []string{"1000001", "DR", "5"}),
	})

	if len(result.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(result.Rows))
	}

	a := result.Rows[0].Attribution
	if a.CustomerID != "1000001" || a.BoughtTicket != 0 || a.DidScan != 1 {
		t.Errorf("Unexpected attribution: %+v", a)
	}
}

func TestMatcher_SelfProcessedDepositsIgnored(t *testing.T) {
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader),
		Deposit:    table(depositHeader, []string{"2207777777", "", "7777777", "CR"}),
		Ticket:     table(ticketHeader, []string{"7777777", "DR", "10"}),
		Scan:       table(scanHeader),
	})

	if len(result.Rows) != 0 {
		t.Errorf("Expected no rows for a self-processed deposit, got %+v", result.Rows)
	}
}

func TestMatcher_BlockLayout(t *testing.T) {
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader),
		Deposit: table(depositHeader,
			[]string{"3000003", "", "1111111", "CR"},
			[]string{"1000001", "", "1111111", "CR"},
			[]string{"1000001", "", "1111111", "CR"},
			[]string{"2000002", "", "1111111", "CR"}, // deposit only
			[]string{"4000004", "", "2222222", "CR"},
		),
		Ticket: table(ticketHeader,
			[]string{"1000001", "DR", "10"},
			[]string{"1000001", "DR", "10"},
			[]string{"4000004", "DR", "10"},
		),
		Scan: table(scanHeader, []string{"3000003", "DR", "5"}),
	})

	type expectedRow struct {
		agent    string
		customer string
		summary  bool
	}
	expected := []expectedRow{
		{"1111111", "3000003", true},
		{"1111111", "1000001", false},
		{"2222222", "4000004", true},
	}

	if len(result.Rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %+v", len(expected), len(result.Rows), result.Rows)
	}
	for i, want := range expected {
		got := result.Rows[i]
		if got.Attribution.AgentID != want.agent || got.Attribution.CustomerID != want.customer || got.Summary != want.summary {
			t.Errorf("Row %d: expected %+v, got %+v", i, want, got)
		}
	}

	first := result.Rows[0]
	if first.CustomerCount != 2 || first.DepositCount != 3 || first.TicketCount != 2 || first.ScanCount != 1 {
		t.Errorf("Unexpected block totals: %+v", first)
	}
	if !first.Payment.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected payment 50, got %s", first.Payment)
	}

	if result.Rows[1].CustomerCount != 0 || !result.Rows[1].Payment.IsZero() {
		t.Errorf("Expected blank totals on continuation rows, got %+v", result.Rows[1])
	}
}

func TestMatcher_ActivityCountsAgainstFirstRegisteredAgent(t *testing.T) {
	// 1111111 is registered before 2222222, but only picks the shared customer up later
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader),
		Deposit: table(depositHeader,
			[]string{"1000001", "", "1111111", "CR"},
			[]string{"5000005", "", "2222222", "CR"},
			[]string{"5000005", "", "1111111", "CR"},
		),
		Ticket: table(ticketHeader,
			[]string{"1000001", "DR", "10"},
			[]string{"5000005", "DR", "10"},
		),
		Scan: table(scanHeader),
	})

	if len(result.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d: %+v", len(result.Rows), result.Rows)
	}

	for _, r := range result.Rows {
		if r.Attribution.AgentID != "1111111" {
			t.Errorf("Expected all activity under 1111111, got row %+v", r)
		}
	}
	if result.Rows[1].Attribution.CustomerID != "5000005" || result.Rows[1].Attribution.BoughtTicket != 1 {
		t.Errorf("Unexpected shared customer row: %+v", result.Rows[1])
	}
}

func TestMatcher_NamesFallBackAcrossSources(t *testing.T) {
	result := run(t, domain.Inputs{
		Onboarding: table(onboardingHeader),
		Deposit:    table(depositHeader, []string{"1000001", "Lamin", "1111111", "CR"}, []string{"2000002", "", "1111111", "CR"}),
		Ticket:     table(ticketHeader, []string{"1000001", "DR", "10"}, []string{"2000002", "DR", "10"}),
		Scan:       table(scanHeader),
	})

	names := make(map[string]string)
	for _, r := range result.Rows {
		names[r.Attribution.CustomerID] = r.Attribution.FullName
	}

	if names["1000001"] != "Lamin" {
		t.Errorf("Expected name from deposit log, got '%s'", names["1000001"])
	}
	if names["2000002"] != domain.UnknownName {
		t.Errorf("Expected '%s' for a customer without a name, got '%s'", domain.UnknownName, names["2000002"])
	}
}
