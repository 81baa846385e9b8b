package qualification_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/qualification"
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
	depositHeader    = []string{"User Identifier", "Created By", "Transaction Type"}
	ticketHeader     = []string{"User Identifier", "Transaction Type", "amount"}
	scanHeader       = []string{"User Identifier", "Transaction Type", "Amount"}
)

func dataset(t *testing.T, in domain.Inputs) domain.Dataset {
	t.Helper()

	ds, err := schema.NewAdapter(schema.Qualification, nil).AdaptInputs(in)
	if err != nil {
		t.Fatalf("Failed to adapt inputs: %v", err)
	}
	return ds
}

func TestEngine_SingleQualifiedCustomer(t *testing.T) {
	ds := dataset(t, domain.Inputs{
		Onboarding: table(onboardingHeader, []string{"1234567", "Awa Jallow", "7777777"}),
		Deposit:    table(depositHeader, []string{"1234567", "7777777", "CR"}),
		Ticket:     table(ticketHeader, []string{"1234567", "DR", "50"}),
		Scan:       table(scanHeader),
	})

	result, err := qualification.NewEngine(nil).Run(ds)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rows := result.QualifiedCustomers
	if len(rows) != 3 {
		t.Fatalf("Expected detail, summary and separator rows, got %d", len(rows))
	}

	detail := rows[0]
	if detail.Kind != domain.DetailRow || detail.CustomerID != "1234567" || detail.FullName != "Awa Jallow" {
		t.Errorf("Unexpected detail row: %+v", detail)
	}
	if !detail.Deposited || !detail.BoughtTicket || detail.DidScan {
		t.Errorf("Expected deposited and bought_ticket only, got %+v", detail)
	}
	if !detail.TicketAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected ticket amount 50, got %s", detail.TicketAmount)
	}

	summary := rows[1]
	if summary.Kind != domain.SummaryRow || summary.DSAMobile != "7777777" {
		t.Fatalf("Unexpected summary row: %+v", summary)
	}
	if summary.CustomerCount != 1 || summary.DepositCount != 1 || summary.TicketCount != 1 || summary.ScanCount != 0 {
		t.Errorf("Unexpected summary counts: %+v", summary)
	}
	if !summary.Payment.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Expected payment 40, got %s", summary.Payment)
	}

	if rows[2].Kind != domain.SeparatorRow {
		t.Errorf("Expected trailing separator row, got %+v", rows[2])
	}

	if len(result.DSASummary) != 1 {
		t.Fatalf("Expected 1 agent in rollup, got %d", len(result.DSASummary))
	}
	agent := result.DSASummary[0]
	if !agent.TicketConversionRate.Equal(decimal.NewFromInt(100)) || !agent.ScanConversionRate.IsZero() {
		t.Errorf("Unexpected conversion rates: %+v", agent)
	}
}

func TestEngine_GroupsAndRunningCounts(t *testing.T) {
	ds := dataset(t, domain.Inputs{
		Onboarding: table(onboardingHeader,
			[]string{"3000003", "Carol", "8888888"},
			[]string{"2000002", "Bob", "7777777"},
			[]string{"1000001", "Alice", "7777777"},
			[]string{"1000001", "Alice Again", "9999999"}, // duplicate, first row wins
			[]string{"4000004", "Dan", "7777777"},         // ticket without deposit
			[]string{"5000005", "Self", "5000005"},        // self-referral
			[]string{"6000006", "Eve", ""},                // no referring agent
		),
		Deposit: table(depositHeader,
			[]string{"1000001", "7777777", "CR"},
			[]string{"2000002", "7777777", "CR"},
			[]string{"3000003", "8888888", "CR"},
			[]string{"5000005", "7777777", "CR"},
			[]string{"6000006", "7777777", "CR"},
			[]string{"9090909", "7777777", "CR"},
		),
		Ticket: table(ticketHeader,
			[]string{"1000001", "DR", "50"},
			[]string{"4000004", "DR", "10"},
			[]string{"5000005", "DR", "10"},
			[]string{"6000006", "DR", "10"},
		),
		Scan: table(scanHeader,
			[]string{"2000002", "DR", "10"},
			[]string{"3000003", "DR", "5"},
		),
	})

	result, err := qualification.NewEngine(nil).Run(ds)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	type expectedRow struct {
		kind     domain.RowKind
		agent    string
		customer string
		count    int
	}
	expected := []expectedRow{
		{domain.DetailRow, "7777777", "1000001", 0},
		{domain.DetailRow, "7777777", "2000002", 0},
		{domain.SummaryRow, "7777777", "", 2},
		{domain.SeparatorRow, "", "", 0},
		{domain.DetailRow, "8888888", "3000003", 0},
		{domain.SummaryRow, "8888888", "", 1},
		{domain.SeparatorRow, "", "", 0},
	}

	rows := result.QualifiedCustomers
	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %+v", len(expected), len(rows), rows)
	}
	for i, want := range expected {
		got := rows[i]
		if got.Kind != want.kind || got.DSAMobile != want.agent || got.CustomerID != want.customer || got.CustomerCount != want.count {
			t.Errorf("Row %d: expected %+v, got %+v", i, want, got)
		}
	}

	first := rows[2]
	if first.DepositCount != 2 || first.TicketCount != 1 || first.ScanCount != 1 {
		t.Errorf("Unexpected running totals for 7777777: %+v", first)
	}
	if !first.Payment.Equal(decimal.NewFromInt(80)) {
		t.Errorf("Expected payment 80, got %s", first.Payment)
	}

	if len(result.DSASummary) != 2 {
		t.Fatalf("Expected 2 agents in rollup, got %d", len(result.DSASummary))
	}
	rollup := result.DSASummary[0]
	if rollup.DSAMobile != "7777777" || rollup.CustomerCount != 3 {
		t.Fatalf("Unexpected rollup row: %+v", rollup)
	}
	if rollup.Deposited != 2 || rollup.BoughtTicket != 2 || rollup.DidScan != 1 {
		t.Errorf("Unexpected rollup counts: %+v", rollup)
	}
	if !rollup.TicketConversionRate.Equal(decimal.RequireFromString("66.67")) {
		t.Errorf("Expected ticket rate 66.67, got %s", rollup.TicketConversionRate)
	}
	if !rollup.ScanConversionRate.Equal(decimal.RequireFromString("33.33")) {
		t.Errorf("Expected scan rate 33.33, got %s", rollup.ScanConversionRate)
	}
	if !rollup.TotalTicketAmount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Expected total ticket amount 60, got %s", rollup.TotalTicketAmount)
	}

	if len(result.AllCustomers) != 6 {
		t.Fatalf("Expected 6 customers overall, got %d", len(result.AllCustomers))
	}
	last := result.AllCustomers[5]
	if last.CustomerID != "9090909" || last.DSAMobile != qualification.NotOnboardedAgent || last.FullName != domain.UnknownName {
		t.Errorf("Unexpected non-onboarded row: %+v", last)
	}
	for _, c := range result.AllCustomers {
		if c.CustomerID == "5000005" {
			t.Errorf("Expected self-referred customer with an onboarding row not to be listed as not onboarded, got %+v", c)
		}
	}
}

func TestEngine_NoQualifiedCustomers(t *testing.T) {
	ds := dataset(t, domain.Inputs{
		Onboarding: table(onboardingHeader, []string{"1234567", "Awa", "7777777"}),
		Deposit:    table(depositHeader, []string{"1234567", "7777777", "CR"}),
		Ticket:     table(ticketHeader),
		Scan:       table(scanHeader),
	})

	result, err := qualification.NewEngine(nil).Run(ds)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.QualifiedCustomers == nil || len(result.QualifiedCustomers) != 0 {
		t.Errorf("Expected empty, non-nil qualified rows, got %v", result.QualifiedCustomers)
	}

	if len(result.DSASummary) != 1 {
		t.Fatalf("Expected rollup to be emitted, got %d rows", len(result.DSASummary))
	}
	if !result.DSASummary[0].DepositConversion.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected deposit rate 100, got %s", result.DSASummary[0].DepositConversion)
	}
	if !result.DSASummary[0].TicketConversionRate.IsZero() {
		t.Errorf("Expected ticket rate 0, got %s", result.DSASummary[0].TicketConversionRate)
	}
}

func TestEngine_ConversionJoin(t *testing.T) {
	ds := dataset(t, domain.Inputs{
		Onboarding: table(onboardingHeader,
			[]string{"1000001", "Alice", "7777777"},
			[]string{"2000002", "Bob", "8888888"},
		),
		Deposit:    table(depositHeader),
		Ticket:     table(ticketHeader),
		Scan:       table(scanHeader),
		Conversion: table([]string{"Agent Mobile", "Deposit Count"}, []string{"7777777", "3"}, []string{"7777777", "5"}),
	})

	result, err := qualification.NewEngine(nil).Run(ds)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.HasConversion {
		t.Fatal("Expected HasConversion")
	}

	first, second := result.DSASummary[0], result.DSASummary[1]
	if !first.HasConversion || first.ConversionDeposits != 3 {
		t.Errorf("Expected first reported deposit count 3 for 7777777, got %+v", first)
	}
	if second.HasConversion {
		t.Errorf("Expected no conversion figure for 8888888, got %+v", second)
	}
}

func TestConversionRate(t *testing.T) {
	tests := []struct {
		count, total int
		expected     string
	}{
		{0, 0, "0"},
		{1, 3, "33.33"},
		{2, 3, "66.67"},
		{5, 5, "100"},
	}

	for _, tt := range tests {
		got := qualification.ConversionRate(tt.count, tt.total)
		if !got.Equal(decimal.RequireFromString(tt.expected)) {
			t.Errorf("ConversionRate(%d, %d) = %s, expected %s", tt.count, tt.total, got, tt.expected)
		}
	}
}

func TestPayment(t *testing.T) {
	if got := qualification.Payment(3); !got.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Expected payment 120, got %s", got)
	}
}
