package domain

import "github.com/shopspring/decimal"

// Commission per attributed customer for each report
var (
	QualificationRate = decimal.NewFromInt(40)
	TransactionalRate = decimal.NewFromInt(25)
)

// RowKind tells detail rows apart from the rollup and spacer rows interleaved with them
type RowKind int

const (
	DetailRow RowKind = iota
	SummaryRow
	SeparatorRow
)

// QualifiedCustomerRow is one line of the Report A qualified-customers table
type QualifiedCustomerRow struct {
	Kind         RowKind
	DSAMobile    string
	CustomerID   string
	FullName     string
	BoughtTicket bool
	DidScan      bool
	Deposited    bool
	TicketAmount decimal.Decimal
	ScanAmount   decimal.Decimal

	// Populated on SummaryRow only
	CustomerCount int
	DepositCount  int
	TicketCount   int
	ScanCount     int
	Payment       decimal.Decimal
}

// AgentSummaryRow is the Report A rollup over all customers an agent onboarded
type AgentSummaryRow struct {
	DSAMobile            string
	CustomerCount        int
	Deposited            int
	BoughtTicket         int
	DidScan              int
	TotalTicketAmount    decimal.Decimal
	TotalScanAmount      decimal.Decimal
	ConversionDeposits   int64
	HasConversion        bool
	TicketConversionRate decimal.Decimal
	ScanConversionRate   decimal.Decimal
	DepositConversion    decimal.Decimal
}

// CustomerActivityRow is one line of the all-customers table
type CustomerActivityRow struct {
	DSAMobile  string
	CustomerID string
	FullName   string
	Activity   ActivityRecord
}

// QualificationResult contains the result of a Report A run
type QualificationResult struct {
	RunID              string
	QualifiedCustomers []QualifiedCustomerRow
	DSASummary         []AgentSummaryRow
	HasConversion      bool
	AllCustomers       []CustomerActivityRow
	TicketDetails      Table
	ScanDetails        Table
	DepositDetails     Table
	Onboarding         Table
	Warnings           int
}

// TransactionalRow is one line of the Report B results table.
// Summary is true on the first row of each agent block.
type TransactionalRow struct {
	Attribution   TransactionAttribution
	Summary       bool
	CustomerCount int
	DepositCount  int
	TicketCount   int
	ScanCount     int
	Payment       decimal.Decimal
}

// AgentTotal is one entry of the top agents list
type AgentTotal struct {
	DSAMobile     string          `json:"dsa_mobile"`
	CustomerCount int             `json:"customer_count"`
	Payment       decimal.Decimal `json:"payment"`
}

// SummaryStats are the headline figures derived from Report B output
type SummaryStats struct {
	TotalDSAs         int                 `json:"total_dsas"`
	TotalCustomers    int                 `json:"total_customers"`
	TotalPayment      decimal.Decimal     `json:"total_payment"`
	MatchStatusCounts map[MatchStatus]int `json:"match_status_counts"`
	TopDSAs           []AgentTotal        `json:"top_dsas"`
}

// QualificationStats are the headline figures derived from Report A output
type QualificationStats struct {
	TotalDSAs          int             `json:"total_dsas"`
	TotalCustomers     int             `json:"total_customers"`
	QualifiedCustomers int             `json:"qualified_customers"`
	TotalPayment       decimal.Decimal `json:"total_payment"`
}

// TransactionalResult contains the result of a Report B run
type TransactionalResult struct {
	RunID         string
	Rows          []TransactionalRow
	CustomerNames map[string]string
	OnboardingMap map[string]string
	SummaryStats  SummaryStats
	Warnings      int
}
