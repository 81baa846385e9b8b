package domain

import "github.com/shopspring/decimal"

// Canonical column names shared by every role
const (
	ColDSAMobile       = "dsa_mobile"
	ColCustomerMobile  = "customer_mobile"
	ColFullName        = "full_name"
	ColCreatedBy       = "created_by"
	ColTransactionType = "transaction_type"
	ColTicketAmount    = "ticket_amount"
	ColScanAmount      = "scan_amount"
	ColEntityName      = "entity_name"
	ColDepositCount    = "deposit_count"
)

// Transaction type codes on deposit, ticket and scan exports
const (
	TxnCredit = "CR" // credit to the customer
	TxnDebit  = "DR" // debit from the customer
)

// UnknownName is used when no source carries a customer's name
const UnknownName = "Unknown"

// OnboardingRecord declares which DSA introduced a customer
type OnboardingRecord struct {
	DSAMobile      string
	CustomerMobile string
	FullName       string
}

// DepositRecord is one row of the deposit log
type DepositRecord struct {
	CustomerMobile  string
	CreatedBy       string // agent who processed the deposit, "" when the log does not say
	TransactionType string
	FullName        string
}

// TicketRecord is one row of the ticket purchase log
type TicketRecord struct {
	CustomerMobile  string
	Amount          decimal.Decimal
	EntityName      string
	HasEntity       bool
	TransactionType string
	FullName        string
}

// ScanRecord is one row of the scan-to-send log
type ScanRecord struct {
	CustomerMobile  string
	Amount          decimal.Decimal
	TransactionType string
	FullName        string
}

// ConversionRecord carries an agent's externally reported deposit count
type ConversionRecord struct {
	DSAMobile    string
	DepositCount int64
}

// ActivityRecord is the per-customer collapse of ticket, scan and deposit rows
type ActivityRecord struct {
	BoughtTicket bool
	TicketAmount decimal.Decimal
	TicketCount  int
	DidScan      bool
	ScanAmount   decimal.Decimal
	ScanCount    int
	Deposited    bool
	DepositCount int
}

// Qualified reports whether the customer deposited and then bought a ticket or scanned
func (a ActivityRecord) Qualified() bool {
	return a.Deposited && (a.BoughtTicket || a.DidScan)
}
