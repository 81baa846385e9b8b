package domain

// MatchStatus classifies the transacting agent against the onboarding agent
type MatchStatus string

// Match statuses
const (
	StatusMatch        MatchStatus = "MATCH"
	StatusMismatch     MatchStatus = "MISMATCH"
	StatusNoOnboarding MatchStatus = "NO ONBOARDING"
)

// NotOnboarded is the onboarded_by value for customers without an onboarding record
const NotOnboarded = "NOT ONBOARDED"

// TransactionAttribution is one (agent, customer) pair where the agent processed the customer's deposit
type TransactionAttribution struct {
	AgentID      string
	CustomerID   string
	FullName     string
	DepositCount int
	BoughtTicket int
	DidScan      int
	OnboardedBy  string
	Status       MatchStatus
}

// Active reports whether the customer bought a ticket or scanned
func (a TransactionAttribution) Active() bool {
	return a.BoughtTicket > 0 || a.DidScan > 0
}
