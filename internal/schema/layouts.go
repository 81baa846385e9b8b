package schema

import "github.com/tirasundara/dsa-reconciliation/internal/domain"

// Kind selects how a column's values are cleaned after it is renamed
type Kind int

const (
	KindText   Kind = iota // trimmed
	KindMobile             // trimmed and normalized to the local mobile form
	KindAmount             // thousands separators removed, coerced to a decimal, 0 when unparseable
	KindCount              // coerced to a whole number, 0 when unparseable
	KindName               // trimmed and NFC-normalized
	KindCode               // trimmed and upper-cased
)

// Column maps the accepted source headers onto one canonical column.
// Aliases are tried in order; the first present header wins.
type Column struct {
	Name     string
	Aliases  []string
	Kind     Kind
	Required bool

	// Default fills the column when no alias is present. Ignored for required columns.
	Default    string
	HasDefault bool
}

// Layout is the set of canonical columns a role is adapted to
type Layout struct {
	Role    domain.Role
	Columns []Column
}

// Profile holds the layouts one report variant reads its inputs with
type Profile struct {
	Name    string
	Layouts map[domain.Role]Layout
}

// Layout returns the layout for a role
func (p Profile) Layout(role domain.Role) (Layout, bool) {
	l, ok := p.Layouts[role]
	return l, ok
}

var onboardingColumns = []Column{
	{Name: domain.ColDSAMobile, Aliases: []string{"Customer Referrer Mobile"}, Kind: KindMobile, Required: true},
	{Name: domain.ColCustomerMobile, Aliases: []string{"Mobile"}, Kind: KindMobile, Required: true},
}

// Qualification reads the inputs of the onboarding-based report
var Qualification = Profile{
	Name: "qualification",
	Layouts: map[domain.Role]Layout{
		domain.RoleOnboarding: {
			Role: domain.RoleOnboarding,
			Columns: append(append([]Column(nil), onboardingColumns...),
				Column{
					Name:       domain.ColFullName,
					Aliases:    []string{"full_name", "Full Name", "Name"},
					Kind:       KindName,
					Default:    domain.UnknownName,
					HasDefault: true,
				}),
		},
		domain.RoleDeposit: {
			Role: domain.RoleDeposit,
			Columns: []Column{
				{Name: domain.ColCustomerMobile, Aliases: []string{"customer_mobile", "Customer Mobile", "Mobile", "User Identifier"}, Kind: KindMobile, Required: true},
				{Name: domain.ColCreatedBy, Aliases: []string{"Created By"}, Kind: KindMobile},
			},
		},
		domain.RoleTicket: {
			Role: domain.RoleTicket,
			Columns: []Column{
				{Name: domain.ColCustomerMobile, Aliases: []string{"created_by", "user_id", "User Identifier"}, Kind: KindMobile, Required: true},
				{Name: domain.ColTicketAmount, Aliases: []string{"amount"}, Kind: KindAmount, Required: true},
				{Name: domain.ColEntityName, Aliases: []string{"entity_name"}, Kind: KindText},
			},
		},
		domain.RoleScan: {
			Role: domain.RoleScan,
			Columns: []Column{
				{Name: domain.ColCustomerMobile, Aliases: []string{"Created By", "Customer Mobile", "Mobile", "User Identifier"}, Kind: KindMobile, Required: true},
				{Name: domain.ColScanAmount, Aliases: []string{"Amount"}, Kind: KindAmount, Required: true},
			},
		},
		domain.RoleConversion: {
			Role: domain.RoleConversion,
			Columns: []Column{
				{Name: domain.ColDSAMobile, Aliases: []string{"Agent Mobile"}, Kind: KindMobile, Required: true},
				{Name: domain.ColDepositCount, Aliases: []string{"Deposit Count"}, Kind: KindCount, Required: true},
			},
		},
	},
}

var nameColumn = Column{Name: domain.ColFullName, Aliases: []string{"Full Name", "full_name", "Name"}, Kind: KindName}

var transactionTypeColumn = Column{Name: domain.ColTransactionType, Aliases: []string{"Transaction Type", "transaction_type"}, Kind: KindCode, Required: true}

// Transactional reads the inputs of the deposit-attribution report. The transaction
// exports name the customer "User Identifier" and the processing agent "Created By".
var Transactional = Profile{
	Name: "transactional",
	Layouts: map[domain.Role]Layout{
		domain.RoleOnboarding: {
			Role:    domain.RoleOnboarding,
			Columns: append(append([]Column(nil), onboardingColumns...), nameColumn),
		},
		domain.RoleDeposit: {
			Role: domain.RoleDeposit,
			Columns: []Column{
				{Name: domain.ColCustomerMobile, Aliases: []string{"User Identifier", "customer_mobile", "Customer Mobile", "Mobile"}, Kind: KindMobile, Required: true},
				{Name: domain.ColCreatedBy, Aliases: []string{"Created By", "created_by"}, Kind: KindMobile, Required: true},
				transactionTypeColumn,
				nameColumn,
			},
		},
		domain.RoleTicket: {
			Role: domain.RoleTicket,
			Columns: []Column{
				{Name: domain.ColCustomerMobile, Aliases: []string{"User Identifier", "user_id"}, Kind: KindMobile, Required: true},
				transactionTypeColumn,
				{Name: domain.ColTicketAmount, Aliases: []string{"amount", "Amount"}, Kind: KindAmount},
				nameColumn,
			},
		},
		domain.RoleScan: {
			Role: domain.RoleScan,
			Columns: []Column{
				{Name: domain.ColCustomerMobile, Aliases: []string{"User Identifier", "Customer Mobile", "Mobile"}, Kind: KindMobile, Required: true},
				transactionTypeColumn,
				{Name: domain.ColScanAmount, Aliases: []string{"Amount", "amount"}, Kind: KindAmount},
				nameColumn,
			},
		},
	},
}
