package domain

// Role identifies which source log a table was loaded from
type Role string

// Source roles
const (
	RoleOnboarding Role = "onboarding"
	RoleDeposit    Role = "deposit"
	RoleTicket     Role = "ticket"
	RoleScan       Role = "scan"
	RoleConversion Role = "conversion"
)

// MandatoryRoles lists the roles every analysis needs, in validation order
var MandatoryRoles = []Role{RoleOnboarding, RoleDeposit, RoleTicket, RoleScan}

// Table is a loaded tabular dataset: a header plus rows of string cells.
// An empty cell is treated as a missing value.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given header
func NewTable(name string, columns ...string) Table {
	return Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0),
	}
}

// Index returns the position of a column, or -1 when the table has no such column
func (t Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Has reports whether the table carries the column
func (t Table) Has(column string) bool {
	return t.Index(column) >= 0
}

// Value returns the cell of row under column, "" when either is absent
func (t Table) Value(row []string, column string) string {
	idx := t.Index(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Len returns the number of data rows
func (t Table) Len() int {
	return len(t.Rows)
}

// AppendRow adds a row, padding or truncating it to the header width
func (t *Table) AppendRow(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Clone returns a deep copy so callers can modify cells without touching the source.
// Rows of the copy are padded or truncated to the header width.
func (t Table) Clone() Table {
	out := Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = make([]string, len(t.Columns))
		copy(out.Rows[i], row)
	}
	return out
}

// Inputs holds the raw tables supplied for one analysis run
type Inputs struct {
	Onboarding *Table
	Deposit    *Table
	Ticket     *Table
	Scan       *Table
	Conversion *Table // optional
}

// Get returns the table for a role, nil when it was not supplied
func (in Inputs) Get(role Role) *Table {
	switch role {
	case RoleOnboarding:
		return in.Onboarding
	case RoleDeposit:
		return in.Deposit
	case RoleTicket:
		return in.Ticket
	case RoleScan:
		return in.Scan
	case RoleConversion:
		return in.Conversion
	}
	return nil
}

// Set stores the table for a role
func (in *Inputs) Set(role Role, t *Table) {
	switch role {
	case RoleOnboarding:
		in.Onboarding = t
	case RoleDeposit:
		in.Deposit = t
	case RoleTicket:
		in.Ticket = t
	case RoleScan:
		in.Scan = t
	case RoleConversion:
		in.Conversion = t
	}
}

// Validate checks that every mandatory table is present
func (in Inputs) Validate() error {
	var missing []Role
	for _, role := range MandatoryRoles {
		if in.Get(role) == nil {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		return &MissingInputError{Roles: missing}
	}
	return nil
}
