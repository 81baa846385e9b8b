package domain

import "context"

// TableRepository defines the interface for loading one source table
type TableRepository interface {
	// Role returns the source role the table is loaded for
	Role() Role

	// Load reads the whole table into memory
	Load(ctx context.Context) (Table, error)
}

// Dataset holds the source tables after their columns were mapped onto canonical names
type Dataset struct {
	Onboarding Table
	Deposit    Table
	Ticket     Table
	Scan       Table
	Conversion *Table // nil when no conversion file was supplied

	// Warnings counts recovered malformed values across all tables
	Warnings int
}
