package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn is matched by every SchemaError
var ErrMissingColumn = errors.New("missing column")

// MissingInputError reports mandatory source tables that were not supplied
type MissingInputError struct {
	Roles []Role
}

func (e *MissingInputError) Error() string {
	names := make([]string, len(e.Roles))
	for i, r := range e.Roles {
		names[i] = string(r)
	}
	return fmt.Sprintf("missing required files: %s", strings.Join(names, ", "))
}

// SchemaError reports a required canonical column that none of the accepted aliases resolved
type SchemaError struct {
	Role    Role
	Column  string
	Tried   []string
	Columns []string // header actually present
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: no suitable column for '%s' (tried %s); columns: [%s]",
		e.Role, e.Column, quoteAll(e.Tried), strings.Join(e.Columns, ", "))
}

// Unwrap lets errors.Is(err, ErrMissingColumn) match
func (e *SchemaError) Unwrap() error {
	return ErrMissingColumn
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
