// Package schema maps loosely named source columns onto the canonical schema the
// engines read, cleaning identifiers, names and amounts on the way.
package schema

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/pkg/mobile"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Adapter renames and cleans source tables according to a profile
type Adapter struct {
	profile Profile
	logger  *zap.Logger
}

// NewAdapter creates an Adapter for the given profile
func NewAdapter(profile Profile, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Adapter{
		profile: profile,
		logger:  logger,
	}
}

// Adapt returns a copy of t whose resolved columns carry their canonical names and
// cleaned values. Columns the layout does not mention are kept untouched. The
// returned count is the number of malformed values that were coerced to zero.
func (a *Adapter) Adapt(t domain.Table, role domain.Role) (domain.Table, int, error) {
	layout, ok := a.profile.Layout(role)
	if !ok {
		return domain.Table{}, 0, fmt.Errorf("profile %s has no layout for %s", a.profile.Name, role)
	}

	out := t.Clone()
	out.Columns = trimAll(out.Columns)
	warnings := 0

	for _, col := range layout.Columns {
		idx := resolveColumn(out.Columns, col.Aliases)

		if idx < 0 {
			switch {
			case col.Required:
				return domain.Table{}, 0, &domain.SchemaError{
					Role:    role,
					Column:  col.Name,
					Tried:   col.Aliases,
					Columns: t.Columns,
				}
			case col.HasDefault:
				appendConstant(&out, col.Name, col.Default)
			}
			continue
		}

		renameColumn(&out, idx, col.Name)

		malformed := 0
		for _, row := range out.Rows {
			var bad bool
			row[idx], bad = clean(row[idx], col.Kind)
			if bad {
				malformed++
			}
		}

		if malformed > 0 {
			a.logger.Warn("unparseable values coerced to zero",
				zap.String("role", string(role)),
				zap.String("column", col.Name),
				zap.Int("count", malformed))
			warnings += malformed
		}
	}

	return out, warnings, nil
}

// AdaptInputs adapts every supplied table. Roles the profile has no layout for are skipped.
func (a *Adapter) AdaptInputs(in domain.Inputs) (domain.Dataset, error) {
	if err := in.Validate(); err != nil {
		return domain.Dataset{}, err
	}

	var ds domain.Dataset
	targets := map[domain.Role]*domain.Table{
		domain.RoleOnboarding: &ds.Onboarding,
		domain.RoleDeposit:    &ds.Deposit,
		domain.RoleTicket:     &ds.Ticket,
		domain.RoleScan:       &ds.Scan,
	}

	for _, role := range domain.MandatoryRoles {
		adapted, warnings, err := a.Adapt(*in.Get(role), role)
		if err != nil {
			return domain.Dataset{}, err
		}
		*targets[role] = adapted
		ds.Warnings += warnings
	}

	if in.Conversion != nil {
		if _, ok := a.profile.Layout(domain.RoleConversion); ok {
			adapted, warnings, err := a.Adapt(*in.Conversion, domain.RoleConversion)
			if err != nil {
				return domain.Dataset{}, err
			}
			ds.Conversion = &adapted
			ds.Warnings += warnings
		}
	}

	return ds, nil
}

// resolveColumn finds the first alias present in header. Each alias is tried exactly,
// then case-insensitively, before moving to the next one.
func resolveColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, field := range header {
			if field == alias {
				return i
			}
		}
		for i, field := range header {
			if strings.EqualFold(field, alias) {
				return i
			}
		}
	}
	return -1
}

// renameColumn gives column idx its canonical name. A different column that already
// carries the name keeps its data under a "_source" suffix.
func renameColumn(t *domain.Table, idx int, name string) {
	for i, c := range t.Columns {
		if i != idx && c == name {
			t.Columns[i] = name + "_source"
		}
	}
	t.Columns[idx] = name
}

func appendConstant(t *domain.Table, name, value string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// clean returns the cleaned value and whether it was malformed
func clean(v string, kind Kind) (string, bool) {
	v = strings.TrimSpace(v)

	switch kind {
	case KindMobile:
		return mobile.Normalize(v), false
	case KindAmount:
		d, ok := ParseAmount(v)
		return d.String(), !ok
	case KindCount:
		d, ok := ParseAmount(v)
		return d.Truncate(0).String(), !ok
	case KindName:
		return norm.NFC.String(v), false
	case KindCode:
		return strings.ToUpper(v), false
	}
	return v, false
}

// ParseAmount strips thousands separators and parses v. Blank values are zero;
// anything else that does not parse is zero and reported as malformed.
func ParseAmount(v string) (decimal.Decimal, bool) {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if v == "" || strings.EqualFold(v, "nan") {
		return decimal.Zero, true
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
