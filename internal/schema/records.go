package schema

import (
	"strings"

	"github.com/tirasundara/dsa-reconciliation/internal/domain"
)

// Onboarding reads the typed onboarding records of an adapted table
func Onboarding(t domain.Table) []domain.OnboardingRecord {
	records := make([]domain.OnboardingRecord, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, domain.OnboardingRecord{
			DSAMobile:      t.Value(row, domain.ColDSAMobile),
			CustomerMobile: t.Value(row, domain.ColCustomerMobile),
			FullName:       t.Value(row, domain.ColFullName),
		})
	}
	return records
}

// Deposits reads the typed deposit records of an adapted table
func Deposits(t domain.Table) []domain.DepositRecord {
	records := make([]domain.DepositRecord, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, domain.DepositRecord{
			CustomerMobile:  t.Value(row, domain.ColCustomerMobile),
			CreatedBy:       t.Value(row, domain.ColCreatedBy),
			TransactionType: t.Value(row, domain.ColTransactionType),
			FullName:        t.Value(row, domain.ColFullName),
		})
	}
	return records
}

// Tickets reads the typed ticket records of an adapted table
func Tickets(t domain.Table) []domain.TicketRecord {
	hasEntity := t.Has(domain.ColEntityName)

	records := make([]domain.TicketRecord, 0, t.Len())
	for _, row := range t.Rows {
		amount, _ := ParseAmount(t.Value(row, domain.ColTicketAmount))
		records = append(records, domain.TicketRecord{
			CustomerMobile:  t.Value(row, domain.ColCustomerMobile),
			Amount:          amount,
			EntityName:      strings.TrimSpace(t.Value(row, domain.ColEntityName)),
			HasEntity:       hasEntity,
			TransactionType: t.Value(row, domain.ColTransactionType),
			FullName:        t.Value(row, domain.ColFullName),
		})
	}
	return records
}

// Scans reads the typed scan-to-send records of an adapted table
func Scans(t domain.Table) []domain.ScanRecord {
	records := make([]domain.ScanRecord, 0, t.Len())
	for _, row := range t.Rows {
		amount, _ := ParseAmount(t.Value(row, domain.ColScanAmount))
		records = append(records, domain.ScanRecord{
			CustomerMobile:  t.Value(row, domain.ColCustomerMobile),
			Amount:          amount,
			TransactionType: t.Value(row, domain.ColTransactionType),
			FullName:        t.Value(row, domain.ColFullName),
		})
	}
	return records
}

// Conversions reads the typed conversion records of an adapted table
func Conversions(t domain.Table) []domain.ConversionRecord {
	records := make([]domain.ConversionRecord, 0, t.Len())
	for _, row := range t.Rows {
		count, _ := ParseAmount(t.Value(row, domain.ColDepositCount))
		records = append(records, domain.ConversionRecord{
			DSAMobile:    t.Value(row, domain.ColDSAMobile),
			DepositCount: count.IntPart(),
		})
	}
	return records
}
