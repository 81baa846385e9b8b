package activity

import (
	"strings"

	"github.com/tirasundara/dsa-reconciliation/internal/domain"
)

// Credits keeps the deposit rows that credit the customer
func Credits(records []domain.DepositRecord) []domain.DepositRecord {
	var out []domain.DepositRecord
	for _, r := range records {
		if isType(r.TransactionType, domain.TxnCredit) {
			out = append(out, r)
		}
	}
	return out
}

// TicketDebits keeps the ticket rows that debit the customer
func TicketDebits(records []domain.TicketRecord) []domain.TicketRecord {
	var out []domain.TicketRecord
	for _, r := range records {
		if isType(r.TransactionType, domain.TxnDebit) {
			out = append(out, r)
		}
	}
	return out
}

// ScanDebits keeps the scan-to-send rows that debit the customer
func ScanDebits(records []domain.ScanRecord) []domain.ScanRecord {
	var out []domain.ScanRecord
	for _, r := range records {
		if isType(r.TransactionType, domain.TxnDebit) {
			out = append(out, r)
		}
	}
	return out
}

func isType(value, code string) bool {
	return strings.EqualFold(strings.TrimSpace(value), code)
}
