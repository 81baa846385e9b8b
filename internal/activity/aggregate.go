// Package activity collapses ticket, scan and deposit rows into one activity
// record per customer.
package activity

import (
	"sort"
	"strings"

	"github.com/tirasundara/dsa-reconciliation/internal/domain"
)

// customerEntity is the ticket entity type that identifies customer purchases
const customerEntity = "customer"

// Activity holds the aggregated activity keyed by customer id
type Activity map[string]domain.ActivityRecord

// Get returns the customer's activity; customers without any rows get the zero record
func (a Activity) Get(customerID string) domain.ActivityRecord {
	return a[customerID]
}

// Customers returns the aggregated customer ids in ascending order
func (a Activity) Customers() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AggregateTickets sums ticket amounts per customer. When the log carries an entity
// type, only rows for customers count.
func AggregateTickets(records []domain.TicketRecord) Activity {
	out := make(Activity)

	for _, r := range records {
		if r.CustomerMobile == "" {
			continue
		}
		if r.HasEntity && !strings.EqualFold(r.EntityName, customerEntity) {
			continue
		}

		rec := out[r.CustomerMobile]
		rec.TicketAmount = rec.TicketAmount.Add(r.Amount)
		if r.Amount.IsPositive() {
			rec.TicketCount++
		}
		rec.BoughtTicket = rec.TicketAmount.IsPositive()
		out[r.CustomerMobile] = rec
	}

	return out
}

// AggregateScans sums scan-to-send amounts and counts rows per customer
func AggregateScans(records []domain.ScanRecord) Activity {
	out := make(Activity)

	for _, r := range records {
		if r.CustomerMobile == "" {
			continue
		}

		rec := out[r.CustomerMobile]
		rec.ScanAmount = rec.ScanAmount.Add(r.Amount)
		rec.ScanCount++
		rec.DidScan = rec.ScanAmount.IsPositive()
		out[r.CustomerMobile] = rec
	}

	return out
}

// Depositors marks every customer with at least one deposit row, whatever its
// transaction type. Rows processed by the customer themselves are ignored.
func Depositors(records []domain.DepositRecord) Activity {
	out := make(Activity)

	for _, r := range records {
		if r.CustomerMobile == "" || r.CustomerMobile == r.CreatedBy {
			continue
		}

		rec := out[r.CustomerMobile]
		rec.Deposited = true
		rec.DepositCount++
		out[r.CustomerMobile] = rec
	}

	return out
}

// Aggregate joins ticket, scan and deposit activity into one record per customer
func Aggregate(tickets []domain.TicketRecord, scans []domain.ScanRecord, deposits []domain.DepositRecord) Activity {
	out := AggregateTickets(tickets)

	for id, s := range AggregateScans(scans) {
		rec := out[id]
		rec.ScanAmount = s.ScanAmount
		rec.ScanCount = s.ScanCount
		rec.DidScan = s.DidScan
		out[id] = rec
	}

	for id, d := range Depositors(deposits) {
		rec := out[id]
		rec.Deposited = d.Deposited
		rec.DepositCount = d.DepositCount
		out[id] = rec
	}

	return out
}
