package report

import (
	"strconv"

	"github.com/tirasundara/dsa-reconciliation/internal/domain"
)

// Report A qualified-customers columns
const (
	ColCustomerCount  = "Customer Count"
	ColDepositCount   = "Deposit Count"
	ColTicketCount    = "Ticket Count"
	ColScanCount      = "Scan To Send Count"
	ColPaymentA       = "Payment (Customer Count *40)"
	ColPaymentOutside = "Payment for customers who were not Onboard by DSA (Should be Empty)"
)

// Report B columns
const (
	ColBoughtTicket = "bought_ticket"
	ColDidScan      = "did_scan"
	ColDeposited    = "deposited"
	ColOnboardedBy  = "onboarded_by"
	ColMatchStatus  = "match_status"
	ColPayment      = "Payment"
)

// Sheet names used by the spreadsheet export
const (
	SheetQualified     = "Qualified_Customers"
	SheetDSASummary    = "DSA_Summary"
	SheetAllCustomers  = "All_Customers"
	SheetTransactional = "Detailed_Analysis"

	SheetTicketDetails  = "Ticket_Details"
	SheetScanDetails    = "Scan_Details"
	SheetDepositDetails = "Deposit_Details"
)

// QualifiedHeader is the column order of the qualified-customers table
var QualifiedHeader = []string{
	domain.ColDSAMobile, domain.ColCustomerMobile, domain.ColFullName,
	ColBoughtTicket, ColDidScan, ColDeposited,
	domain.ColTicketAmount, domain.ColScanAmount,
	ColCustomerCount, ColDepositCount, ColTicketCount, ColScanCount,
	ColPaymentA, ColPaymentOutside,
}

// AllCustomersHeader is the column order of the all-customers table
var AllCustomersHeader = []string{
	domain.ColDSAMobile, domain.ColCustomerMobile, domain.ColFullName,
	ColBoughtTicket, domain.ColTicketAmount,
	ColDidScan, domain.ColScanAmount,
	ColDeposited,
}

// TransactionalHeader is the column order of the Report B table
var TransactionalHeader = []string{
	domain.ColDSAMobile, domain.ColCustomerMobile, domain.ColFullName,
	ColBoughtTicket, ColDidScan, ColDeposited,
	ColOnboardedBy, ColMatchStatus,
	ColCustomerCount, ColDepositCount, ColTicketCount, ColScanCount,
	ColPayment,
}

// DSASummaryHeader returns the rollup columns; deposit_count is present only when
// a conversion table was supplied
func DSASummaryHeader(hasConversion bool) []string {
	header := []string{
		domain.ColDSAMobile,
		"Customer_Count",
		"Customers_who_deposited",
		"Customers_who_bought_ticket",
		"Customers_who_did_scan",
		"Total_Ticket_Amount",
		"Total_Scan_Amount",
	}
	if hasConversion {
		header = append(header, domain.ColDepositCount)
	}
	return append(header,
		"Ticket_Conversion_Rate",
		"Scan_Conversion_Rate",
		"Deposit_Conversion_Rate",
	)
}

// QualifiedTable renders the qualified customers with their per-agent summary and
// separator rows. Running counts are blank on detail rows.
func QualifiedTable(rows []domain.QualifiedCustomerRow) domain.Table {
	t := domain.NewTable(SheetQualified, QualifiedHeader...)

	for _, r := range rows {
		switch r.Kind {
		case domain.DetailRow:
			t.AppendRow(
				r.DSAMobile, r.CustomerID, r.FullName,
				boolCell(r.BoughtTicket), boolCell(r.DidScan), boolCell(r.Deposited),
				r.TicketAmount.String(), r.ScanAmount.String(),
			)
		case domain.SummaryRow:
			t.AppendRow(
				r.DSAMobile, "", "", "", "", "", "", "",
				strconv.Itoa(r.CustomerCount),
				strconv.Itoa(r.DepositCount),
				strconv.Itoa(r.TicketCount),
				strconv.Itoa(r.ScanCount),
				r.Payment.String(),
				"",
			)
		default:
			t.AppendRow()
		}
	}

	return t
}

// DSASummaryTable renders the agent rollup
func DSASummaryTable(rows []domain.AgentSummaryRow, hasConversion bool) domain.Table {
	t := domain.NewTable(SheetDSASummary, DSASummaryHeader(hasConversion)...)

	for _, r := range rows {
		cells := []string{
			r.DSAMobile,
			strconv.Itoa(r.CustomerCount),
			strconv.Itoa(r.Deposited),
			strconv.Itoa(r.BoughtTicket),
			strconv.Itoa(r.DidScan),
			r.TotalTicketAmount.String(),
			r.TotalScanAmount.String(),
		}
		if hasConversion {
			cells = append(cells, conversionCell(r))
		}
		cells = append(cells,
			r.TicketConversionRate.StringFixed(2),
			r.ScanConversionRate.StringFixed(2),
			r.DepositConversion.StringFixed(2),
		)
		t.AppendRow(cells...)
	}

	return t
}

// AllCustomersTable renders every onboarded and transacting customer
func AllCustomersTable(rows []domain.CustomerActivityRow) domain.Table {
	t := domain.NewTable(SheetAllCustomers, AllCustomersHeader...)

	for _, r := range rows {
		t.AppendRow(
			r.DSAMobile, r.CustomerID, r.FullName,
			boolCell(r.Activity.BoughtTicket), r.Activity.TicketAmount.String(),
			boolCell(r.Activity.DidScan), r.Activity.ScanAmount.String(),
			boolCell(r.Activity.Deposited),
		)
	}

	return t
}

// TransactionalTable renders the Report B rows. Agent totals appear on the first
// row of each block only.
func TransactionalTable(rows []domain.TransactionalRow) domain.Table {
	t := domain.NewTable(SheetTransactional, TransactionalHeader...)

	for _, r := range rows {
		a := r.Attribution
		cells := []string{
			a.AgentID, a.CustomerID, a.FullName,
			strconv.Itoa(a.BoughtTicket), strconv.Itoa(a.DidScan), strconv.Itoa(a.DepositCount),
			a.OnboardedBy, string(a.Status),
		}
		if r.Summary {
			cells = append(cells,
				strconv.Itoa(r.CustomerCount),
				strconv.Itoa(r.DepositCount),
				strconv.Itoa(r.TicketCount),
				strconv.Itoa(r.ScanCount),
				r.Payment.String(),
			)
		}
		t.AppendRow(cells...)
	}

	return t
}

func conversionCell(r domain.AgentSummaryRow) string {
	if !r.HasConversion {
		return ""
	}
	return strconv.FormatInt(r.ConversionDeposits, 10)
}

func boolCell(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
