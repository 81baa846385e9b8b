// Package identity builds the customer name and onboarding-agent lookups from the
// source logs.
package identity

import "github.com/tirasundara/dsa-reconciliation/internal/domain"

// Names maps a customer id to a display name
type Names map[string]string

// Name returns the customer's name, or domain.UnknownName
func (n Names) Name(customerID string) string {
	if name, ok := n[customerID]; ok {
		return name
	}
	return domain.UnknownName
}

// OnboardingMap maps a customer id to the agent credited with onboarding them
type OnboardingMap map[string]string

// Agent returns the onboarding agent and whether the customer has an onboarding record
func (m OnboardingMap) Agent(customerID string) (string, bool) {
	agent, ok := m[customerID]
	return agent, ok
}

// Resolve scans the sources in priority order onboarding > deposit > ticket > scan.
// A name is taken from the first source that has one and never overwritten.
// The onboarding agent comes from onboarding rows only and a later row for the
// same customer replaces an earlier one.
func Resolve(
	onboarding []domain.OnboardingRecord,
	deposits []domain.DepositRecord,
	tickets []domain.TicketRecord,
	scans []domain.ScanRecord,
) (Names, OnboardingMap) {
	names := make(Names)
	onboardingMap := make(OnboardingMap)

	for _, r := range onboarding {
		if r.CustomerMobile == "" {
			continue
		}
		names.add(r.CustomerMobile, r.FullName)
		if r.DSAMobile != "" {
			onboardingMap[r.CustomerMobile] = r.DSAMobile
		}
	}

	for _, r := range deposits {
		names.add(r.CustomerMobile, r.FullName)
	}
	for _, r := range tickets {
		names.add(r.CustomerMobile, r.FullName)
	}
	for _, r := range scans {
		names.add(r.CustomerMobile, r.FullName)
	}

	return names, onboardingMap
}

func (n Names) add(customerID, name string) {
	if customerID == "" || name == "" {
		return
	}
	if _, ok := n[customerID]; ok {
		return
	}
	n[customerID] = name
}
