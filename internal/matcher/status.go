package matcher

import "github.com/tirasundara/dsa-reconciliation/internal/domain"

// provisionalStatus is assigned when a pair is first seen. Onboarded customers start as
// MISMATCH and are settled by classify once every deposit has been attributed.
func provisionalStatus(onboarded bool) domain.MatchStatus {
	if onboarded {
		return domain.StatusMismatch
	}
	return domain.StatusNoOnboarding
}

// classify compares the onboarding agent with the agent who processed the deposit
func classify(rec *domain.TransactionAttribution) {
	if rec.OnboardedBy == domain.NotOnboarded {
		return
	}
	if rec.OnboardedBy == rec.AgentID {
		rec.Status = domain.StatusMatch
	} else {
		rec.Status = domain.StatusMismatch
	}
}
