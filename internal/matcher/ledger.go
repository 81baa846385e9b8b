package matcher

import "github.com/tirasundara/dsa-reconciliation/internal/domain"

// ledger keeps the (agent, customer) attributions in first-seen order, with a
// reverse index from customer to the earliest-registered agent holding them
type ledger struct {
	agents    []string
	ordinal   map[string]int
	customers map[string][]string
	records   map[string]map[string]*domain.TransactionAttribution
	owner     map[string]string
}

func newLedger() *ledger {
	return &ledger{
		ordinal:   make(map[string]int),
		customers: make(map[string][]string),
		records:   make(map[string]map[string]*domain.TransactionAttribution),
		owner:     make(map[string]string),
	}
}

// attribution returns the record for the pair, creating it with init on first sight
func (l *ledger) attribution(agent, customer string, init func() domain.TransactionAttribution) *domain.TransactionAttribution {
	if _, ok := l.ordinal[agent]; !ok {
		l.ordinal[agent] = len(l.agents)
		l.agents = append(l.agents, agent)
		l.records[agent] = make(map[string]*domain.TransactionAttribution)
	}

	if rec, ok := l.records[agent][customer]; ok {
		return rec
	}

	rec := init()
	l.records[agent][customer] = &rec
	l.customers[agent] = append(l.customers[agent], customer)

	// A customer seen under several agents belongs to the one registered first
	if current, ok := l.owner[customer]; !ok || l.ordinal[agent] < l.ordinal[current] {
		l.owner[customer] = agent
	}

	return &rec
}

// ownerOf returns the record of the first agent, in registration order, holding the customer
func (l *ledger) ownerOf(customer string) (*domain.TransactionAttribution, bool) {
	agent, ok := l.owner[customer]
	if !ok {
		return nil, false
	}
	return l.records[agent][customer], true
}

// each visits every attribution in agent order, then customer order
func (l *ledger) each(fn func(agent string, rec *domain.TransactionAttribution)) {
	for _, agent := range l.agents {
		for _, customer := range l.customers[agent] {
			fn(agent, l.records[agent][customer])
		}
	}
}

func (l *ledger) len() int {
	return len(l.agents)
}
