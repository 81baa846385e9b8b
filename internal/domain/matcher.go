package domain

// QualificationEngine produces Report A from an adapted dataset
type QualificationEngine interface {
	Run(ds Dataset) (*QualificationResult, error)
}

// TransactionalMatcher produces Report B from an adapted dataset
type TransactionalMatcher interface {
	Run(ds Dataset) (*TransactionalResult, error)
}
