package gitrev

// MockDescriber is a test double for Describer.
// It allows tests to provide a predefined revision without needing a real
// Git repository.
type MockDescriber struct {
	Revision Revision
	Error    error
}

// NewMockDescriber creates a new MockDescriber with the given data.
func NewMockDescriber(rev Revision, err error) *MockDescriber {
	return &MockDescriber{Revision: rev, Error: err}
}

// Describe returns the predefined revision or error.
func (m *MockDescriber) Describe(_ string) (Revision, error) {
	return m.Revision, m.Error
}

// Compile-time interface conformance check.
var _ Describer = (*MockDescriber)(nil)
