package ui

// MockUI implements UI with pluggable behavior for tests in this and other
// packages. A nil func answers with the zero value.
type MockUI struct {
	SelectFunc  func(title string, options []string, value *string) error
	InputFunc   func(title string, description string, value *string) error
	ConfirmFunc func(title string, value *bool) error

	SelectCalls  int
	InputCalls   int
	ConfirmCalls int
}

// Select records the call and delegates to SelectFunc when set.
func (m *MockUI) Select(title string, options []string, value *string) error {
	m.SelectCalls++
	if m.SelectFunc != nil {
		return m.SelectFunc(title, options, value)
	}
	return nil
}

// Input records the call and delegates to InputFunc when set.
func (m *MockUI) Input(title string, description string, value *string) error {
	m.InputCalls++
	if m.InputFunc != nil {
		return m.InputFunc(title, description, value)
	}
	return nil
}

// Confirm records the call and delegates to ConfirmFunc when set.
func (m *MockUI) Confirm(title string, value *bool) error {
	m.ConfirmCalls++
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(title, value)
	}
	return nil
}
