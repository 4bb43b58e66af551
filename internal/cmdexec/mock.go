package cmdexec

import "sync"

// MockRunner is a test double for Runner. It is safe for concurrent use,
// since Start is usually called from a tea.Cmd goroutine.
type MockRunner struct {
	StartFunc    func(name string, args ...string) error
	LookPathFunc func(name string) (string, error)

	mu    sync.Mutex
	calls []Call
}

// Call records a single Start invocation.
type Call struct {
	Name string
	Args []string
}

// Start delegates to StartFunc and records the call.
func (m *MockRunner) Start(name string, args ...string) error {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Name: name, Args: args})
	m.mu.Unlock()
	if m.StartFunc != nil {
		return m.StartFunc(name, args...)
	}
	return nil
}

// LookPath delegates to LookPathFunc. Without one every name resolves
// under /usr/bin.
func (m *MockRunner) LookPath(name string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(name)
	}
	return "/usr/bin/" + name, nil
}

// Calls returns a copy of the recorded invocations.
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}
