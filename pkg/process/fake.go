package process

import (
	"context"
	"strings"
	"sync"
)

// Call records a single invocation seen by Fake.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Fake is a Runner for tests. It records calls and answers with scripted
// results keyed by command name; unknown commands exit 0.
type Fake struct {
	mu     sync.Mutex
	calls  []Call
	status map[string]int
	errs   map[string]error
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{status: map[string]int{}, errs: map[string]error{}}
}

// Exit makes every invocation whose command line starts with prefix exit with status.
func (f *Fake) Exit(prefix string, status int) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status[prefix] = status
	return f
}

// Fail makes every invocation whose command line starts with prefix fail to start.
func (f *Fake) Fail(prefix string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[prefix] = err
	return f
}

// Run implements Runner.
func (f *Fake) Run(_ context.Context, dir, name string, args ...string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	f.calls = append(f.calls, call)

	line := call.String()
	for prefix, err := range f.errs {
		if strings.HasPrefix(line, prefix) {
			return -1, err
		}
	}
	best, status := -1, 0
	for prefix, s := range f.status {
		if strings.HasPrefix(line, prefix) && len(prefix) > best {
			best, status = len(prefix), s
		}
	}
	return status, nil
}

// Calls returns a copy of every recorded invocation.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
