package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Error collects failures from concurrent (image, region) units of work.
// One unit's failure never aborts independent units; the aggregate lists
// every failed unit distinctly.
type Error struct {
	sync.Mutex
	failures []Failure
}

// Failure is one failed unit of work
type Failure struct {
	Unit string
	Err  error
}

func (e *Error) Add(unit string, err error) {
	e.Lock()
	defer e.Unlock()

	e.failures = append(e.failures, Failure{Unit: unit, Err: err})
}

// Failures returns a copy of the recorded failures
func (e *Error) Failures() []Failure {
	e.Lock()
	defer e.Unlock()

	out := make([]Failure, len(e.failures))
	copy(out, e.failures)
	return out
}

// Error returns nil when no failures were recorded, otherwise a single
// error enumerating every failed unit
func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.failures) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(e.failures))
	for _, f := range e.failures {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Unit, f.Err))
	}

	return fmt.Errorf("encountered errors: \n %s", strings.Join(msgs, "\n "))
}
