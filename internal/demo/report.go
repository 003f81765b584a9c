package demo

import "fmt"

// Check is one pass/fail assertion a scenario makes about its own
// outcome.
type Check struct {
	Name   string
	Pass   bool
	Detail string
}

// Report is a scenario's full result: every check it ran, in order.
type Report struct {
	Scenario string
	Checks   []Check
}

// Passed reports whether every check in the report passed.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

func (r *Report) check(name string, pass bool, detailFormat string, args ...interface{}) {
	r.Checks = append(r.Checks, Check{Name: name, Pass: pass, Detail: fmt.Sprintf(detailFormat, args...)})
}

// String renders the report as a human-readable checklist, for the
// CLI to print.
func (r *Report) String() string {
	s := r.Scenario + ":\n"
	for _, c := range r.Checks {
		mark := "ok"
		if !c.Pass {
			mark = "FAIL"
		}
		s += fmt.Sprintf("  [%s] %s (%s)\n", mark, c.Name, c.Detail)
	}
	return s
}
