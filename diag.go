package closed

import (
	"fmt"
)

// Severity of a Diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// A Rule describes one kind of Diagnostic.
type Rule struct {
	// ID is stable across releases.
	ID       string
	Title    string
	Format   string
	Severity Severity
}

var (
	// SwitchRule is reported for dispatches that miss variants.
	SwitchRule = &Rule{
		ID:       "CL0001",
		Title:    "Dispatch over closed type is not exhaustive",
		Format:   "dispatch over closed type %s is not exhaustive: %s",
		Severity: SeverityError,
	}

	// ShapeRule is reported for closed bases that can be instantiated.
	ShapeRule = &Rule{
		ID:       "CL0002",
		Title:    "Closed type must be abstract",
		Format:   "%s %s is marked closed but can be instantiated; closed types must be interfaces",
		Severity: SeverityError,
	}

	// FileRule is reported for variants declared away from their base.
	FileRule = &Rule{
		ID:       "CL0003",
		Title:    "Variant must be declared in the file of its closed type",
		Format:   "%s is a variant of closed type %s and must be declared in the same file",
		Severity: SeverityError,
	}
)

// Rules lists every Rule in ID order.
var Rules = []*Rule{SwitchRule, ShapeRule, FileRule}

// RuleByID returns the Rule with the given ID.
func RuleByID(id string) (*Rule, bool) {
	for _, r := range Rules {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s %s: %s", r.ID, r.Severity, r.Title)
}

// A Diagnostic is a finding of one of the checks.
type Diagnostic struct {
	Rule     *Rule
	Location Location
	Args     []any
}

func newDiagnostic(r *Rule, at Location, args ...any) *Diagnostic {
	return &Diagnostic{
		Rule:     r,
		Location: at,
		Args:     args,
	}
}

// Message formats the Rule with the arguments.
func (d *Diagnostic) Message() string {
	return fmt.Sprintf(d.Rule.Format, d.Args...)
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location.Position, d.Rule.ID, d.Message())
}

// A HostDiagnostic is a diagnostic owned by some other check,
// identified by its ID and anchored at Location.
type HostDiagnostic struct {
	ID       string
	Location Location
}

// A Suppression marks a HostDiagnostic as not actionable.
type Suppression struct {
	// ID of the suppressed diagnostic.
	ID            string
	Location      Location
	Justification string
}
