package reconcile

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/korvala/padmap/internal/mapping"
)

// DeviceState reads and writes individual settings on a resolved device.
// *xsetwacom.Client satisfies this interface.
type DeviceState interface {
	// Get returns the raw observed value of one setting, untrimmed.
	Get(id, property, parameter string) (string, error)
	// Set applies one mapping rule to the device.
	Set(id string, rule mapping.Rule) error
}

// Prompter asks the operator a yes/no question, blocking until an answer.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// Outcome is the terminal state of a reconciliation run.
type Outcome int

const (
	// OutcomeConverged means every rule's observed value matched.
	OutcomeConverged Outcome = iota
	// OutcomeAbandoned means the operator declined to apply after a mismatch.
	OutcomeAbandoned
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeConverged:
		return "converged"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RuleStatus is the observed-vs-expected result for one rule.
type RuleStatus struct {
	// Rule is the desired state that was checked.
	Rule mapping.Rule
	// Observed is the value reported by the device, untrimmed for display.
	Observed string
	// Matched is true when the trimmed observed and expected values are equal.
	Matched bool
}

// CheckResult holds the per-rule results of one Checking pass, in document
// order.
type CheckResult struct {
	Statuses []RuleStatus
}

// Matched reports whether every rule passed.
func (r *CheckResult) Matched() bool {
	for _, st := range r.Statuses {
		if !st.Matched {
			return false
		}
	}
	return true
}

// Mismatches returns the statuses of the failing rules.
func (r *CheckResult) Mismatches() []RuleStatus {
	var failed []RuleStatus
	for _, st := range r.Statuses {
		if !st.Matched {
			failed = append(failed, st)
		}
	}
	return failed
}

// Reconciler drives the check/apply/confirm loop for one device.
type Reconciler struct {
	state  DeviceState
	prompt Prompter
	out    io.Writer
	logger *zap.Logger
}

// New returns a reconciler that reads and writes device state through state,
// asks for apply decisions through prompt, and writes the report to out.
func New(state DeviceState, prompt Prompter, out io.Writer, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		state:  state,
		prompt: prompt,
		out:    out,
		logger: logger,
	}
}

// Check audits every rule in doc against the device referenced by id, in
// document order, and prints a human-readable report. The pass is read-only.
// A failed read counts as a mismatch for that rule rather than an error.
func (r *Reconciler) Check(id string, doc *mapping.Document) *CheckResult {
	fmt.Fprintln(r.out, RenderHeader(doc.Descriptor))
	fmt.Fprintln(r.out, RenderDivider())

	result := &CheckResult{Statuses: make([]RuleStatus, 0, len(doc.Rules))}

	for _, rule := range doc.Rules {
		observed, err := r.state.Get(id, rule.Property, rule.Parameter)
		if err != nil {
			// Degrade to a visible mismatch for this rule.
			r.logger.Debug("state read failed",
				zap.String("device_id", id),
				zap.String("setting", rule.Setting()),
				zap.Error(err),
			)
		}

		matched := err == nil &&
			strings.TrimSpace(observed) == strings.TrimSpace(rule.Value)

		st := RuleStatus{Rule: rule, Observed: observed, Matched: matched}
		result.Statuses = append(result.Statuses, st)

		r.logger.Debug("rule checked",
			zap.String("setting", rule.Setting()),
			zap.String("expected", strings.TrimSpace(rule.Value)),
			zap.String("observed", strings.TrimSpace(observed)),
			zap.Bool("matched", matched),
		)

		fmt.Fprintln(r.out, RenderRow(st))
	}

	fmt.Fprintln(r.out, RenderSummary(result.Matched()))
	return result
}

// Apply writes every rule in doc to the device referenced by id, in document
// order. The write pass always covers the whole rule set, not just the
// failing subset. Write errors are recorded at debug level only; success is
// judged by the next Checking pass, never by the writer's return.
func (r *Reconciler) Apply(id string, doc *mapping.Document) {
	for _, rule := range doc.Rules {
		if err := r.state.Set(id, rule); err != nil {
			r.logger.Debug("state write failed",
				zap.String("device_id", id),
				zap.String("setting", rule.Setting()),
				zap.String("value", rule.Value),
				zap.Error(err),
			)
		}
	}
}

// Run drives the full reconciliation loop: Checking, then on any mismatch an
// apply/decline prompt, then Applying and back to Checking. It terminates
// only by convergence or by the operator declining. A prompt read error is
// treated as a decline and returned alongside OutcomeAbandoned.
func (r *Reconciler) Run(id string, doc *mapping.Document) (Outcome, error) {
	for {
		result := r.Check(id, doc)
		if result.Matched() {
			r.logger.Info("mapping converged",
				zap.String("device_id", id),
				zap.Int("rules", len(doc.Rules)),
			)
			return OutcomeConverged, nil
		}

		ok, err := r.prompt.Confirm("Would you like to apply this map?")
		if err != nil {
			return OutcomeAbandoned, fmt.Errorf("reading apply decision: %w", err)
		}
		if !ok {
			r.logger.Info("apply declined",
				zap.String("device_id", id),
				zap.Int("mismatches", len(result.Mismatches())),
			)
			return OutcomeAbandoned, nil
		}

		r.Apply(id, doc)
	}
}
