// Package reconcile implements the check/apply/confirm loop that converges
// actual device state toward a mapping document.
//
// The loop has four phases. Checking reads every rule in document order and
// compares the trimmed observed value against the trimmed expected value,
// printing one report row per rule; the pass is read-only. When every rule
// matches, the run converges. Otherwise the operator is asked whether to
// apply the map: declining abandons the run, accepting writes every rule in
// document order (all rules, not just the failing subset) and loops back to
// Checking. There is no iteration cap; repeated external-tool flakiness can
// legitimately need several apply/check cycles, and the operator decides
// when to give up.
//
// A failed state read inside Checking is deliberately not an error: it
// degrades to "observed value differs" for that rule, surfacing as a visible
// mismatch instead of aborting the run.
package reconcile
