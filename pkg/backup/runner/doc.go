// Package runner executes backup runs. The Orchestrator owns the
// stop-archive-start sequence for a single tier; the Driver walks all
// tiers through a creation pass and a retention pass, records the audit
// trail, and reports metrics.
//
// Everything here is strictly sequential. Tiers share one server and one
// disk, so concurrent tar processes would only slow each other down, and
// a sequential run is trivially reasoned about when reading the log of a
// failed night.
package runner
