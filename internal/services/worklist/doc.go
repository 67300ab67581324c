// Package worklist is the service layer between transports and the
// queue engine. It fetches the raw work-item snapshot from storage,
// captures a single "now" per query, compiles optional CEL filter
// expressions into an engine predicate, and returns the engine's
// output untouched. It also derives the pre-aggregated counts that
// feed the dashboard summary, and owns ingest-side validation for
// records pushed by origin subsystems.
//
// The service performs no authorization: callers hand it an opaque
// staff ID and an org scope that upstream layers have already vetted.
package worklist
