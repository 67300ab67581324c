// Package queue implements the unified staff work-queue engine.
//
// Origin subsystems (concierge cases, maintenance work orders, rule
// violations, ARC requests) each run their own lifecycle; this package
// projects their heterogeneous records into one ranked worklist that
// answers "what needs attention now".
//
// The engine is pure computation over an in-memory snapshot:
//
//  1. Normalize: each RawItem becomes an Item with a derived pillar,
//     required action, urgency tier, and time-in-state.
//  2. Filter: pillar, exact state, assignment, and an optional caller
//     predicate are applied before sorting; the urgency filter after.
//  3. Sort: most severe urgency first, then longest time-in-state,
//     ties keep source order.
//  4. Tally: summary counts over the filtered set, before pagination.
//  5. Paginate: cursor + limit, cursor being the last returned item ID.
//
// The caller supplies both the raw batch and the "now" timestamp, so
// one query shares a single clock snapshot and the whole pipeline is
// deterministic and replayable. Nothing here is cached or mutated in
// place; every call recomputes from scratch. The engine also never
// raises: unknown item types, statuses, and priorities degrade to
// generic classifications, and a future updatedAt clamps to zero
// elapsed time instead of going negative.
//
// Access control is the caller's problem. The batch handed to Build is
// assumed to be tenant- and visibility-filtered already; the engine
// only offers filtering by the caller's own staff ID.
package queue
