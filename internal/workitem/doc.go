// Package workitem persists the active work-item snapshot that feeds
// the queue engine. Origin subsystems upsert their open items and
// delete resolved ones, so at any time the store holds exactly the set
// the worklist projects from.
//
// # Keyspace
//
//	org/{org}/item/{itemType}/{itemId} -> JSON-encoded queue.RawItem
//
// Keys group items by organization first, so a single prefix scan
// serves both org-scoped and portfolio-wide queue queries. Values are
// the raw records verbatim; all derivation (urgency, actions, pillar)
// happens query-side in the engine, never at write time.
//
// Organization and item IDs participate in the key layout and must not
// contain '/'; the service layer rejects records that do.
package workitem
