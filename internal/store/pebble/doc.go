// Package pebblestore wraps Pebble with Opsq's durability policy and a
// small set of helpers. It centralizes fsync behavior (always, grouped
// interval, or never) so callers commit batches without repeating the
// policy decision, and keeps raw iterator access available for prefix
// scans in the work-item store.
package pebblestore
