// Package id generates 128-bit, lexicographically sortable identifiers
// encoded as 32-char hex strings: 8 bytes of millisecond timestamp
// followed by 8 bytes of per-process sequence. Opsq assigns them to
// ingested work items arriving without a source ID and to HTTP request
// tracing.
package id
