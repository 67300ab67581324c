// Package serverrun boots a single-node opsq server: it opens the
// runtime, builds the process logger, and serves HTTP until the
// context or a termination signal stops it.
package serverrun
