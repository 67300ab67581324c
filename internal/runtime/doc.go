// Package runtime wires storage, the work-item store, and configuration
// into a single handle that services and servers share. One Runtime per
// process; it owns the Pebble database lifecycle.
package runtime
