// Package client contains Cobra CLI commands that talk to a running
// opsq server over its HTTP API.
package client
