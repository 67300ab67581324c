// Package httpserver exposes the queue service over HTTP/JSON. Routing
// is delegated to the controllers package; this package owns the
// listener lifecycle, CORS, and request logging.
package httpserver
