// Package http implements the HTTP transport layer of the mock backend.
//
// It exposes route wiring, request handlers, and middleware used by the stub
// REST API. Cross-cutting concerns such as request tracing, access logging,
// and upload size limits are handled in this package before requests are
// delegated to the service layer.
package http
