// Package http implements the REST API of the aura server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as cookie authentication, request tracing, access logging,
// CORS and response compression are handled in this package before requests
// are delegated to the service layer.
package http
