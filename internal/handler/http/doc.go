// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the users CRUD handlers and the middleware used by
// the REST API. Request tracing, access logging and gzip handling are applied
// here before requests are delegated to the service layer.
package http
