// Package http implements the HTTP transport layer of the service. It
// provides middleware, route handlers, and request/response utilities for the
// REST API. Authentication, capability enforcement, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to the
// service layer.
package http
