// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request IDs, request-scoped logging, CORS, body limits,
// security headers, panic recovery and the final error response.
package middleware
