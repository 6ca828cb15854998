// Package handler is the first layer after the router.
//
// Handlers run after the validation middleware has populated the request
// Locals. They read the validated values from there and write the
// response, never touching the raw request input.
package handler
