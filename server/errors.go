package server

import "errors"

// Sentinel errors returned while decoding a route request. Every one of
// them is reported to the client as 400 Bad Request.
var (
	// ErrInvalidRequest indicates malformed JSON or inconsistent fields.
	ErrInvalidRequest = errors.New("server: invalid request")
	// ErrGridTooLarge indicates width×height exceeds the configured cell limit.
	ErrGridTooLarge = errors.New("server: grid exceeds cell limit")
	// ErrInvalidCell indicates an obstacle outside the grid.
	ErrInvalidCell = errors.New("server: cell out of bounds")
	// ErrInvalidEndpoint indicates a missing, out-of-bounds or blocked start or goal.
	ErrInvalidEndpoint = errors.New("server: invalid start or goal")
)
