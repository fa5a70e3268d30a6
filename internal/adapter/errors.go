package adapter

import "errors"

// Sentinel errors produced by mapHTTPError. Callers match them with
// [errors.Is]; the wrapped message carries the server's error body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrAIUnavailable       = errors.New("ai features are not configured on the server")
	ErrInternalServerError = errors.New("internal server error")
)
