package types

import "errors"

// ErrUnsupportedMethod is returned by the request dispatcher for any HTTP
// method other than GET or POST, before a request is built.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// ErrMissingField is returned when a response lacks a key the calling method
// needs to read.
var ErrMissingField = errors.New("response missing expected field")
