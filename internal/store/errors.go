package store

import "errors"

var (
	// ErrRequestFailed indicates the store answered with a status >= 400
	ErrRequestFailed = errors.New("record store request failed")

	// ErrInvalidResponse indicates the store answered with unparseable JSON
	ErrInvalidResponse = errors.New("invalid response from record store")
)
