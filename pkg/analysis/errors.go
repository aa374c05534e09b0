package analysis

import "errors"

var (
	// ErrTransport covers network failures and non-2xx responses from the
	// model provider.
	ErrTransport = errors.New("analysis: transport failure")
	// ErrEmptyResponse is returned when the provider answers successfully
	// but produces no content.
	ErrEmptyResponse = errors.New("analysis: empty response")
	// ErrFormat is returned when the model's reply is not a JSON document,
	// even after stripping markdown fences.
	ErrFormat = errors.New("analysis: malformed response")
)
