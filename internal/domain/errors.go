package domain

import "fmt"

// InvalidInputError rejects a user message before anything is persisted or
// generated.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// StoreError reports a persistence failure. Op names the store operation,
// never connection details.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// UpstreamError reports a failed generation call. Provider error types stay
// behind this boundary.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream generation: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
