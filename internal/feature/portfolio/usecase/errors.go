// Package usecase implements the refresh pipeline of the portfolio dashboard:
// fetching from the remote portfolio service, transforming records into view entities
// and committing them as the dashboard state.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrRefreshInProgress is returned when a refresh is triggered while another cycle is still running.
	ErrRefreshInProgress = errors.New("refresh already in progress")

	// ErrNegativeCashBalance is returned when the remote service reports a cash balance below zero.
	ErrNegativeCashBalance = errors.New("cash balance is negative")
)

// RemoteCallError is returned when a call to the remote portfolio service fails,
// either because the transport failed or because the service answered with a non-2xx status.
type RemoteCallError struct {
	Resource   string // "portfolio", "holdings" or "transactions"
	Endpoint   string // Full URL that was called
	StatusCode int    // 0 when no response was received
	Status     string // e.g. "500 Internal Server Error"
	Err        error  // Underlying transport or decode error, if any
}

func (e *RemoteCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: %s", e.Resource, e.Status)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// MalformedDateError is returned when a transaction date cannot be parsed.
type MalformedDateError struct {
	TransactionID string
	Value         string
	Err           error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("transaction %s: malformed date %q", e.TransactionID, e.Value)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}
