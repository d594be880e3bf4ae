package models

import (
	"errors"
	"fmt"
)

// Ballot submission failure taxonomy. Every precondition failure is
// detected before any mutation; ErrTransactionFailed is the only outcome
// that involves a rollback.
var (
	ErrElectionNotRunning = errors.New("election is not running")
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentSuspended   = errors.New("student is suspended")
	ErrAlreadyVoted       = errors.New("student has already voted")
	ErrTransactionFailed  = errors.New("vote transaction failed")
	ErrNoOpenPositions    = errors.New("no positions are open for voting")
)

// ErrInvalidEndTime rejects starting an election without a future end
// time.
var ErrInvalidEndTime = errors.New("end time must be in the future")

// IncompleteBallotError names the first open position missing from a
// submitted ballot.
type IncompleteBallotError struct {
	Position string
}

func (e *IncompleteBallotError) Error() string {
	return fmt.Sprintf("ballot is missing a selection for %q", e.Position)
}

// InvalidCandidateError marks a selection whose candidate does not exist
// or does not run for the position it was submitted under.
type InvalidCandidateError struct {
	Position    string
	CandidateID string
}

func (e *InvalidCandidateError) Error() string {
	return fmt.Sprintf("candidate %q is not valid for position %q", e.CandidateID, e.Position)
}
