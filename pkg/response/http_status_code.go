package response

// Ballot submission outcome codes, carried alongside the HTTP status so
// the frontend can route to the right page (receipt, explanation, or
// retry).
const (
	CodeBallotCommitted = 1 // ballot committed
	CodeAlreadyVoted    = 2 // ballot already cast, showing receipt

	CodeElectionNotRunning = 4101 // election not running
	CodeStudentNotFound    = 4102 // student not found
	CodeStudentSuspended   = 4103 // student suspended
	CodeIncompleteBallot   = 4104 // missing a position selection
	CodeInvalidCandidate   = 4105 // candidate/position mismatch
	CodeNoOpenPositions    = 4106 // no candidates registered

	CodeTransactionFailed = 5101 // storage conflict, safe to retry
)

// message
var msg = map[int]string{
	CodeBallotCommitted: "ballot committed",
	CodeAlreadyVoted:    "ballot already cast",

	CodeElectionNotRunning: "the election is not running",
	CodeStudentNotFound:    "student not found",
	CodeStudentSuspended:   "your account is suspended",
	CodeIncompleteBallot:   "please select a candidate for every position",
	CodeInvalidCandidate:   "invalid candidate selected",
	CodeNoOpenPositions:    "no positions are open for voting",

	CodeTransactionFailed: "could not record your vote, please try again",
}

// Message returns the display message for a code.
func Message(code int) string {
	return msg[code]
}
