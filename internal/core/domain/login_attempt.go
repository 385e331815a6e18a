package domain

import "time"

// LoginOutcome tags a login attempt as succeeded or failed.
type LoginOutcome string

const (
	OutcomeSuccess LoginOutcome = "success"
	OutcomeFail    LoginOutcome = "fail"
)

// LoginAttempt is one row of the append-only authentication audit log.
// Every login attempt produces exactly one record, regardless of outcome,
// and the email is recorded as submitted even when no such user exists.
type LoginAttempt struct {
	Email     string       `json:"email"`
	SourceIP  string       `json:"source_ip"`
	Outcome   LoginOutcome `json:"outcome"`
	Timestamp time.Time    `json:"timestamp"`
}
