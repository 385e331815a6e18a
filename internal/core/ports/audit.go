package ports

import "github.com/bankstack/bankstack/internal/core/domain"

// LoginAttemptRecorder accepts audit records for eventual persistence.
// Recording is a fire-and-forget side effect of the login flow: a record
// lost to a crash costs an audit line, never account state.
type LoginAttemptRecorder interface {
	Record(attempt domain.LoginAttempt)
}
