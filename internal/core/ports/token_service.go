package ports

// TokenVerifier checks a session token and returns the subject it asserts.
// Verification is purely cryptographic and time-based; resolving the subject
// to an existing user is the caller's job.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenIssuer produces signed, time-limited session tokens for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}
