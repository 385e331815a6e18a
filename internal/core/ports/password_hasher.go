package ports

// PasswordHasher abstracts the one-way salted hashing scheme used for
// stored credentials.
type PasswordHasher interface {
	// Hash generates a self-contained salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext matches the stored hash. A
	// malformed stored hash counts as a mismatch, never an error.
	Check(password, hash string) bool
}
