package service

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor for newly stored credentials. Hashes
// carry their own cost and salt, so raising this only affects new users.
const hashCost = 12

// BcryptHasher implements ports.PasswordHasher on top of bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: hashCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check reports whether password matches the stored hash. bcrypt's comparison
// is constant-time over the digest; a malformed stored hash is simply a
// mismatch, never a crash.
func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
