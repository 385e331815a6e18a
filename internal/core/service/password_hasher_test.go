package service

import (
	"strings"
	"testing"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("pw1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a self-contained bcrypt hash, got %q", hash)
	}

	if !hasher.Check("pw1", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if hasher.Check("pw2", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	for _, stored := range []string{"", "not-a-hash", "$2a$xx$garbage"} {
		if hasher.Check("pw1", stored) {
			t.Fatalf("Check(%q): malformed hash must fail verification", stored)
		}
	}
}
