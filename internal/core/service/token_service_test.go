package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bankstack/bankstack/internal/core/domain"
)

func TestTokenService_IssueVerify_Roundtrip(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	for _, subject := range []string{"a@b.com", "carol@example.com", "UPPER@CASE.COM"} {
		token, err := svc.Issue(subject)
		if err != nil {
			t.Fatalf("Issue(%q) returned error: %v", subject, err)
		}
		got, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if got != subject {
			t.Fatalf("expected subject %q, got %q", subject, got)
		}
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := &TokenService{secret: []byte("secret"), ttl: -time.Minute, method: jwt.SigningMethodHS256}

	token, err := svc.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Expiry must be reported as expired, never as a signature problem.
	if _, err := svc.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}

	token, err := svc.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := svc.Verify(tampered); err != domain.ErrTokenSignatureInvalid {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuer, _ := NewTokenService("secret-one", "HS256", time.Hour)
	verifier, _ := NewTokenService("secret-two", "HS256", time.Hour)

	token, err := issuer.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrTokenSignatureInvalid {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc, _ := NewTokenService("secret", "HS256", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(token); err != domain.ErrTokenMalformed {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestNewTokenService_RejectsNonHMAC(t *testing.T) {
	if _, err := NewTokenService("secret", "RS256", time.Hour); err == nil {
		t.Fatalf("expected error for RS256")
	}
	if _, err := NewTokenService("secret", "none", time.Hour); err == nil {
		t.Fatalf("expected error for none algorithm")
	}
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	if _, err := NewTokenService("", "HS256", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	svc, err := NewTokenService("secret", "HS256", 0)
	if err != nil {
		t.Fatalf("NewTokenService returned error: %v", err)
	}
	if svc.ttl != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, svc.ttl)
	}
}
