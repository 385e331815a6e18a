package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankstack/bankstack/internal/core/domain"
	"github.com/bankstack/bankstack/internal/core/ports"
)

// AuthService implements registration, login and the mocked password-reset
// lookup. Every login attempt, successful or not, is handed to the audit
// recorder with the email exactly as submitted.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	audit    ports.LoginAttemptRecorder
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, audit ports.LoginAttemptRecorder, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		audit:    audit,
		throttle: throttle,
		logger:   logger,
	}
}

// Register creates a new user. The duplicate check is checked-then-inserted;
// a concurrent duplicate surfaces from the repository as the same
// ErrUserExists, so callers see one error either way.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a session token for the subject.
// Unknown user and wrong password both return ErrInvalidCredentials so the
// response cannot be used to enumerate registered emails.
func (s *AuthService) Login(ctx context.Context, email, password, sourceIP string) (string, error) {
	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, email, sourceIP)
		if err != nil {
			// A throttle outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			s.audit.Record(domain.LoginAttempt{
				Email:     email,
				SourceIP:  sourceIP,
				Outcome:   domain.OutcomeFail,
				Timestamp: time.Now().UTC(),
			})
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", s.failLogin(ctx, email, sourceIP)
	}
	if err != nil {
		return "", err
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", s.failLogin(ctx, email, sourceIP)
	}

	s.audit.Record(domain.LoginAttempt{
		Email:     email,
		SourceIP:  sourceIP,
		Outcome:   domain.OutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) failLogin(ctx context.Context, email, sourceIP string) error {
	s.audit.Record(domain.LoginAttempt{
		Email:     email,
		SourceIP:  sourceIP,
		Outcome:   domain.OutcomeFail,
		Timestamp: time.Now().UTC(),
	})
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email, sourceIP); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	s.logger.Info().Str("email", email).Str("source_ip", sourceIP).Msg("login failed")
	return domain.ErrInvalidCredentials
}

// CurrentUser resolves a verified token subject to its stored user record.
// Token validity is purely cryptographic, so the subject must still be
// cross-referenced against the credential store at use sites.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// ForgotPassword checks whether the email is registered. Unlike login, the
// reset path deliberately distinguishes unknown emails with ErrUserNotFound.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("password reset requested")
	return nil
}
