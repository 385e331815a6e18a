package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankstack/bankstack/internal/api/metrics"
	"github.com/bankstack/bankstack/internal/api/middleware"
	"github.com/bankstack/bankstack/internal/core/domain"
	"github.com/bankstack/bankstack/internal/core/ports"
)

// AuthHandler serves the registration, login, logout and password-reset
// routes of the login service.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `form:"email" validate:"required,email"`
}

// RegisterForm renders the registration page.
//
// @Summary      Registration form
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return renderPage(c, http.StatusOK, "register", nil)
}

// Register creates a new user and redirects to the login page.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email address"
// @Param        password  formData  string  true  "Password"
// @Success      302  {string}  string  "redirect to /login"
// @Failure      400  {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders the login page, with an expiry notice when the session
// gate redirected here after a timed-out token.
//
// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	data := struct{ SessionExpired bool }{
		SessionExpired: c.QueryParam(middleware.SessionExpiredParam) != "",
	}
	return renderPage(c, http.StatusOK, "login", data)
}

// Login verifies credentials, sets the session cookie and redirects to the
// dashboard.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email address"
// @Param        password  formData  string  true  "Password"
// @Success      302  {string}  string  "redirect to /me"
// @Failure      401  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginThrottledTotal.Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues(string(domain.OutcomeFail)).Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(string(domain.OutcomeSuccess)).Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/me")
}

// Logout clears the session cookie and redirects to the login page. The
// server holds no session state; discarding the cookie is all there is.
//
// @Summary      Logout
// @Tags         auth
// @Success      302  {string}  string  "redirect to /login"
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusFound, "/login")
}

// ForgotPasswordForm renders the password-reset request page.
//
// @Summary      Password reset form
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string
// @Router       /forgot-password [get]
func (h *AuthHandler) ForgotPasswordForm(c echo.Context) error {
	return renderPage(c, http.StatusOK, "forgot_password", nil)
}

// ForgotPassword mocks sending a reset link. Unknown emails return 404, so
// unlike login this endpoint does reveal whether an address is registered.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email  formData  string  true  "Email address"
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]string
// @Router       /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return renderPage(c, http.StatusOK, "reset_notice", struct{ Email string }{Email: req.Email})
}

// Me renders the identity-scoped dashboard for the verified subject.
//
// @Summary      Dashboard
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string
// @Failure      302  {string}  string  "redirect to /login when the gate rejects"
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	// A token outlives its subject only if the user record is gone; treat
	// that the same as carrying no session at all.
	user, err := h.authService.CurrentUser(c.Request().Context(), email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return c.Redirect(http.StatusFound, "/login")
	}
	if err != nil {
		return err
	}

	return renderPage(c, http.StatusOK, "dashboard", struct{ Email string }{Email: user.Email})
}
