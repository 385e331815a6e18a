package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankstack/bankstack/internal/api/metrics"
	"github.com/bankstack/bankstack/internal/core/domain"
	"github.com/bankstack/bankstack/internal/core/ports"
)

// AccountHandler serves the account view and creation routes of the
// account service.
type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type openAccountRequest struct {
	AccountType string `form:"account_type" validate:"required,oneof=checking savings"`
}

// Home confirms the account service is reachable.
//
// @Summary      Service banner
// @Tags         account
// @Produce      html
// @Success      200  {string}  string
// @Router       / [get]
func (h *AccountHandler) Home(c echo.Context) error {
	return c.HTML(http.StatusOK, "<h3>Account Service is up!</h3>")
}

// View renders the caller's account, or the open-account form when no
// account exists yet.
//
// @Summary      View the caller's account
// @Tags         account
// @Produce      html
// @Success      200  {string}  string
// @Router       /ui/account [get]
func (h *AccountHandler) View(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	account, err := h.accountService.Get(c.Request().Context(), email)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	return renderPage(c, http.StatusOK, "account", struct{ Account *domain.Account }{Account: account})
}

// Open creates the caller's account if none exists yet, then redirects back
// to the account view. Opening twice is a no-op.
//
// @Summary      Open an account
// @Tags         account
// @Accept       x-www-form-urlencoded
// @Param        account_type  formData  string  true  "checking or savings"
// @Success      302  {string}  string  "redirect to /ui/account"
// @Failure      400  {object}  map[string]string
// @Router       /ui/account [post]
func (h *AccountHandler) Open(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req openAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accountService.Open(c.Request().Context(), email, req.AccountType)
	if err != nil {
		return err
	}

	metrics.AccountsOpenedTotal.WithLabelValues(account.AccountType).Inc()
	return c.Redirect(http.StatusFound, "/ui/account")
}
