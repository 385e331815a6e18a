package handler

import (
	"bytes"
	"html/template"

	"github.com/labstack/echo/v4"
)

// Minimal inline pages for the demo UI. Rendering stays deliberately thin;
// the interesting behavior lives in the services and the session gate.
var pages = template.Must(template.New("pages").Parse(`
{{define "register"}}<!DOCTYPE html>
<html><head><title>BankStack - Register</title></head><body>
<h2>Create your BankStack account</h2>
<form method="post" action="/register">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Register</button>
</form>
<p><a href="/login">Already registered? Log in</a></p>
</body></html>{{end}}

{{define "login"}}<!DOCTYPE html>
<html><head><title>BankStack - Login</title></head><body>
<h2>Log in to BankStack</h2>
{{if .SessionExpired}}<p class="notice">Your session has expired. Please log in again.</p>{{end}}
<form method="post" action="/login">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Log in</button>
</form>
<p><a href="/register">Register</a> &middot; <a href="/forgot-password">Forgot password?</a></p>
</body></html>{{end}}

{{define "forgot_password"}}<!DOCTYPE html>
<html><head><title>BankStack - Reset password</title></head><body>
<h2>Reset your password</h2>
<form method="post" action="/forgot-password">
  <label>Email <input type="email" name="email" required></label>
  <button type="submit">Send reset link</button>
</form>
</body></html>{{end}}

{{define "reset_notice"}}<!DOCTYPE html>
<html><head><title>BankStack - Reset password</title></head><body>
<h2>Check your inbox</h2>
<p>A password reset link has been sent to {{.Email}}.</p>
<p><a href="/login">Back to login</a></p>
</body></html>{{end}}

{{define "dashboard"}}<!DOCTYPE html>
<html><head><title>BankStack - Dashboard</title></head><body>
<h2>Welcome, {{.Email}}</h2>
<p>You are logged in.</p>
<p><a href="/logout">Log out</a></p>
</body></html>{{end}}

{{define "account"}}<!DOCTYPE html>
<html><head><title>BankStack - Account</title></head><body>
<h2>Your account</h2>
{{if .Account}}
<p>Email: {{.Account.Email}}</p>
<p>Type: {{.Account.AccountType}}</p>
<p>Balance: {{printf "%.2f" .Account.Balance}}</p>
{{else}}
<p>No account yet.</p>
<form method="post" action="/ui/account">
  <label>Account type
    <select name="account_type">
      <option value="checking">Checking</option>
      <option value="savings">Savings</option>
    </select>
  </label>
  <button type="submit">Open account</button>
</form>
{{end}}
</body></html>{{end}}
`))

func renderPage(c echo.Context, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}
