package email

import (
	"html/template"
	"strings"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h1 style="color: #e58fb1;">Welcome to PebbleWay{{if .Username}}, {{.Username}}{{end}}! 🌸</h1>
  <p>We're so happy you're here. Confirm your email address to start tracking
  your goals and journaling your days.</p>
  <p>If you didn't create this account, you can safely ignore this email.</p>
  <p style="color: #999; font-size: 12px;">— The PebbleWay team</p>
</div>
`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h1 style="color: #e58fb1;">Reset your password</h1>
  <p>A password reset was requested for {{.Email}}. Follow the link in the
  provider's email to choose a new password.</p>
  <p>If this wasn't you, your account is still safe and no action is needed.</p>
  <p style="color: #999; font-size: 12px;">— The PebbleWay team</p>
</div>
`))

func renderConfirmation(username string) (string, error) {
	var b strings.Builder
	err := confirmationTmpl.Execute(&b, struct{ Username string }{Username: username})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderPasswordReset(email string) (string, error) {
	var b strings.Builder
	err := passwordResetTmpl.Execute(&b, struct{ Email string }{Email: email})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
