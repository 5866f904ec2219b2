package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// Template keys used across the registration and auction flows.
const (
	TemplateRegistrationApproved = "registration-approved"
	TemplateRegistrationRejected = "registration-rejected"
	TemplatePlayerSold           = "player-sold"
	TemplatePlayerUnsold         = "player-unsold"
	TemplateOwnerWelcome         = "owner-welcome"
)

type emailTemplate struct {
	subject string
	html    string
	text    string
}

var templates = map[string]emailTemplate{
	TemplateRegistrationApproved: {
		subject: "Registration approved — {{.TournamentName}}",
		html: `<h2>Welcome to {{.TournamentName}}!</h2>
<p>Hi {{.Name}},</p>
<p>Your team <strong>{{.TeamName}}</strong> has been approved. See you on the pitch.</p>`,
		text: `Hi {{.Name}},

Your team {{.TeamName}} has been approved for {{.TournamentName}}. See you on the pitch.`,
	},
	TemplateRegistrationRejected: {
		subject: "Registration update — {{.TournamentName}}",
		html: `<p>Hi {{.Name}},</p>
<p>Unfortunately your registration for <strong>{{.TournamentName}}</strong> could not be accepted.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}`,
		text: `Hi {{.Name}},

Unfortunately your registration for {{.TournamentName}} could not be accepted.
{{if .Reason}}Reason: {{.Reason}}{{end}}`,
	},
	TemplatePlayerSold: {
		subject: "You've been picked — {{.TournamentName}}",
		html: `<h2>Congratulations {{.Name}}!</h2>
<p>You were sold to <strong>{{.TeamName}}</strong> for <strong>{{.SoldPrice}}</strong> points in the {{.TournamentName}} auction.</p>`,
		text: `Congratulations {{.Name}}!

You were sold to {{.TeamName}} for {{.SoldPrice}} points in the {{.TournamentName}} auction.`,
	},
	TemplatePlayerUnsold: {
		subject: "Auction update — {{.TournamentName}}",
		html: `<p>Hi {{.Name}},</p>
<p>You went unsold in this round of the {{.TournamentName}} auction. You may return to the pool in a later round.</p>`,
		text: `Hi {{.Name}},

You went unsold in this round of the {{.TournamentName}} auction. You may return to the pool in a later round.`,
	},
	TemplateOwnerWelcome: {
		subject: "Your team owner portal — {{.TournamentName}}",
		html: `<h2>Welcome, {{.Name}}!</h2>
<p>Your team <strong>{{.TeamName}}</strong> is registered for the {{.TournamentName}} auction
with a budget of <strong>{{.Budget}}</strong> points.</p>
<p>Track your squad and remaining budget here: <a href="{{.PortalURL}}">{{.PortalURL}}</a></p>`,
		text: `Welcome, {{.Name}}!

Your team {{.TeamName}} is registered for the {{.TournamentName}} auction with a budget of {{.Budget}} points.
Track your squad and remaining budget here: {{.PortalURL}}`,
	},
}

// Render produces subject, HTML body and text body for a template key.
func Render(key string, vars map[string]interface{}) (subject, html, text string, err error) {
	tpl, ok := templates[key]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", key)
	}

	subject, err = renderText(tpl.subject, vars)
	if err != nil {
		return "", "", "", fmt.Errorf("render subject for %s: %w", key, err)
	}
	html, err = renderHTML(tpl.html, vars)
	if err != nil {
		return "", "", "", fmt.Errorf("render html for %s: %w", key, err)
	}
	text, err = renderText(tpl.text, vars)
	if err != nil {
		return "", "", "", fmt.Errorf("render text for %s: %w", key, err)
	}
	return subject, html, text, nil
}

func renderHTML(tpl string, vars map[string]interface{}) (string, error) {
	t, err := htmltemplate.New("email").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(tpl string, vars map[string]interface{}) (string, error) {
	t, err := texttemplate.New("email").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", err
	}
	return buf.String(), nil
}
