package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

const (
	AuditSubject = "New SEO Audit Form Submission"

	// TimestampLayout renders the "Submitted on" line.
	TimestampLayout = "1/2/2006, 3:04:05 PM MST"
)

// AuditRequest is the validated data rendered into the notification email.
type AuditRequest struct {
	Name        string
	Email       string
	Phone       string
	CountryCode string
	Website     string
	Message     string
}

type auditView struct {
	AuditRequest
	SubmittedAt string
}

// Composer renders audit requests into HTML and plain-text bodies.
type Composer struct {
	now func() time.Time
}

type ComposerOption func(*Composer)

// WithClock replaces time.Now as the source of the submission timestamp.
func WithClock(now func() time.Time) ComposerOption {
	return func(c *Composer) {
		c.now = now
	}
}

func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the message for req. Reply-To is the submitter so the
// recipient can answer directly.
func (c *Composer) Compose(req AuditRequest) (Message, error) {
	view := auditView{
		AuditRequest: req,
		SubmittedAt:  c.now().Format(TimestampLayout),
	}

	var html, text bytes.Buffer
	if err := auditHTMLTemplate.Execute(&html, view); err != nil {
		return Message{}, fmt.Errorf("email: failed to execute html template: %w", err)
	}
	if err := auditTextTemplate.Execute(&text, view); err != nil {
		return Message{}, fmt.Errorf("email: failed to execute text template: %w", err)
	}

	return Message{
		FromName: req.Name,
		ReplyTo:  req.Email,
		Subject:  AuditSubject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}

// nl2br escapes s and turns its line breaks into <br> elements.
func nl2br(s string) htmltemplate.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	escaped := htmltemplate.HTMLEscapeString(s)
	return htmltemplate.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var auditHTMLTemplate = htmltemplate.Must(htmltemplate.New("audit.html").
	Funcs(htmltemplate.FuncMap{"nl2br": nl2br}).
	Parse(auditHTML))

var auditTextTemplate = texttemplate.Must(texttemplate.New("audit.txt").Parse(auditText))

const auditHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New SEO Audit Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; }
        .header { background-color: #4a5568; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
        .content { background-color: white; padding: 30px; border-radius: 0 0 5px 5px; }
        .field { margin-bottom: 20px; }
        .label { font-weight: bold; color: #4a5568; display: block; margin-bottom: 5px; }
        .value { color: #2d3748; padding: 10px; background-color: #edf2f7; border-radius: 4px; word-break: break-word; }
        .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #e2e8f0; font-size: 12px; color: #718096; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New SEO Audit Request</h1>
        </div>
        <div class="content">
            <div class="field">
                <span class="label">Name:</span>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <span class="label">Email:</span>
                <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <span class="label">Phone Number:</span>
                <div class="value">{{.CountryCode}} {{.Phone}}</div>
            </div>
            {{- if .Website}}
            <div class="field">
                <span class="label">Website URL:</span>
                <div class="value"><a href="{{.Website}}" target="_blank">{{.Website}}</a></div>
            </div>
            {{- end}}
            <div class="field">
                <span class="label">Message:</span>
                <div class="value">{{nl2br .Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from your SEO Audit Form</p>
            <p>Submitted on {{.SubmittedAt}}</p>
        </div>
    </div>
</body>
</html>
`

const auditText = `New SEO Audit Request

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.CountryCode}} {{.Phone}}
{{if .Website}}Website: {{.Website}}
{{end}}Message: {{.Message}}

Submitted on {{.SubmittedAt}}
`
