package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	TemplateDefault = "default"
	TemplateAdmin   = "admin"
)

var emailTemplates = map[string]*template.Template{
	TemplateDefault: template.Must(template.New(TemplateDefault).Parse(`<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: #2563eb; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; background: #f9f9f9; }
.footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>Starlink Token WiFi</h1></div>
<div class="content">{{.Content}}</div>
<div class="footer"><p>This is an automated notification from Starlink Token WiFi</p></div>
</div>
</body>
</html>`)),

	TemplateAdmin: template.Must(template.New(TemplateAdmin).Parse(`<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: #dc2626; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; background: #fef2f2; border-left: 4px solid #dc2626; }
.footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>ADMIN NOTIFICATION</h1><p>Starlink Token WiFi - Admin Panel</p></div>
<div class="content">{{.Content}}<p><strong>Action required:</strong> log in to the admin panel to review.</p></div>
<div class="footer"><p>This is an automated administrative notification</p></div>
</div>
</body>
</html>`)),
}

// RenderTemplate wraps already-formatted HTML content in one of the named
// email layouts. An unknown name falls back to the default layout.
func RenderTemplate(name, content string) (string, error) {
	tmpl, ok := emailTemplates[name]
	if !ok {
		tmpl = emailTemplates[TemplateDefault]
	}

	var buf bytes.Buffer
	data := struct{ Content template.HTML }{Content: template.HTML(content)}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
