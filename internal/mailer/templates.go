package mailer

import (
	"bytes"
	"fmt"
	htmltmpl "html/template"
)

// Templates are compiled in rather than read from disk: there are few of
// them and the binary should not depend on a deploy-time assets directory.
var templates = map[string]*htmltmpl.Template{
	"question-reply": htmltmpl.Must(htmltmpl.New("question-reply").Parse(`<html>
<body>
  <p>Hi {{.Name}},</p>
  <p>Your question in <strong>{{.Title}}</strong> has a new answer.</p>
  <p>Log in to read the full reply.</p>
</body>
</html>`)),
}

// Render executes the named template with the given data record.
func Render(name string, data any) (string, error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown mail template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %q: %w", name, err)
	}
	return buf.String(), nil
}
