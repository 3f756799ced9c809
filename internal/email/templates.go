package email

import (
	"bytes"
	"text/template"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(
	`Hi {{.Name}},

Your subscription to {{.ServiceName}} is active. You will be billed
{{printf "%.2f" .Amount}} every 30 days.

Thanks for subscribing!
`))

var receiptTemplate = template.Must(template.New("receipt").Parse(
	`Hi {{.Name}},

We processed your payment of {{printf "%.2f" .Amount}} for {{.ServiceName}}.

No action is needed.
`))

type templateData struct {
	Name        string
	ServiceName string
	Amount      float64
}

func renderTemplate(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
