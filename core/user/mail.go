package user

import (
	"net/mail"
	"strings"
	"text/template"

	"github.com/colegiosanjose/portal/core"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(
	`Hola {{.Name}},

Tu cuenta del portal San José ha sido creada con el rol {{.Role}}.
{{- if .Grade}}
Grado: {{.Grade}}
{{- end}}
{{- if .Department}}
Departamento: {{.Department}}
{{- end}}

Ingresa con tu correo {{.Email}}.
`))

// welcomeMessage is sent to a user once created; users without an email get none.
func welcomeMessage(u User) (*core.EmailMessage, error) {
	if u.Email == "" {
		return nil, nil
	}
	var body strings.Builder
	if err := welcomeTmpl.Execute(&body, u); err != nil {
		return nil, err
	}
	return &core.EmailMessage{
		To:      []mail.Address{{Name: u.Name, Address: u.Email}},
		Subject: "Bienvenido al portal",
		Text:    body.String(),
	}, nil
}
