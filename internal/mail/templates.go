package mail

import (
	"bytes"
	"html/template"

	"github.com/quanticedge/profile-portal/internal/domain"
)

var bodyTmpl = template.Must(template.New("notification").Parse(`<html>
<body style="font-family: Helvetica, Arial, sans-serif;">
  <h2>{{.ProductName}}</h2>
  <p>Hello {{.Greeting}},</p>
  <p>{{.Intro}}</p>
  <table cellpadding="6" cellspacing="0" border="1">
    {{- range .Rows}}
    <tr><td><strong>{{.Key}}</strong></td><td>{{.Value}}</td></tr>
    {{- end}}
  </table>
  <p><a href="{{.ProductLink}}">{{.ProductName}}</a></p>
</body>
</html>
`))

type row struct {
	Key   string
	Value string
}

type bodyData struct {
	ProductName string
	ProductLink string
	Greeting    string
	Intro       string
	Rows        []row
}

func profileRows(user *domain.User) []row {
	return []row{
		{"Username:", user.Username},
		{"Email:", user.Email},
		{"Address:", user.Address},
		{"Nationality:", user.Nationality},
		{"Zipcode:", user.Zipcode},
		{"Occupation:", user.Occupation},
		{"About:", user.About},
		{"Gender:", user.Gender},
	}
}

func renderWelcome(productName, productLink string, user *domain.User) (string, error) {
	return render(bodyData{
		ProductName: productName,
		ProductLink: productLink,
		Greeting:    user.FullName,
		Intro:       "Welcome to " + productName + ".",
		Rows:        profileRows(user),
	})
}

func renderAdminAlert(productName, productLink string, user *domain.User) (string, error) {
	return render(bodyData{
		ProductName: productName,
		ProductLink: productLink,
		Greeting:    "Admin",
		Intro:       "A new registration form was submitted.",
		Rows:        profileRows(user),
	})
}

func render(data bodyData) (string, error) {
	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
