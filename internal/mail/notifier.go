package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/DanielSantaR/final-web-auth/internal/models"
)

var (
	securityCodeTmpl = template.Must(template.New("security_code").Parse(`<html>
<body>
  <p>Hello,</p>
  <p>Use this code to log in to {{.AppName}}:</p>
  <h2>{{.Code}}</h2>
  <p>The code works exactly once and expires with your session.</p>
</body>
</html>`))

	newAccountTmpl = template.Must(template.New("new_account").Parse(`<html>
<body>
  <p>Welcome to {{.AppName}}!</p>
  <p>An account was created for you with the username <b>{{.Username}}</b>.</p>
</body>
</html>`))

	newOwnerTmpl = template.Must(template.New("new_owner").Parse(`<html>
<body>
  <p>Hello {{.Names}},</p>
  <p>You were registered as a vehicle owner at {{.AppName}}. You can now
  request a login code with your identity card.</p>
</body>
</html>`))

	vehicleAssignedTmpl = template.Must(template.New("vehicle_assigned").Parse(`<html>
<body>
  <p>Hello {{.Names}},</p>
  <p>The vehicle <b>{{.Plate}}</b> ({{.Brand}} {{.Model}}) is now registered
  under your name at {{.AppName}}.</p>
</body>
</html>`))

	vehicleUpdatedTmpl = template.Must(template.New("vehicle_updated").Parse(`<html>
<body>
  <p>Hello,</p>
  <p>The record of your vehicle <b>{{.Plate}}</b> was updated. Current
  state: {{.State}}.</p>
</body>
</html>`))

	reparationDetailTmpl = template.Must(template.New("reparation_detail").Parse(`<html>
<body>
  <p>Hello,</p>
  <p>A reparation was registered for your vehicle:</p>
  <p>{{.Description}}</p>
  {{if .HasCost}}<p>Cost: {{printf "%.2f" .Cost}}</p>{{end}}
</body>
</html>`))
)

// Notifier renders the workshop's templated messages and hands them to a
// Sender. Every method is best-effort and reports delivery with a bool.
type Notifier struct {
	sender  Sender
	appName string
}

func NewNotifier(sender Sender, appName string) *Notifier {
	return &Notifier{sender: sender, appName: appName}
}

func (n *Notifier) SecurityCode(to, code string) bool {
	body, err := render(securityCodeTmpl, map[string]any{"AppName": n.appName, "Code": code})
	if err != nil {
		return false
	}
	return n.sender.Send(to, fmt.Sprintf("%s: your login code", n.appName), body)
}

func (n *Notifier) NewAccount(to, username string) bool {
	body, err := render(newAccountTmpl, map[string]any{"AppName": n.appName, "Username": username})
	if err != nil {
		return false
	}
	return n.sender.Send(to, fmt.Sprintf("%s: new account", n.appName), body)
}

func (n *Notifier) NewOwner(to, names string) bool {
	body, err := render(newOwnerTmpl, map[string]any{"AppName": n.appName, "Names": names})
	if err != nil {
		return false
	}
	return n.sender.Send(to, fmt.Sprintf("%s: welcome", n.appName), body)
}

func (n *Notifier) VehicleAssigned(to, names string, v models.Vehicle) bool {
	body, err := render(vehicleAssignedTmpl, map[string]any{
		"AppName": n.appName, "Names": names,
		"Plate": v.Plate, "Brand": v.Brand, "Model": v.Model,
	})
	if err != nil {
		return false
	}
	return n.sender.Send(to, fmt.Sprintf("%s: vehicle registered", n.appName), body)
}

func (n *Notifier) VehicleUpdated(to string, v models.Vehicle) bool {
	body, err := render(vehicleUpdatedTmpl, map[string]any{"Plate": v.Plate, "State": v.State})
	if err != nil {
		return false
	}
	return n.sender.Send(to, fmt.Sprintf("%s: vehicle updated", n.appName), body)
}

func (n *Notifier) ReparationDetail(to, description string, cost *float64) bool {
	data := map[string]any{"Description": description, "HasCost": cost != nil}
	if cost != nil {
		data["Cost"] = *cost
	}
	body, err := render(reparationDetailTmpl, data)
	if err != nil {
		return false
	}
	return n.sender.Send(to, fmt.Sprintf("%s: reparation detail", n.appName), body)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
