package templates

import (
	"html/template"
	"time"

	"github.com/a-h/templ"
)

// ContactData is a submitted contact form.
type ContactData struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	Location   string
	UnitType   string
	ReceivedAt time.Time
}

// AppointmentData is a submitted meeting request.
type AppointmentData struct {
	Name       string
	Phone      string
	Date       string
	Time       string
	ReceivedAt time.Time
}

var layout = template.Must(template.New("layout").Funcs(template.FuncMap{
	"stamp": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04 MST") },
}).Parse(`{{define "row"}}<tr><td style="padding:6px 12px;color:#6b7280;font-weight:600">{{.Label}}</td><td style="padding:6px 12px;color:#111827">{{.Value}}</td></tr>{{end}}
{{define "layout"}}<!DOCTYPE html>
<html><body style="margin:0;padding:24px;background:#f9fafb;font-family:Arial,sans-serif">
<table role="presentation" style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:8px;padding:24px">
<tr><td><h2 style="margin:0 0 16px;color:#111827">{{.Title}}</h2>
<table role="presentation" style="border-collapse:collapse;width:100%">{{range .Rows}}{{template "row" .}}{{end}}</table>
<p style="margin-top:16px;color:#9ca3af;font-size:12px">{{stamp .ReceivedAt}}</p></td></tr>
</table></body></html>{{end}}`))

type row struct{ Label, Value string }

type page struct {
	Title      string
	Rows       []row
	ReceivedAt time.Time
}

// ContactNotification renders the support notification for a contact form.
func ContactNotification(d ContactData) templ.Component {
	return templ.FromGoHTML(layout.Lookup("layout"), page{
		Title: "New contact request",
		Rows: []row{
			{"Name", d.Name},
			{"Email", d.Email},
			{"Phone", d.Phone},
			{"Location", d.Location},
			{"Unit type", d.UnitType},
			{"Message", d.Message},
		},
		ReceivedAt: d.ReceivedAt,
	})
}

// AppointmentNotification renders the support notification for a meeting
// request.
func AppointmentNotification(d AppointmentData) templ.Component {
	return templ.FromGoHTML(layout.Lookup("layout"), page{
		Title: "New appointment request",
		Rows: []row{
			{"Name", d.Name},
			{"Phone", d.Phone},
			{"Date", d.Date},
			{"Time", d.Time},
		},
		ReceivedAt: d.ReceivedAt,
	})
}
