package services

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"

	"eventcraft/internal/domain/models"
)

var bookingOperatorTmpl = template.Must(template.New("booking_operator").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>New discovery call booked</h2>
  <table cellpadding="6">
    <tr><td><b>Customer</b></td><td>{{.CustomerName}}</td></tr>
    <tr><td><b>Company</b></td><td>{{.Company}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
    <tr><td><b>Slot</b></td><td>{{.Slot}}</td></tr>
    <tr><td><b>Booking ID</b></td><td>{{.BookingID}}</td></tr>
  </table>
</body>
</html>`))

var bookingCustomerTmpl = template.Must(template.New("booking_customer").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>Your call is confirmed</h2>
  <p>Hi {{.CustomerName}},</p>
  <p>Your discovery call is booked for <b>{{.Slot}}</b>. We look forward to speaking with you.</p>
  <p>Booking reference: {{.BookingID}}</p>
</body>
</html>`))

var inquiryTmpl = template.Must(template.New("inquiry").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>New {{.Label}} inquiry</h2>
  <table cellpadding="6">
    <tr><td><b>Name</b></td><td>{{.Inquiry.Name}}</td></tr>
    <tr><td><b>Email</b></td><td>{{.Inquiry.Email}}</td></tr>
    <tr><td><b>Phone</b></td><td>{{.Inquiry.Phone}}</td></tr>
    <tr><td><b>Company</b></td><td>{{.Inquiry.Company}}</td></tr>
    {{if .Inquiry.EventDate}}<tr><td><b>Event date</b></td><td>{{.Inquiry.EventDate.Format "2006-01-02"}}</td></tr>{{end}}
    <tr><td><b>Headcount</b></td><td>{{.Inquiry.Headcount}}</td></tr>
    <tr><td><b>Budget</b></td><td>{{.Inquiry.Budget}}</td></tr>
    <tr><td><b>Location</b></td><td>{{.Inquiry.Location}}</td></tr>
    <tr><td><b>Message</b></td><td>{{.Inquiry.Message}}</td></tr>
  </table>
  {{if .Training}}
  <h3>Training details</h3>
  <table cellpadding="6">
    <tr><td><b>Topic</b></td><td>{{.Inquiry.TrainingTopic}}</td></tr>
    <tr><td><b>Format</b></td><td>{{.Inquiry.TrainingFormat}}</td></tr>
  </table>
  {{end}}
</body>
</html>`))

var webhookTmpl = template.Must(template.New("webhook").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>New {{.Label}} inquiry</h2>
  <table cellpadding="6">
    {{range .Fields}}<tr><td><b>{{.Key}}</b></td><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  {{if .Training}}
  <h3>Training details</h3>
  <table cellpadding="6">
    <tr><td><b>Topic</b></td><td>{{.TrainingTopic}}</td></tr>
    <tr><td><b>Format</b></td><td>{{.TrainingFormat}}</td></tr>
  </table>
  {{end}}
</body>
</html>`))

type recordField struct {
	Key   string
	Value interface{}
}

func renderBookingOperatorEmail(booking models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := bookingOperatorTmpl.Execute(&buf, booking); err != nil {
		return "", fmt.Errorf("render booking operator email: %w", err)
	}
	return buf.String(), nil
}

func renderBookingCustomerEmail(booking models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := bookingCustomerTmpl.Execute(&buf, booking); err != nil {
		return "", fmt.Errorf("render booking customer email: %w", err)
	}
	return buf.String(), nil
}

func renderInquiryEmail(inquiry models.Inquiry) (string, error) {
	var buf bytes.Buffer
	err := inquiryTmpl.Execute(&buf, struct {
		Label    string
		Inquiry  models.Inquiry
		Training bool
	}{
		Label:    inquiry.Service.Label(),
		Inquiry:  inquiry,
		Training: inquiry.Service == models.ServiceTraining,
	})
	if err != nil {
		return "", fmt.Errorf("render inquiry email: %w", err)
	}
	return buf.String(), nil
}

// renderWebhookEmail embeds the raw inserted row. Keys are sorted so the
// output is stable; the training sub-section is pulled out of the record
// for the training table only.
func renderWebhookEmail(label string, record map[string]interface{}, training bool) (string, error) {
	keys := make([]string, 0, len(record))
	for k := range record {
		if training && (k == "training_topic" || k == "training_format") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]recordField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, recordField{Key: k, Value: record[k]})
	}

	var buf bytes.Buffer
	err := webhookTmpl.Execute(&buf, struct {
		Label          string
		Fields         []recordField
		Training       bool
		TrainingTopic  interface{}
		TrainingFormat interface{}
	}{
		Label:          label,
		Fields:         fields,
		Training:       training,
		TrainingTopic:  record["training_topic"],
		TrainingFormat: record["training_format"],
	})
	if err != nil {
		return "", fmt.Errorf("render webhook email: %w", err)
	}
	return buf.String(), nil
}
