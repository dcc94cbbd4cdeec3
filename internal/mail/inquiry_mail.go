package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/locale"
)

type inquiryView struct {
	Inquiry      domain.Inquiry
	PackageTitle string
	Submitted    string
	Strings      ackStrings
}

type ackStrings struct {
	Subject  string
	Greeting string
	Body     string
	Package  string
	Closing  string
}

var acknowledgments = map[locale.Locale]ackStrings{
	locale.English: {
		Subject:  "We received your inquiry",
		Greeting: "Dear %s,",
		Body:     "Thank you for contacting us. Our team will get back to you shortly.",
		Package:  "Package",
		Closing:  "Kind regards",
	},
	locale.Arabic: {
		Subject:  "تم استلام استفسارك",
		Greeting: "عزيزي %s،",
		Body:     "شكراً لتواصلك معنا. سيتواصل معك فريقنا قريباً.",
		Package:  "الباقة",
		Closing:  "مع أطيب التحيات",
	},
}

var operatorText = template.Must(template.New("operator").Parse(`New inquiry {{.Inquiry.ID}}

Name:    {{.Inquiry.Name}}
Email:   {{.Inquiry.Email}}
Phone:   {{.Inquiry.Phone}}
Subject: {{.Inquiry.Subject}}
Locale:  {{.Inquiry.Locale}}
{{if .PackageTitle}}Package: {{.PackageTitle}}
{{end}}Received: {{.Submitted}}

{{.Inquiry.Message}}
`))

var operatorHTML = htmltemplate.Must(htmltemplate.New("operator").Parse(`<h2>New inquiry</h2>
<table>
<tr><th align="left">Name</th><td>{{.Inquiry.Name}}</td></tr>
<tr><th align="left">Email</th><td>{{.Inquiry.Email}}</td></tr>
<tr><th align="left">Phone</th><td>{{.Inquiry.Phone}}</td></tr>
<tr><th align="left">Subject</th><td>{{.Inquiry.Subject}}</td></tr>
{{if .PackageTitle}}<tr><th align="left">Package</th><td>{{.PackageTitle}}</td></tr>{{end}}
<tr><th align="left">Received</th><td>{{.Submitted}}</td></tr>
</table>
<p style="white-space:pre-wrap">{{.Inquiry.Message}}</p>
`))

var ackText = template.Must(template.New("ack").Parse(`{{printf .Strings.Greeting .Inquiry.Name}}

{{.Strings.Body}}
{{if .PackageTitle}}
{{.Strings.Package}}: {{.PackageTitle}}
{{end}}
{{.Strings.Closing}}
`))

var ackHTML = htmltemplate.Must(htmltemplate.New("ack").Parse(`<div dir="{{.Dir}}">
<p>{{printf .View.Strings.Greeting .View.Inquiry.Name}}</p>
<p>{{.View.Strings.Body}}</p>
{{if .View.PackageTitle}}<p>{{.View.Strings.Package}}: {{.View.PackageTitle}}</p>{{end}}
<p>{{.View.Strings.Closing}}</p>
</div>
`))

// InquiryNotification renders the operator copy of an inquiry. Replies go
// straight to the customer.
func InquiryNotification(to string, inq domain.Inquiry, packageTitle string) (Message, error) {
	view := inquiryView{Inquiry: inq, PackageTitle: packageTitle, Submitted: inq.SubmittedAt.UTC().Format("2006-01-02 15:04 MST")}

	var text, html bytes.Buffer
	if err := operatorText.Execute(&text, view); err != nil {
		return Message{}, fmt.Errorf("render operator text: %w", err)
	}
	if err := operatorHTML.Execute(&html, view); err != nil {
		return Message{}, fmt.Errorf("render operator html: %w", err)
	}

	subject := "New inquiry from " + inq.Name
	if inq.Subject != "" {
		subject += ": " + inq.Subject
	}
	return Message{
		To:       []string{to},
		ReplyTo:  inq.Email,
		Subject:  subject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}

// InquiryAcknowledgment renders the customer confirmation in the inquiry locale.
func InquiryAcknowledgment(inq domain.Inquiry, packageTitle string) (Message, error) {
	loc, ok := locale.Parse(inq.Locale)
	if !ok {
		loc = locale.Default
	}
	view := inquiryView{Inquiry: inq, PackageTitle: packageTitle, Strings: acknowledgments[loc]}

	var text, html bytes.Buffer
	if err := ackText.Execute(&text, view); err != nil {
		return Message{}, fmt.Errorf("render acknowledgment text: %w", err)
	}
	if err := ackHTML.Execute(&html, struct {
		Dir  string
		View inquiryView
	}{loc.Dir(), view}); err != nil {
		return Message{}, fmt.Errorf("render acknowledgment html: %w", err)
	}

	return Message{
		To:       []string{inq.Email},
		Subject:  view.Strings.Subject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}
