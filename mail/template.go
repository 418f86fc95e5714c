package mail

import (
	"fmt"
	"html/template"
	"strings"

	"folio/models"
)

// notSpecified stands in for optional fields the submitter left blank.
const notSpecified = "Not specified"

// contactTemplate is the fixed layout for contact-form notification emails:
// a header band with the submission fields, a reply button linking to the
// submitter's address, and a footer band with the copyright line.
// template.Must: a malformed template is a configuration bug, not a runtime
// condition.
var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: Arial, sans-serif;">
	<div style="max-width: 600px; margin: 0 auto;">
		<div style="background-color: #ffffff; padding: 20px;">
			<h1 style="font-size: 24px; color: #333; margin: 0 0 10px 0;">New Contact Form Submission</h1>
			<hr style="border: none; border-top: 1px solid #ddd;" />
			<p style="font-size: 18px; color: #555; line-height: 1.6;">
				<strong>Name:</strong> {{.Name}} <br/>
				<strong>Email:</strong> {{.Email}} <br/>
				<strong>Phone:</strong> {{.Phone}} <br/>
				<strong>Source:</strong> {{.Source}} <br/>
				<strong>Services Requested:</strong> {{.Services}}
			</p>
			<p style="margin: 30px 0;">
				<a href="mailto:{{.Email}}" style="background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">
					Reply to {{.Name}}
				</a>
			</p>
		</div>
		<div style="background-color: #222; padding: 20px;">
			<p style="font-size: 14px; color: #fff; margin: 0;">
				&copy; {{.Year}} Your Company. All rights reserved.
			</p>
		</div>
	</div>
</body>
</html>
`))

type contactTemplateData struct {
	Name     string
	Email    string
	Phone    string
	Source   string
	Services string
	Year     int
}

// RenderContactEmail produces the HTML notification body for one submission.
// Pure: no I/O. Optional fields left blank render as "Not specified".
func RenderContactEmail(req models.ContactRequest, year int) (string, error) {
	data := contactTemplateData{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Source:   orNotSpecified(req.Source),
		Services: orNotSpecified(req.Services),
		Year:     year,
	}

	var b strings.Builder
	if err := contactTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render contact email: %w", err)
	}
	return b.String(), nil
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}
