package email

import (
	"bytes"
	"html/template"
)

// snippetLimit bounds the message excerpt embedded in the confirmation email.
const snippetLimit = 100

// Snippet returns the first snippetLimit characters of msg, with an ellipsis
// marker when truncated. Messages at or under the limit pass through as-is.
func Snippet(msg string) string {
	runes := []rune(msg)
	if len(runes) <= snippetLimit {
		return msg
	}
	return string(runes[:snippetLimit]) + "..."
}

func subjectFor(locale string) string {
	if locale == "es" {
		return "¡Gracias por contactarme! - Fernando Rodriguez"
	}
	return "Thanks for reaching out! - Fernando Rodriguez"
}

type templateData struct {
	Name           string
	Email          string
	Project        string
	MessageSnippet string
	// Localized copy
	Heading      string
	Greeting     string
	Intro        string
	SummaryTitle string
	LabelName    string
	LabelEmail   string
	LabelProject string
	LabelSnippet string
	Outro        string
	Footer       string
}

// confirmationTemplate is shared by both locales; only the copy differs.
const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Heading}}</title>
    <style>
        body { font-family: -apple-system, Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1d4ed8; color: white; padding: 24px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { padding: 24px; background: #f9fafb; }
        .summary { background: white; padding: 16px; border-radius: 8px; margin: 16px 0; }
        .row { margin-bottom: 8px; }
        .label { font-weight: bold; color: #555; }
        .snippet { background: #f3f4f6; padding: 12px; border-left: 4px solid #1d4ed8; font-style: italic; }
        .footer { text-align: center; padding: 16px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Heading}}</h1>
        </div>
        <div class="content">
            <p>{{.Greeting}} <strong>{{.Name}}</strong>,</p>
            <p>{{.Intro}}</p>
            <div class="summary">
                <h2>{{.SummaryTitle}}</h2>
                <div class="row"><span class="label">{{.LabelName}}:</span> {{.Name}}</div>
                <div class="row"><span class="label">{{.LabelEmail}}:</span> {{.Email}}</div>
                <div class="row"><span class="label">{{.LabelProject}}:</span> {{.Project}}</div>
                <div class="row"><span class="label">{{.LabelSnippet}}:</span></div>
                <div class="snippet">&ldquo;{{.MessageSnippet}}&rdquo;</div>
            </div>
            <p>{{.Outro}}</p>
        </div>
        <div class="footer">
            <p>{{.Footer}}</p>
        </div>
    </div>
</body>
</html>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))

func localizedCopy(locale string) templateData {
	if locale == "es" {
		return templateData{
			Heading:      "¡Gracias por contactarme!",
			Greeting:     "Hola",
			Intro:        "Gracias por contactarme a través de mi sitio web de portafolio. He recibido tu mensaje y quería confirmar que llegó exitosamente.",
			SummaryTitle: "Lo que enviaste:",
			LabelName:    "Nombre",
			LabelEmail:   "Email",
			LabelProject: "Tipo de proyecto",
			LabelSnippet: "Fragmento del mensaje",
			Outro:        "Revisaré tu mensaje con cuidado y te responderé dentro de 24 horas. Si tu proyecto es urgente, no dudes en escribirme directamente por LinkedIn.",
			Footer:       "Este correo fue enviado desde el formulario de contacto de fmemije.com.",
		}
	}
	return templateData{
		Heading:      "Thanks for reaching out!",
		Greeting:     "Hi",
		Intro:        "Thank you for contacting me through my portfolio website. I've received your message and wanted to confirm that it came through successfully.",
		SummaryTitle: "What you submitted:",
		LabelName:    "Name",
		LabelEmail:   "Email",
		LabelProject: "Project Type",
		LabelSnippet: "Message snippet",
		Outro:        "I'll review your message carefully and get back to you within 24 hours. If your project is time-sensitive, feel free to reach out to me directly on LinkedIn.",
		Footer:       "This email was sent from the fmemije.com contact form.",
	}
}

func renderConfirmation(data ConfirmationData) (string, error) {
	td := localizedCopy(data.Locale)
	td.Name = data.Name
	td.Email = data.Email
	td.Project = data.Project
	td.MessageSnippet = Snippet(data.Message)

	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, td); err != nil {
		return "", err
	}
	return body.String(), nil
}
