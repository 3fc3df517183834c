// Package i18n holds the en/es message catalogs used by the contact form
// client: validation error messages keyed by field and error kind, and the
// form status strings. The server always responds with the default (English)
// messages; localization happens at presentation time.
package i18n

import (
	"fmt"

	"go-portfolio-backend/pkg/validation"
)

const DefaultLocale = "en"

// SupportedLocale reports whether the pipeline knows the locale.
func SupportedLocale(locale string) bool {
	return locale == "en" || locale == "es"
}

// Normalize maps unknown or empty locales to the default.
func Normalize(locale string) string {
	if SupportedLocale(locale) {
		return locale
	}
	return DefaultLocale
}

var catalogs = map[string]map[string]string{
	"en": {
		"form.submit":         "Send Message",
		"form.sending":        "Sending...",
		"form.success":        "Message Sent!",
		"form.error":          "Something went wrong",
		"form.successMessage": "Thanks for reaching out! I'll get back to you within 24 hours.",
		"form.errorMessage":   "Please try again or email me directly.",
		"form.captchaPending": "Please complete the CAPTCHA challenge.",

		"name.required":                  "Name is required",
		"name.too_short":                 "Name must be at least 2 characters",
		"name.too_long":                  "Name must be less than 100 characters",
		"name.invalid_characters":        "Name can only contain letters, spaces, hyphens, and apostrophes",
		"email.required":                 "Email is required",
		"email.invalid_format":           "Please enter a valid email address",
		"email.too_long":                 "Email must be less than 100 characters",
		"project.required":               "Project type is required",
		"project.too_long":               "Project type must be less than 100 characters",
		"message.required":               "Message is required",
		"message.too_short":              "Message must be at least 10 characters",
		"message.too_long":               "Message must be less than 2000 characters",
		"cf-turnstile-response.required": "CAPTCHA verification is required",
		"locale.unsupported":             "Locale is not supported",
	},
	"es": {
		"form.submit":         "Enviar mensaje",
		"form.sending":        "Enviando...",
		"form.success":        "¡Mensaje enviado!",
		"form.error":          "Algo salió mal",
		"form.successMessage": "¡Gracias por escribirme! Te responderé dentro de 24 horas.",
		"form.errorMessage":   "Inténtalo de nuevo o escríbeme directamente por correo.",
		"form.captchaPending": "Por favor completa el desafío CAPTCHA.",

		"name.required":                  "El nombre es obligatorio",
		"name.too_short":                 "El nombre debe tener al menos 2 caracteres",
		"name.too_long":                  "El nombre debe tener menos de 100 caracteres",
		"name.invalid_characters":        "El nombre solo puede contener letras, espacios, guiones y apóstrofes",
		"email.required":                 "El correo es obligatorio",
		"email.invalid_format":           "Ingresa una dirección de correo válida",
		"email.too_long":                 "El correo debe tener menos de 100 caracteres",
		"project.required":               "El tipo de proyecto es obligatorio",
		"project.too_long":               "El tipo de proyecto debe tener menos de 100 caracteres",
		"message.required":               "El mensaje es obligatorio",
		"message.too_short":              "El mensaje debe tener al menos 10 caracteres",
		"message.too_long":               "El mensaje debe tener menos de 2000 caracteres",
		"cf-turnstile-response.required": "La verificación CAPTCHA es obligatoria",
		"locale.unsupported":             "Idioma no soportado",
	},
}

// Translate looks up key in the locale's catalog, falling back to English and
// then to the key itself so a missing entry is visible, not a blank string.
func Translate(locale, key string) string {
	if msg, ok := catalogs[Normalize(locale)][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// FieldMessage localizes a validation error by field and stable kind.
func FieldMessage(locale, field string, kind validation.Kind) string {
	return Translate(locale, fmt.Sprintf("%s.%s", field, kind))
}
