package validation

import "github.com/go-playground/validator/v10"

// Kind is a stable error-kind key, independent of presentation so messages can
// be localized without touching the rules (see pkg/i18n).
type Kind string

const (
	KindRequired          Kind = "required"
	KindTooShort          Kind = "too_short"
	KindTooLong           Kind = "too_long"
	KindInvalidCharacters Kind = "invalid_characters"
	KindInvalidFormat     Kind = "invalid_format"
	KindUnsupported       Kind = "unsupported"
)

// FieldError is one per-field validation outcome. Only field and message go on
// the wire; Kind is for programmatic consumers (localization, tests).
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
}

// tagKinds maps validator tags to stable error kinds.
var tagKinds = map[string]Kind{
	"required":     KindRequired,
	"min":          KindTooShort,
	"max":          KindTooLong,
	"contact_name": KindInvalidCharacters,
	"email":        KindInvalidFormat,
	"oneof":        KindUnsupported,
}

// messages holds the default (English) message per field and kind. These match
// what the public site has always returned, so they double as the wire-level
// contract; localized variants live in pkg/i18n keyed by field and kind.
var messages = map[string]map[Kind]string{
	FieldName: {
		KindRequired:          "Name is required",
		KindTooShort:          "Name must be at least 2 characters",
		KindTooLong:           "Name must be less than 100 characters",
		KindInvalidCharacters: "Name can only contain letters, spaces, hyphens, and apostrophes",
	},
	FieldEmail: {
		KindRequired:      "Email is required",
		KindInvalidFormat: "Please enter a valid email address",
		KindTooLong:       "Email must be less than 100 characters",
	},
	FieldProject: {
		KindRequired: "Project type is required",
		KindTooLong:  "Project type must be less than 100 characters",
	},
	FieldMessage: {
		KindRequired: "Message is required",
		KindTooShort: "Message must be at least 10 characters",
		KindTooLong:  "Message must be less than 2000 characters",
	},
	FieldCaptcha: {
		KindRequired: "CAPTCHA verification is required",
	},
	FieldLocale: {
		KindUnsupported: "Locale is not supported",
	},
}

// toFieldError converts the first failing rule reported by the validator into
// a FieldError with a stable kind and default message.
func toFieldError(field string, err error) *FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &FieldError{Field: field, Kind: KindInvalidFormat, Message: "Invalid value"}
	}
	kind, ok := tagKinds[validationErrors[0].Tag()]
	if !ok {
		kind = KindInvalidFormat
	}
	msg := messages[field][kind]
	if msg == "" {
		msg = "Invalid value"
	}
	return &FieldError{Field: field, Kind: kind, Message: msg}
}
