package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Wire-level field names. These appear verbatim in validation error details and
// must match the JSON contract of the contact endpoint.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldProject = "project"
	FieldMessage = "message"
	FieldCaptcha = "cf-turnstile-response"
	FieldLocale  = "locale"
)

// Letters including extended Latin (À-ſ), spaces, hyphens, apostrophes.
var nameRegex = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{017F}\s'-]+$`)

// Input is one candidate submission as seen by the schema. Both the client
// form and the server validate through this type, so they accept and reject
// exactly the same inputs.
type Input struct {
	Name         string
	Email        string
	Project      string
	Message      string
	CaptchaToken string
	Locale       string
}

// fieldTags is the canonical rule set. Tags are evaluated left to right and
// the first failing rule wins, which fixes the per-field error priority.
var fieldTags = map[string]string{
	FieldName:    "required,min=2,max=100,contact_name",
	FieldEmail:   "required,email,max=100",
	FieldProject: "required,max=100",
	FieldMessage: "required,min=10,max=2000",
	FieldCaptcha: "required",
	FieldLocale:  "omitempty,oneof=en es",
}

// fieldOrder fixes the order of entries in whole-submission error details.
var fieldOrder = []string{FieldName, FieldEmail, FieldProject, FieldMessage, FieldCaptcha, FieldLocale}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("contact_name", validName)
	return v
}

// validName reports whether a string contains only valid name characters.
// Emptiness and length are handled by required/min/max.
func validName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

// Normalize applies the schema's canonical transformations: email lowercased,
// message trimmed. Length rules apply to the normalized values, so Validate
// runs this itself; it is exported for callers that need the normalized form
// without validating (the client form does, before transmission).
func Normalize(in *Input) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Message = strings.TrimSpace(in.Message)
}

// Field validates a single field incrementally, as the client form does on
// blur and on debounced change. Returns nil when the value is acceptable.
func Field(field, value string) *FieldError {
	tags, ok := fieldTags[field]
	if !ok {
		return nil
	}
	switch field {
	case FieldEmail:
		value = strings.ToLower(strings.TrimSpace(value))
	case FieldMessage:
		value = strings.TrimSpace(value)
	}
	if err := validate.Var(value, tags); err != nil {
		return toFieldError(field, err)
	}
	return nil
}

// Validate normalizes the input in place and checks the whole submission.
// It returns one error per failing field, in schema order; an empty slice
// means the submission is acceptable.
func Validate(in *Input) []FieldError {
	Normalize(in)
	values := map[string]string{
		FieldName:    in.Name,
		FieldEmail:   in.Email,
		FieldProject: in.Project,
		FieldMessage: in.Message,
		FieldCaptcha: in.CaptchaToken,
		FieldLocale:  in.Locale,
	}
	var errs []FieldError
	for _, field := range fieldOrder {
		if err := validate.Var(values[field], fieldTags[field]); err != nil {
			errs = append(errs, *toFieldError(field, err))
		}
	}
	return errs
}
