package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-portfolio-backend/pkg/validation"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize("en"))
	assert.Equal(t, "es", Normalize("es"))
	assert.Equal(t, "en", Normalize(""))
	assert.Equal(t, "en", Normalize("fr"))
}

func TestTranslate(t *testing.T) {
	t.Run("locale catalog wins", func(t *testing.T) {
		assert.Equal(t, "Enviar mensaje", Translate("es", "form.submit"))
		assert.Equal(t, "Send Message", Translate("en", "form.submit"))
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		assert.Equal(t, "Send Message", Translate("de", "form.submit"))
	})

	t.Run("missing key returns the key", func(t *testing.T) {
		assert.Equal(t, "form.nope", Translate("en", "form.nope"))
	})
}

func TestFieldMessage(t *testing.T) {
	assert.Equal(t, "Name must be at least 2 characters",
		FieldMessage("en", validation.FieldName, validation.KindTooShort))
	assert.Equal(t, "El mensaje debe tener al menos 10 caracteres",
		FieldMessage("es", validation.FieldMessage, validation.KindTooShort))
	assert.Equal(t, "CAPTCHA verification is required",
		FieldMessage("en", validation.FieldCaptcha, validation.KindRequired))
}
