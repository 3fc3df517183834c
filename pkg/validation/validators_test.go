package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		Name:         "Ana María",
		Email:        "ana@example.com",
		Project:      "Consulting",
		Message:      "I would like to discuss a potential collaboration.",
		CaptchaToken: "tok-123",
		Locale:       "es",
	}
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	in := validInput()
	assert.Empty(t, Validate(&in))
}

func TestNameRules(t *testing.T) {
	cases := []struct {
		name  string
		value string
		kind  Kind
	}{
		{"empty", "", KindRequired},
		{"single char", "A", KindTooShort},
		{"too long", strings.Repeat("a", 101), KindTooLong},
		{"digits", "John3", KindInvalidCharacters},
		{"symbols", "John@Doe", KindInvalidCharacters},
		{"emoji", "John 🚀", KindInvalidCharacters},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Field(FieldName, tc.value)
			require.NotNil(t, err)
			assert.Equal(t, FieldName, err.Field)
			assert.Equal(t, tc.kind, err.Kind)
		})
	}

	accepted := []string{
		"Jo",
		"Ana María",
		"Jean-Luc",
		"O'Brien",
		"Žofia Čechová",
		strings.Repeat("a", 100),
	}
	for _, name := range accepted {
		assert.Nil(t, Field(FieldName, name), "expected %q to be accepted", name)
	}
}

func TestEmailRules(t *testing.T) {
	t.Run("missing at sign", func(t *testing.T) {
		err := Field(FieldEmail, "not-an-email")
		require.NotNil(t, err)
		assert.Equal(t, KindInvalidFormat, err.Kind)
	})

	t.Run("too long", func(t *testing.T) {
		addr := strings.Repeat("a", 95) + "@example.com"
		err := Field(FieldEmail, addr)
		require.NotNil(t, err)
		assert.Equal(t, KindTooLong, err.Kind)
	})

	t.Run("normalized to lowercase", func(t *testing.T) {
		in := validInput()
		in.Email = "ANA@Example.com"
		require.Empty(t, Validate(&in))
		assert.Equal(t, "ana@example.com", in.Email)
	})
}

func TestMessageRules(t *testing.T) {
	t.Run("short after trim rejected", func(t *testing.T) {
		in := validInput()
		in.Message = "   short   "
		errs := Validate(&in)
		require.Len(t, errs, 1)
		assert.Equal(t, FieldMessage, errs[0].Field)
		assert.Equal(t, KindTooShort, errs[0].Kind)
	})

	t.Run("exactly 2000 accepted", func(t *testing.T) {
		in := validInput()
		in.Message = strings.Repeat("m", 2000)
		assert.Empty(t, Validate(&in))
	})

	t.Run("2001 rejected", func(t *testing.T) {
		in := validInput()
		in.Message = strings.Repeat("m", 2001)
		errs := Validate(&in)
		require.Len(t, errs, 1)
		assert.Equal(t, KindTooLong, errs[0].Kind)
	})

	t.Run("trimmed before transmission", func(t *testing.T) {
		in := validInput()
		in.Message = "  I would like to discuss a potential collaboration.  "
		require.Empty(t, Validate(&in))
		assert.Equal(t, "I would like to discuss a potential collaboration.", in.Message)
	})
}

func TestCaptchaTokenRequired(t *testing.T) {
	in := validInput()
	in.CaptchaToken = ""
	errs := Validate(&in)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldCaptcha, errs[0].Field)
	assert.Equal(t, KindRequired, errs[0].Kind)
	assert.Equal(t, "CAPTCHA verification is required", errs[0].Message)
}

func TestLocaleRules(t *testing.T) {
	t.Run("empty allowed", func(t *testing.T) {
		in := validInput()
		in.Locale = ""
		assert.Empty(t, Validate(&in))
	})

	t.Run("unknown rejected", func(t *testing.T) {
		in := validInput()
		in.Locale = "fr"
		errs := Validate(&in)
		require.Len(t, errs, 1)
		assert.Equal(t, FieldLocale, errs[0].Field)
		assert.Equal(t, KindUnsupported, errs[0].Kind)
	})
}

func TestValidateReportsEveryFailingFieldInOrder(t *testing.T) {
	in := Input{} // everything missing
	errs := Validate(&in)
	require.Len(t, errs, 5) // locale is optional
	assert.Equal(t, FieldName, errs[0].Field)
	assert.Equal(t, FieldEmail, errs[1].Field)
	assert.Equal(t, FieldProject, errs[2].Field)
	assert.Equal(t, FieldMessage, errs[3].Field)
	assert.Equal(t, FieldCaptcha, errs[4].Field)
	for _, err := range errs {
		assert.Equal(t, KindRequired, err.Kind)
	}
}

func TestFirstFailingRuleWins(t *testing.T) {
	// A one-character name with digits fails both min and charset; min is
	// the higher-priority rule.
	err := Field(FieldName, "7")
	require.NotNil(t, err)
	assert.Equal(t, KindTooShort, err.Kind)
}
