package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/imic/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("name", "  "),
		validator.Required("email", ""),
		validator.Email("email", ""),
		validator.OneOf("type_unit", "castle", "apartment", "villa", "office"),
		validator.Required("phone", "0100 123 4567"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.True(t, validator.IsValidationError(err))

	ve := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"name", "email", "type_unit"}, ve.Fields())
	assert.Equal(t, []string{"field is required"}, ve.Get("email"), "one error per field")
	assert.False(t, ve.Has("phone"))

	assert.NoError(t, validator.Apply(validator.Required("name", "Mona")))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
}

func TestLocalize(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("name", ""),
		validator.MaxLen("msg", "abcdef", 3),
	)
	ve := validator.ExtractValidationErrors(err)

	dict := map[string]string{"validation.max_length": "at most %{max}"}
	msgs := ve.Localize(func(key string, args ...string) string {
		if v, ok := dict[key]; ok {
			if len(args) >= 4 && args[0] == "field" && args[2] == "max" {
				return "at most " + args[3]
			}
			return v
		}
		return key
	})

	assert.Equal(t, map[string]string{
		"name": "field is required",
		"msg":  "at most 3",
	}, msgs)
}

func TestEmail(t *testing.T) {
	t.Parallel()

	for range 20 {
		addr := gofakeit.Email()
		assert.NoError(t, validator.Apply(validator.Email("email", addr)), addr)
	}
	for _, bad := range []string{"plain", "a@b", "a@.com", "Mona <mona@example.com>", "@example.com"} {
		assert.Error(t, validator.Apply(validator.Email("email", bad)), bad)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"01012345678", "+20 101 234 5678", "(02) 2345-6789"} {
		assert.NoError(t, validator.Apply(validator.Phone("phone", ok)), ok)
	}
	for _, bad := range []string{"", "123", "phone me", "+2010123456789012", "--1234567"} {
		assert.Error(t, validator.Apply(validator.Phone("phone", bad)), bad)
	}
}

func TestMaxLen_CountsRunes(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validator.Apply(validator.MaxLen("name", "مرحبا", 5)))
	assert.Error(t, validator.Apply(validator.MaxLen("name", "مرحبا!", 5)))
}

func TestDateRules(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, 6, 15, 18, 0, 0, 0, time.UTC)

	assert.NoError(t, validator.Apply(validator.Date("date", "2030-06-15")))
	assert.Error(t, validator.Apply(validator.Date("date", "15/06/2030")))
	assert.Error(t, validator.Apply(validator.Date("date", "2030-02-30")))

	assert.NoError(t, validator.Apply(validator.NotPastDate("date", "2030-06-15", now)), "today is allowed")
	assert.NoError(t, validator.Apply(validator.NotPastDate("date", "2031-01-01", now)))
	assert.Error(t, validator.Apply(validator.NotPastDate("date", "2030-06-14", now)))
}

func TestTimeOfDay(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		assert.NoError(t, validator.Apply(validator.TimeOfDay("time", ok)), ok)
	}
	for _, bad := range []string{"24:00", "9:30", "09:60", "noon", ""} {
		assert.Error(t, validator.Apply(validator.TimeOfDay("time", bad)), bad)
	}
}
