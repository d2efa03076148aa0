package validator_test

import (
	"testing"

	"github.com/goto/catalogindex/core/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	type preset struct {
		Refresh string `mapstructure:"refresh_interval" validate:"omitempty,duration"`
	}
	type cfg struct {
		Alias    string `mapstructure:"alias" validate:"required"`
		Replicas int    `mapstructure:"replicas" validate:"gte=0"`
		Build    preset `mapstructure:"build"`
	}

	v, err := validator.NewBuilder().
		WithTagName("mapstructure").
		WithFieldValidations([]validator.FieldValidation{validator.DurationValidation}).
		WithTranslations([]validator.Translation{validator.DurationTranslation}).
		Build()
	require.NoError(t, err)

	t.Run("should accept valid struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(cfg{Alias: "catalog", Build: preset{Refresh: "10s"}}))
	})

	t.Run("should report translated errors keyed by field path", func(t *testing.T) {
		err := v.Validate(cfg{Replicas: -1, Build: preset{Refresh: "soon"}})

		var fieldErr validator.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, validator.FieldError{
			"alias":                  "alias is a required field",
			"replicas":               "replicas must be 0 or greater",
			"build.refresh_interval": "refresh_interval must be a duration such as 5m, got soon",
		}, fieldErr)
		assert.Equal(t,
			"alias: alias is a required field; build.refresh_interval: refresh_interval must be a duration such as 5m, got soon; replicas: replicas must be 0 or greater",
			err.Error())
	})
}
