package validator_test

import (
	"testing"

	"github.com/goto/catalogindex/core/validator"
	"gotest.tools/assert"
)

func TestValidateStruct(t *testing.T) {
	type DummyStruct struct {
		VarOneOf string `json:"varoneof" validate:"omitempty,oneof=type1 type2 type3"`
		VarInt   int    `json:"varint" validate:"omitempty,gte=0"`
		Table    string `json:"table" validate:"omitempty,identifier"`
		Name     string `json:"name" validate:"required"`
	}

	type TestCase struct {
		Description string
		Struct      interface{}
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values in oneof type validation",
			Struct: DummyStruct{
				Name:     "n",
				VarOneOf: "random",
			},
			ErrString: "error value \"random\" for key \"varoneof\" not recognized, only support \"type1 type2 type3\"",
		},
		{
			Description: "return error should greater than 0 in integer type validation",
			Struct: DummyStruct{
				Name:   "n",
				VarInt: -1,
			},
			ErrString: "varint cannot be less than 0",
		},
		{
			Description: "return error on identifier with quotes",
			Struct: DummyStruct{
				Name:  "n",
				Table: "products\"; drop table x",
			},
			ErrString: "table \"products\\\"; drop table x\" is not a valid identifier",
		},
		{
			Description: "return error on missing required field",
			Struct:      DummyStruct{},
			ErrString:   "name is required",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateStruct(tc.Struct)
			assert.Equal(t, tc.ErrString, err.Error())
		})
	}
}

func TestValidateOneOf(t *testing.T) {
	type TestCase struct {
		Description string
		Value       string
		Enums       []string
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values",
			Value:       "random",
			Enums:       []string{"type1", "type2", "type3"},
			ErrString:   "error value \"random\" not recognized, only support \"type1 type2 type3\"",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateOneOf(tc.Value, tc.Enums...)
			assert.Equal(t, tc.ErrString, err.Error())
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	for _, s := range []string{"product_position", "_cl", "a1"} {
		assert.Assert(t, validator.IsIdentifier(s), s)
	}
	for _, s := range []string{"", "1abc", "Product", "a-b", "a b"} {
		assert.Assert(t, !validator.IsIdentifier(s), s)
	}
}
