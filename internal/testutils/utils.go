package testutils

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// AssertEqualJSON compares two values by their JSON representation.
func AssertEqualJSON(t *testing.T, expected, actual interface{}) {
	t.Helper()

	var want, got interface{}
	if err := roundTrip(expected, &want); err != nil {
		assert.Fail(t, err.Error())
		return
	}
	if err := roundTrip(actual, &got); err != nil {
		assert.Fail(t, err.Error())
		return
	}

	if diff := cmp.Diff(want, got); diff != "" {
		msg := fmt.Sprintf(
			"Not equal:\n"+
				"expected:\n\t'%v'\n"+
				"actual:\n\t'%v'\n"+
				"diff (-expected +actual):\n%s",
			want, got, diff,
		)
		assert.Fail(t, msg)
	}
}

func roundTrip(in, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %T: %w", in, err)
	}
	return json.Unmarshal(b, out)
}
