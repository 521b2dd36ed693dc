package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexBool_AcceptsBooleansAndLegacyIntegers(t *testing.T) {
	type payload struct {
		Active FlexBool `json:"active"`
	}

	tests := []struct {
		in   string
		want bool
	}{
		{`{"active": true}`, true},
		{`{"active": 1}`, true},
		{`{"active": false}`, false},
		{`{"active": 0}`, false},
		{`{"active": null}`, false},
	}

	for _, tt := range tests {
		var p payload
		err := json.Unmarshal([]byte(tt.in), &p)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, p.Active.Bool(), tt.in)
	}
}

func TestFlexBool_RejectsGarbage(t *testing.T) {
	var b FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &b))
	assert.Error(t, json.Unmarshal([]byte(`2`), &b))
}
