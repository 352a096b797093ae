package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name" validate:"required"`
	Level string `yaml:"level" validate:"oneof=debug info"`
	Sink  string `yaml:"sink" validate:"omitempty,url"`
	Max   int    `validate:"min=0"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Level: "info", Sink: "http://localhost:5341"}))
}

func TestStructReportsEveryField(t *testing.T) {
	err := Struct(sample{Level: "trace", Sink: "not a url", Max: -1})
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name: value is required")
	assert.Contains(t, msg, "level: 'trace' must be one of [debug info]")
	assert.Contains(t, msg, "sink: 'not a url' is not a valid URL")
	assert.Contains(t, msg, "Max: must be at least 0")
}

func TestStructNonStruct(t *testing.T) {
	assert.Error(t, Struct("plain string"))
}
