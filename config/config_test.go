package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"A": "hello", "EMPTY": ""}

	assert.Equal(t, "hello", GetString(c, "A", "fallback"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "A", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"N": "42", "BAD": "forty-two"}

	assert.Equal(t, 42, GetInt(c, "N", 7))
	assert.Equal(t, 7, GetInt(c, "BAD", 7))
	assert.Equal(t, 7, GetInt(c, "MISSING", 7))
	assert.Equal(t, 7, GetInt(nil, "N", 7))
}

func TestNewSnapshotsEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "value")

	c := New()
	assert.Equal(t, "value", GetString(c, "CONFIG_TEST_KEY", ""))
}
