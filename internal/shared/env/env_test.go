package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("ENV_TEST_STRING", "value")
	assert.Equal(t, "value", String("ENV_TEST_STRING", "def"))
	assert.Equal(t, "def", String("ENV_TEST_STRING_UNSET", "def"))
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"negative", "-3", -3},
		{"invalid", "abc", 7},
		{"empty", "", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_TEST_INT", tt.value)
			assert.Equal(t, tt.want, Int("ENV_TEST_INT", 7))
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"true", "true", true},
		{"false", "false", false},
		{"numeric", "0", false},
		{"invalid falls back", "maybe", true},
		{"empty falls back", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, Bool("ENV_TEST_BOOL", true))
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"minutes", "5m", 5 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"invalid", "soon", time.Minute},
		{"zero falls back", "0s", time.Minute},
		{"negative falls back", "-1m", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, Duration("ENV_TEST_DURATION", time.Minute))
		})
	}
}
