package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())
}

func TestNetAddress_Set_EmptyHost(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set(":8080"))
	assert.Equal(t, ":8080", addr.String())
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no port", "localhost"},
		{"bad port", "localhost:abc"},
		{"negative port", "localhost:-1"},
		{"bad host", "not an ip:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			assert.Error(t, addr.Set(tt.input))
		})
	}
}

func TestNetAddress_String_Zero(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
