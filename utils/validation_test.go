package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	for _, username := range []string{"alice", "bob_99", "A1c"} {
		valid, msg := ValidateUsername(username)
		assert.True(t, valid, username)
		assert.Empty(t, msg)
	}

	for _, username := range []string{"", "ab", "has space", "way_too_long_username_here", "bad-char!"} {
		valid, msg := ValidateUsername(username)
		assert.False(t, valid, username)
		assert.NotEmpty(t, msg)
	}
}

func TestValidatePassword(t *testing.T) {
	valid, _ := ValidatePassword("longenough")
	assert.True(t, valid)

	valid, msg := ValidatePassword("short")
	assert.False(t, valid)
	assert.NotEmpty(t, msg)

	valid, _ = ValidatePassword("xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")
	assert.False(t, valid)
}
