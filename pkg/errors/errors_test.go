package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("author", "doe.1")

	assert.Equal(t, "author with ID doe.1 not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("output", "xml", "must be yaml or json")

	assert.Equal(t, "validation failed for field output: must be yaml or json", err.Error())
	assert.True(t, IsValidationError(err))

	bare := &ValidationError{Message: "bad input"}
	assert.Equal(t, "validation failed: bad input", bare.Error())
}

func TestParseError(t *testing.T) {
	cause := New("unexpected node")
	err := WrapParse("yaml", "facts.yaml", cause)

	assert.Contains(t, err.Error(), "facts.yaml")
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, WrapParse("yaml", "facts.yaml", nil))
}

func TestIOError(t *testing.T) {
	cause := New("permission denied")
	err := WrapIO("read", "/tmp/facts.yaml", cause)

	assert.Contains(t, err.Error(), "IO error during read of /tmp/facts.yaml")
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, WrapIO("read", "/tmp/facts.yaml", nil))
}

func TestWrapValidation(t *testing.T) {
	assert.Nil(t, WrapValidation("field", nil))

	err := WrapValidation("name", New("empty"))
	assert.True(t, IsValidationError(err))
}
