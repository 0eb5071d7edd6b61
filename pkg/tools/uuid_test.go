package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUID(t *testing.T) {
	a := UUID()
	b := UUID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
