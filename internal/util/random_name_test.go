package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomName(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := RandomName()
		parts := strings.Split(name, " ")
		assert.Equal(t, 2, len(parts))
		assert.Contains(t, adjectives, parts[0])
		assert.Contains(t, nouns, parts[1])
	}
}
