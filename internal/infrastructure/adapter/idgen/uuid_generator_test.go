package idgen

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator()

	_, err := uuid.Parse(gen.NewID())
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^[a-z2-7]{10}$`)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewPublicID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Len(t, seen, 1000)
}
