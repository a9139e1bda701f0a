package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticContainsIndex(t *testing.T) {
	b, err := fs.ReadFile(Static(), IndexKey)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<!DOCTYPE html>")
	assert.Contains(t, string(b), "/names")
}
