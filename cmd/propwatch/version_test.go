package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveModule(t *testing.T) {
	// Test binaries carry build info for this module, and the fallback
	// constant names the same path.
	assert.Equal(t, modulePath, resolveModule())
}

func TestResolveCommit_PrefersLinkTimeValue(t *testing.T) {
	old := commit
	commit = "abc1234"
	defer func() { commit = old }()

	assert.Equal(t, "abc1234", resolveCommit())
}
