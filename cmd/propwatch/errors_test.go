package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iansan5653/propwatch/internal/errors"
)

func TestRunErrors_ListsAllCodes(t *testing.T) {
	require.NoError(t, runErrors(""))
}

func TestRunErrors_EveryRegisteredCodeRenders(t *testing.T) {
	for _, code := range errors.GetAllCodes() {
		require.NoError(t, runErrors(code))
	}
}

func TestRunErrors_UnknownCode(t *testing.T) {
	err := runErrors("E999")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error code")

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, errors.CategoryCLI, pwErr.Category)
}
