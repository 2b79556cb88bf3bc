package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	doc := []byte("step_budget: 500\nmodules:\n  json: false\n  text: true\n")
	cfg, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.StepBudget)
	assert.False(t, cfg.Modules["json"])
	assert.True(t, cfg.Modules["text"])
}

func TestDefaultHasNoBudgetAndNoModuleOverrides(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.StepBudget)
	assert.Nil(t, cfg.Modules)
}
