package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"logdeck/internal/config"
)

func Test_RenderTitle(t *testing.T) {
	result := RenderTitle()

	assert.Contains(t, result, config.AppName)
	assert.Contains(t, result, config.Version)
	assert.Contains(t, result, config.AppDescription)
}

func Test_RenderUsage(t *testing.T) {
	result := RenderUsage()

	for _, want := range []string{"Usage:", "Commands:", "Flags:", "Examples:", "--no-ui", "--dry-run", "init", config.ConfigFile} {
		assert.Contains(t, result, want)
	}
}

func Test_RenderError(t *testing.T) {
	result := RenderError(errors.New("unknown flag: --bogus"))

	assert.Contains(t, result, "Error:")
	assert.Contains(t, result, "unknown flag: --bogus")
	assert.Contains(t, result, config.AppName+" help")
}
