package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewModeString(t *testing.T) {
	assert.Equal(t, "Standard", ModeStandard.String())
	assert.Equal(t, "Weight", ModeWeight.String())
	assert.Equal(t, "None", ModeNone.String())
	assert.Equal(t, "None", ViewMode(99).String())
}

func TestGroupTypeString(t *testing.T) {
	assert.Equal(t, "Calculator", GroupCalculator.String())
	assert.Equal(t, "Converter", GroupConverter.String())
	assert.Equal(t, "None", GroupNone.String())
}

func TestVirtualKeys(t *testing.T) {
	assert.Equal(t, "Number1", KeyNumber1.String())
	assert.Equal(t, "Number9", KeyNumber9.String())
	assert.Equal(t, "None", KeyNone.String())

	assert.Equal(t, KeyNumber5, KeyForDigit(5))
	assert.Equal(t, KeyNone, KeyForDigit(0))
	assert.Equal(t, KeyNone, KeyForDigit(10))
}
