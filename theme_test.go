package study_test

import (
	"testing"

	"github.com/fwojciec/study"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := study.DefaultTheme()

	assert.Equal(t, 4, theme.UserMsg)
	assert.Equal(t, 1, theme.Error)
	assert.Equal(t, 8, theme.Muted)
	assert.Equal(t, 3, theme.Code)
	assert.Equal(t, 5, theme.Accent)
}
