package quickpick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleTag(t *testing.T) {
	t.Run("LC_ALL wins", func(t *testing.T) {
		t.Setenv("LC_ALL", "de_DE.UTF-8")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "fr_FR")
		assert.Equal(t, "de-DE", localeTag().String())
	})

	t.Run("C and POSIX fall through", func(t *testing.T) {
		t.Setenv("LC_ALL", "C")
		t.Setenv("LC_MESSAGES", "POSIX")
		t.Setenv("LANG", "sv_SE.UTF-8")
		assert.Equal(t, "sv-SE", localeTag().String())
	})

	t.Run("modifier suffix stripped", func(t *testing.T) {
		t.Setenv("LC_ALL", "de_DE@euro")
		assert.Equal(t, "de-DE", localeTag().String())
	})

	t.Run("defaults to english", func(t *testing.T) {
		t.Setenv("LC_ALL", "not a locale")
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", "")
		assert.Equal(t, "en", localeTag().String())
	})
}
