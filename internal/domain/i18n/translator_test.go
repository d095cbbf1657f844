// internal/domain/i18n/translator_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultsToEnglish(t *testing.T) {
	tr := NewTranslator("klingon")
	assert.Equal(t, LanguageEnglish, tr.Language())
}

func TestToggle_FlipsBetweenEnglishAndBengali(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, LanguageBengali, tr.Toggle())
	assert.Equal(t, LanguageEnglish, tr.Toggle())
}

func TestT_ActiveLanguageWins(t *testing.T) {
	tr := NewTranslator("bn")
	assert.Equal(t, "ডাক্তার", tr.T("nav.doctors"))

	tr.Toggle()
	assert.Equal(t, "Doctors", tr.T("nav.doctors"))
}

func TestT_FallsBackToEnglishThenKey(t *testing.T) {
	tr := NewTranslator("bn")

	// a key missing from the active table falls back to English,
	// a key missing everywhere echoes back unchanged
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
}
