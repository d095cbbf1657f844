// internal/domain/i18n/translator.go
package i18n

import "sync"

// Language identifies a supported UI language
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBengali Language = "bn"
)

// Translator resolves (language, key) pairs to localized strings.
// Unknown keys fall back to the English string, then to the key itself,
// so a missing translation never breaks a view.
type Translator struct {
	mu       sync.RWMutex
	language Language
}

// NewTranslator creates a translator with the given starting language.
// Unsupported values fall back to English.
func NewTranslator(language string) *Translator {
	lang := Language(language)
	if _, ok := translations[lang]; !ok {
		lang = LanguageEnglish
	}
	return &Translator{language: lang}
}

// Language returns the active language
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// Toggle flips between English and Bengali
func (t *Translator) Toggle() Language {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.language == LanguageEnglish {
		t.language = LanguageBengali
	} else {
		t.language = LanguageEnglish
	}
	return t.language
}

// T returns the localized string for key in the active language
func (t *Translator) T(key string) string {
	t.mu.RLock()
	lang := t.language
	t.mu.RUnlock()

	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[LanguageEnglish][key]; ok {
		return s
	}
	return key
}
