package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.nl.toml",
	"locales/active.de.toml",
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizersMu sync.Mutex
	localizers   = map[string]*i18n.Localizer{}
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, file := range localeFiles {
			if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
				GetInternalLogger().Error("Failed to load message file", "file", file, "error", err)
			}
		}
	})
	return bundle
}

// SupportedLanguages lists the tags messages are shipped for.
func SupportedLanguages() []language.Tag {
	return getBundle().LanguageTags()
}

func localizer(lang string) *i18n.Localizer {
	localizersMu.Lock()
	defer localizersMu.Unlock()

	if l, ok := localizers[lang]; ok {
		return l
	}
	l := i18n.NewLocalizer(getBundle(), lang, language.English.String())
	localizers[lang] = l
	return l
}

// Localize resolves a message for lang. Missing messages fall back to English
// and finally to the message ID itself.
func Localize(lang, messageID string, data map[string]any) string {
	msg, err := localizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Debug("Missing translation", "lang", lang, "id", messageID, "error", err)
		return messageID
	}
	return msg
}
