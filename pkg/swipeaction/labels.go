package swipeaction

import "github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"

// DirectionLabel returns the localised name of d, e.g. "Far left".
// lang is a BCP 47 tag; unsupported languages fall back to English.
func DirectionLabel(d Direction, lang string) string {
	return internal.Localize(lang, d.messageID(), nil)
}

// ActionMessage describes a delivered swipe on item.
func ActionMessage(d Direction, item, lang string) string {
	return internal.Localize(lang, "SwipeTriggered", map[string]any{
		"Direction": DirectionLabel(d, lang),
		"Item":      item,
	})
}

// VetoMessage describes a swipe on item that the application declined.
func VetoMessage(d Direction, item, lang string) string {
	return internal.Localize(lang, "SwipeVetoed", map[string]any{
		"Direction": DirectionLabel(d, lang),
		"Item":      item,
	})
}

// SupportedLanguages lists the languages labels are available in.
func SupportedLanguages() []string {
	tags := internal.SupportedLanguages()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
