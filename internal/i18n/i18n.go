// Package i18n is the single message catalog of the bot. Templates are plain
// text with fmt verbs; escaping for the transport happens later.
package i18n

import (
	"fmt"
	"strings"
	"unicode"
)

type Lang string

const (
	Fa Lang = "fa"
	En Lang = "en"
)

// Parse maps a user or config value to a supported language.
func Parse(s string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case Fa:
		return Fa, true
	case En:
		return En, true
	}
	return "", false
}

type Key string

type Catalog struct {
	messages map[Lang]map[Key]string
	fallback Lang
}

// Default returns the built-in fa/en catalog with English as fallback.
func Default() *Catalog {
	return &Catalog{
		messages: map[Lang]map[Key]string{Fa: fa, En: en},
		fallback: En,
	}
}

// For resolves the catalog for one language.
func (c *Catalog) For(lang Lang) Translator {
	if _, ok := c.messages[lang]; !ok {
		lang = c.fallback
	}
	return Translator{lang: lang, c: c}
}

// Matches reports whether text equals key's template in any language,
// ignoring case and any leading or trailing emoji, space or punctuation.
func (c *Catalog) Matches(key Key, text string) bool {
	norm := normalize(text)
	if norm == "" {
		return false
	}
	for _, m := range c.messages {
		if s, ok := m[key]; ok && normalize(s) == norm {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}

// Translator renders templates for one language.
type Translator struct {
	lang Lang
	c    *Catalog
}

func (t Translator) Lang() Lang { return t.lang }

// T renders key with args. Missing keys fall back to the catalog fallback
// language and finally to the key itself.
func (t Translator) T(key Key, args ...any) string {
	tmpl, ok := t.c.messages[t.lang][key]
	if !ok {
		tmpl, ok = t.c.messages[t.c.fallback][key]
	}
	if !ok {
		return string(key)
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
