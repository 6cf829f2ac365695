// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated labels of the tabnav UI. It loads the
// embedded YAML locale files into a go-i18n bundle.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init loads all embedded locale files and selects lang. Unknown languages
// fall back to English.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	if _, ok := GetAvailableLocales()[l]; !ok {
		l = "en"
	}
	lang = l
	localizer = i18n.NewLocalizer(bundle, l, "en")
}

// SetLang changes the active language.
func SetLang(l string) {
	Init(l)
}

func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return lang
}

// GetAvailableLocales maps locale tags to their display names.
func GetAvailableLocales() map[string]string {
	locales := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		tag := strings.TrimSuffix(f.Name(), ".yaml")
		parsed, err := language.Parse(tag)
		if err != nil {
			continue
		}
		locales[tag] = displayName(parsed)
	}
	return locales
}

// SortedLocales returns the available locale tags in order.
func SortedLocales() []string {
	var tags []string
	for tag := range GetAvailableLocales() {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func displayName(tag language.Tag) string {
	switch tag {
	case language.German:
		return "Deutsch"
	default:
		return "English"
	}
}

// T translates messageID. A single map argument is used as template data,
// any other arguments are applied fmt-style. Missing ids come back verbatim.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
