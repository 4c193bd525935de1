// Package names localizes every enumerated almanac identifier: solar terms,
// day phases, zodiac animals, elemental sounds, directions, activities and
// weekdays. Locales are embedded; a missing key falls back to the key itself.
package names

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-almanac/internal/config"
	"github.com/tartampluch/go-almanac/internal/fortune"
	"github.com/tartampluch/go-almanac/internal/ganzhi"
	"github.com/tartampluch/go-almanac/internal/solarterm"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

// loadBundle initializes the shared translation bundle from the embedded
// locale files.
func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			slog.Error(config.ErrLocalesAccess,
				config.LogKeyComponent, config.CompNames,
				config.LogKeyError, err,
			)
			return
		}

		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
				slog.Debug(config.MsgLocaleSkip,
					config.LogKeyComponent, config.CompNames,
					config.LogKeyFile, name,
				)
				continue
			}

			if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
				slog.Error(config.ErrLocaleLoad,
					config.LogKeyComponent, config.CompNames,
					config.LogKeyFile, name,
					config.LogKeyError, err,
				)
			} else {
				slog.Debug(config.MsgLocaleLoaded,
					config.LogKeyComponent, config.CompNames,
					config.LogKeyFile, name,
				)
			}
		}
	})
	return bundle
}

// Translator resolves identifier names for one output language.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

// New returns a translator for the given ISO 639-1 language code, falling
// back to English for anything the locale does not carry.
func New(lang string) *Translator {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(loadBundle(), lang, config.DefaultLanguage),
	}
}

// Lang returns the language code the translator was built for.
func (t *Translator) Lang() string { return t.lang }

// get translates a key safely, returning the key itself when no message
// exists.
func (t *Translator) get(key string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompNames,
			config.LogKeyKey, key,
			config.LogKeyLang, t.lang,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// Term returns the display name of a solar term.
func (t *Translator) Term(term solarterm.Term) string {
	return t.get("term." + termSlugs[term])
}

// Phase returns the display name of a day classification.
func (t *Translator) Phase(p fortune.Phase) string {
	return t.get("phase." + phaseSlugs[p])
}

// Animal returns the display name of a zodiac animal.
func (t *Translator) Animal(a ganzhi.Animal) string {
	return t.get("animal." + animalSlugs[a])
}

// Sound returns the display name of an elemental sound.
func (t *Translator) Sound(s ganzhi.Sound) string {
	return t.get("sound." + soundSlugs[s])
}

// Direction returns the display name of a compass direction.
func (t *Translator) Direction(d ganzhi.Direction) string {
	return t.get("direction." + directionSlugs[d])
}

// Activity returns the display name of an activity.
func (t *Translator) Activity(a fortune.Activity) string {
	return t.get("activity." + string(a))
}

// Category returns the display name of an activity category.
func (t *Translator) Category(name string) string {
	return t.get("category." + name)
}

// Weekday returns the display name of a weekday, 0 = Sunday.
func (t *Translator) Weekday(w int) string {
	return t.get("weekday." + weekdaySlugs[w])
}

// Rating returns the display name of an hourly fortune rating.
func (t *Translator) Rating(r fortune.Rating) string {
	return t.get("rating." + ratingSlugs[r])
}

// Status returns the display name of an activity suitability status.
func (t *Translator) Status(s fortune.Status) string {
	return t.get("status." + statusSlugs[s])
}
