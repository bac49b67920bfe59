// Package lang holds the bot's localized labels.
package lang

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed labels.json
var defaultLabels []byte

// Label keys
const (
	Help                = "HELP"
	StartGroup          = "START_MESSAGE_GRP"
	StartPrivate        = "START_MESSAGE_PVT"
	Info                = "INFO"
	NoPinPermission     = "NO_PIN_PERM"
	ErrInvalidDate      = "ERR_INVALID_DATE"
	ErrCouldntGetUserID = "ERR_COULDNT_GET_USERID"
	BirthdayAdded       = "BIRTHDAY_ADD_SUCCESS"
	BirthdayExists      = "BIRTHDAY_EXISTS"
	ErrUserNotFound     = "ERR_USER_NOT_FOUND"
	ErrUsernameInvalid  = "ERR_USERNAME_INVALID"
	ErrMissingRecipient = "ERR_MISSING_RECIPIENT"
	ErrOnlyGroups       = "ERR_ONLY_GROUPS"
	ErrDenied           = "ERR_DENIED"
	ErrInvalidOffset    = "ERR_INVALID_OFFSET"
	ErrInternal         = "ERR_INTERNAL"
	TimezoneSet         = "TIMEZONE_SET"
	Done                = "DONE"
	UnknownCommand      = "UNKNOWN_COMMAND"
	WishHappyBirthday   = "WISH_HAPPY_BDAY"
)

// RequiredKeys must all exist in the default locale
var RequiredKeys = []string{
	Help, StartGroup, StartPrivate, Info, NoPinPermission, ErrInvalidDate,
	ErrCouldntGetUserID, BirthdayAdded, BirthdayExists, ErrUserNotFound,
	ErrUsernameInvalid, ErrMissingRecipient, ErrOnlyGroups, ErrDenied,
	ErrInvalidOffset, ErrInternal, TimezoneSet, Done, UnknownCommand,
	WishHappyBirthday,
}

// Labels maps locale -> key -> text
type Labels struct {
	texts         map[string]map[string]string
	defaultLocale string
}

// Default parses the embedded labels file
func Default(defaultLocale string) (*Labels, error) {
	return New(defaultLabels, defaultLocale, RequiredKeys...)
}

// New parses raw JSON labels. Every required key must be present in
// defaultLocale, so Get never has to fail at runtime.
func New(raw []byte, defaultLocale string, required ...string) (*Labels, error) {
	var texts map[string]map[string]string
	if err := json.Unmarshal(raw, &texts); err != nil {
		return nil, fmt.Errorf("failed to parse labels: %w", err)
	}

	fallback, ok := texts[defaultLocale]
	if !ok {
		return nil, fmt.Errorf("default locale %q has no labels", defaultLocale)
	}

	var missing []string
	for _, key := range required {
		if _, ok := fallback[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("default locale %q is missing labels: %s", defaultLocale, strings.Join(missing, ", "))
	}

	return &Labels{texts: texts, defaultLocale: defaultLocale}, nil
}

// Get returns the text for key in locale, falling back to the locale's base
// language ("pt-br" -> "pt") and then to the default locale.
func (l *Labels) Get(locale, key string) string {
	for _, loc := range l.candidates(locale) {
		if text, ok := l.texts[loc][key]; ok {
			return text
		}
	}
	return l.texts[l.defaultLocale][key]
}

// Has reports whether the default locale defines key
func (l *Labels) Has(key string) bool {
	_, ok := l.texts[l.defaultLocale][key]
	return ok
}

// DefaultLocale is the fallback locale
func (l *Labels) DefaultLocale() string {
	return l.defaultLocale
}

func (l *Labels) candidates(locale string) []string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return nil
	}
	if base, _, ok := strings.Cut(locale, "-"); ok {
		return []string{locale, base}
	}
	return []string{locale}
}
