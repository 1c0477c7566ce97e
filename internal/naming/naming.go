// Package naming derives the casing variants of a module name.
//
// A module name is a PascalCase identifier that starts with a fixed prefix,
// for example "ModulePhoneBook". The prefix is dropped and the remainder is
// split into words, which are joined with a dash or an underscore:
//
//	ModuleMyNewModPBX -> MyNewModPBX, my-new-mod-pbx, my_new_mod_pbx
//
// Everything here is pure; the same identifier always yields the same Forms.
package naming

import (
	"strings"
	"unicode"

	oerrors "github.com/mikopbx/modgen/internal/errors"
)

const (
	// Prefix is the word every module name must start with.
	Prefix = "Module"

	// DefaultIdentifier is used when no module name is given.
	DefaultIdentifier = "ModuleMyNewModPBX"

	// DashSeparator joins words of the dash form.
	DashSeparator = "-"

	// UnderscoreSeparator joins words of the underscore form.
	UnderscoreSeparator = "_"
)

// Forms holds the names derived from one identifier.
type Forms struct {
	// Identifier is the full module name, e.g. "ModulePhoneBook".
	Identifier string `json:"identifier" yaml:"identifier"`

	// Stripped is Identifier without the prefix, e.g. "PhoneBook".
	Stripped string `json:"stripped" yaml:"stripped"`

	// Dash is the lowercase dash-joined form, e.g. "phone-book".
	Dash string `json:"dash" yaml:"dash"`

	// Underscore is the lowercase underscore-joined form, e.g. "phone_book".
	Underscore string `json:"underscore" yaml:"underscore"`
}

// Resolve turns raw process input into an identifier. Empty input selects
// DefaultIdentifier and skips validation.
func Resolve(input string) (string, error) {
	if input == "" {
		return DefaultIdentifier, nil
	}
	if err := Validate(input, Prefix); err != nil {
		return "", err
	}
	return input, nil
}

// Validate checks that identifier literally starts with prefix and that
// something follows it.
func Validate(identifier, prefix string) error {
	if !strings.HasPrefix(identifier, prefix) || len(identifier) == len(prefix) {
		return &oerrors.InvalidIdentifierError{Identifier: identifier, Prefix: prefix}
	}
	return nil
}

// Derive computes the Forms of identifier. The caller validates first.
func Derive(identifier, prefix string) Forms {
	stripped := Strip(identifier, prefix)
	words := Words(stripped)

	return Forms{
		Identifier: identifier,
		Stripped:   stripped,
		Dash:       Join(words, DashSeparator),
		Underscore: Join(words, UnderscoreSeparator),
	}
}

// Strip removes one leading occurrence of prefix.
func Strip(identifier, prefix string) string {
	return strings.TrimPrefix(identifier, prefix)
}

// Words splits a PascalCase string into lowercase words. A word starts at
// an uppercase letter that follows a lowercase letter or a digit, or at the
// last capital of a run that is followed by a lowercase letter. Digits stay
// with the word before them, so "ModPBX" gives ["mod", "pbx"],
// "HTTPServer" gives ["http", "server"] and "Bitrix24Integration" gives
// ["bitrix24", "integration"].
func Words(s string) []string {
	runes := []rune(s)

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if isBoundary(runes, i) {
			words = append(words, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, strings.ToLower(string(runes[start:])))
	}

	return words
}

// isBoundary reports whether a new word starts at runes[i].
func isBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Join writes sep after every word and then drops the trailing one.
func Join(words []string, sep string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteString(sep)
	}
	return strings.TrimSuffix(b.String(), sep)
}
