package rewrite

import (
	"strings"

	"github.com/mikopbx/modgen/internal/naming"
)

// Placeholders baked into the module template.
const (
	// TokenBare is the PascalCase placeholder, e.g. in class names.
	TokenBare = "Template"

	// TokenDash is the dash-case placeholder, e.g. in asset file names.
	TokenDash = "module-template"

	// TokenUnderscoreShort is the short underscore placeholder used in table prefixes.
	TokenUnderscoreShort = "mod_tpl"

	// TokenUnderscoreLong is the underscore placeholder used in config keys.
	TokenUnderscoreLong = "module_template"
)

// Replacement maps one template token to its replacement.
type Replacement struct {
	Token string `json:"token" yaml:"token"`
	Value string `json:"value" yaml:"value"`

	// Names marks the replacement as applicable to file and directory names.
	Names bool `json:"names" yaml:"names"`
}

// Replacements is an ordered list of replacements. Order is part of the
// contract: contents are rewritten token by token in list order, and the
// first matching name replacement wins when renaming.
type Replacements []Replacement

// NewReplacements builds the replacement list for one run.
func NewReplacements(forms naming.Forms) Replacements {
	return Replacements{
		{Token: TokenBare, Value: forms.Stripped, Names: true},
		{Token: TokenDash, Value: forms.Dash, Names: true},
		{Token: TokenUnderscoreShort, Value: forms.Underscore},
		{Token: TokenUnderscoreLong, Value: forms.Underscore},
	}
}

// Apply replaces every occurrence of every token in s.
func (r Replacements) Apply(s string) string {
	for _, rep := range r {
		s = strings.ReplaceAll(s, rep.Token, rep.Value)
	}
	return s
}

// Rename returns the new name for a single path segment. Only the first
// name replacement whose token occurs in name is applied.
func (r Replacements) Rename(name string) (string, bool) {
	for _, rep := range r {
		if !rep.Names || !strings.Contains(name, rep.Token) {
			continue
		}
		return strings.ReplaceAll(name, rep.Token, rep.Value), true
	}
	return name, false
}
