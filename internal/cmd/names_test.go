package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mikopbx/modgen/internal/naming"
	"github.com/mikopbx/modgen/internal/rewrite"
)

func TestNames_Table(t *testing.T) {
	out, err := executeRoot(t, "names", "ModuleMyNewModPBX")
	require.NoError(t, err)

	for _, want := range []string{
		"MyNewModPBX", "my-new-mod-pbx", "my_new_mod_pbx",
		"module-template", "mod_tpl", "module_template",
	} {
		assert.Contains(t, out, want)
	}
}

func TestNames_DigitsStayInWord(t *testing.T) {
	out, err := executeRoot(t, "names", "ModuleBitrix24Integration")
	require.NoError(t, err)

	assert.Contains(t, out, "bitrix24-integration")
	assert.Contains(t, out, "bitrix24_integration")
	assert.NotContains(t, out, "bitrix-24")
}

func TestTokenRows(t *testing.T) {
	reps := rewrite.NewReplacements(naming.Derive("ModulePhoneBook", naming.Prefix))

	rows := tokenRows(reps)
	require.Len(t, rows, len(reps))
	assert.Equal(t, []string{"Template", "PhoneBook", "true"}, rows[0])
	assert.Equal(t, []string{"module_template", "phone_book", "false"}, rows[3])
}

func TestNames_JSON(t *testing.T) {
	out, err := executeRoot(t, "names", "ModulePhoneBook", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Identifier   string `json:"identifier"`
		Stripped     string `json:"stripped"`
		Dash         string `json:"dash"`
		Underscore   string `json:"underscore"`
		Replacements []struct {
			Token string `json:"token"`
			Value string `json:"value"`
			Names bool   `json:"names"`
		} `json:"replacements"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "ModulePhoneBook", got.Identifier)
	assert.Equal(t, "PhoneBook", got.Stripped)
	assert.Equal(t, "phone-book", got.Dash)
	assert.Equal(t, "phone_book", got.Underscore)
	require.Len(t, got.Replacements, 4)
	assert.Equal(t, "Template", got.Replacements[0].Token)
	assert.True(t, got.Replacements[0].Names)
	assert.False(t, got.Replacements[3].Names)
}

func TestNames_YAML(t *testing.T) {
	out, err := executeRoot(t, "names", "ModulePhoneBook", "-o", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "phone-book", got["dash"])
	assert.Equal(t, "phone_book", got["underscore"])
	assert.Len(t, got["replacements"], 4)
}

func TestNames_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{"missing prefix", []string{"names", "PhoneBook"}, ExitInvalidIdentifier, "must start with"},
		{"prefix only", []string{"names", "Module"}, ExitInvalidIdentifier, "nothing follows"},
		{"bad format", []string{"names", "ModulePhoneBook", "-o", "xml"}, ExitGeneralError, "invalid output format"},
		{"no args", []string{"names"}, ExitGeneralError, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ExitCodeFromError(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
