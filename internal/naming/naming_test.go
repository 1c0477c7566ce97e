package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mikopbx/modgen/internal/errors"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		identifier string
		want       Forms
	}{
		{
			identifier: "ModuleMyNewModPBX",
			want: Forms{
				Identifier: "ModuleMyNewModPBX",
				Stripped:   "MyNewModPBX",
				Dash:       "my-new-mod-pbx",
				Underscore: "my_new_mod_pbx",
			},
		},
		{
			identifier: "ModulePhoneBook",
			want: Forms{
				Identifier: "ModulePhoneBook",
				Stripped:   "PhoneBook",
				Dash:       "phone-book",
				Underscore: "phone_book",
			},
		},
		{
			identifier: "ModuleCdr",
			want: Forms{
				Identifier: "ModuleCdr",
				Stripped:   "Cdr",
				Dash:       "cdr",
				Underscore: "cdr",
			},
		},
		{
			identifier: "ModuleHTTPServer",
			want: Forms{
				Identifier: "ModuleHTTPServer",
				Stripped:   "HTTPServer",
				Dash:       "http-server",
				Underscore: "http_server",
			},
		},
		{
			identifier: "ModuleBitrix24Integration",
			want: Forms{
				Identifier: "ModuleBitrix24Integration",
				Stripped:   "Bitrix24Integration",
				Dash:       "bitrix24-integration",
				Underscore: "bitrix24_integration",
			},
		},
		{
			identifier: "ModuleCdr2Csv",
			want: Forms{
				Identifier: "ModuleCdr2Csv",
				Stripped:   "Cdr2Csv",
				Dash:       "cdr2-csv",
				Underscore: "cdr2_csv",
			},
		},
		{
			identifier: "ModuleÄpfelSaft",
			want: Forms{
				Identifier: "ModuleÄpfelSaft",
				Stripped:   "ÄpfelSaft",
				Dash:       "äpfel-saft",
				Underscore: "äpfel_saft",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			got := Derive(tt.identifier, Prefix)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerive_NoTrailingSeparator(t *testing.T) {
	for _, id := range []string{"ModuleMyNewModPBX", "ModulePhoneBook", "ModuleCdr", "ModuleSmartIVR", "ModuleA"} {
		forms := Derive(id, Prefix)
		assert.False(t, strings.HasSuffix(forms.Dash, DashSeparator), "dash form %q of %s", forms.Dash, id)
		assert.False(t, strings.HasSuffix(forms.Underscore, UnderscoreSeparator), "underscore form %q of %s", forms.Underscore, id)
		assert.Equal(t, strings.TrimPrefix(id, Prefix), forms.Stripped)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	first := Derive("ModuleMyNewModPBX", Prefix)
	second := Derive("ModuleMyNewModPBX", Prefix)
	assert.Equal(t, first, second)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{"prefix removed once", "ModuleModuleX", "ModuleX"},
		{"prefix mid-string untouched", "MyModuleX", "MyModuleX"},
		{"plain", "ModulePhoneBook", "PhoneBook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.identifier, Prefix))
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"MyNewModPBX", []string{"my", "new", "mod", "pbx"}},
		{"PhoneBook", []string{"phone", "book"}},
		{"Cdr", []string{"cdr"}},
		{"ModuleMyNewModPBX", []string{"module", "my", "new", "mod", "pbx"}},
		{"Bitrix24Integration", []string{"bitrix24", "integration"}},
		{"Cdr2Csv", []string{"cdr2", "csv"}},
		{"HTTPServer", []string{"http", "server"}},
		{"SmartIVR", []string{"smart", "ivr"}},
		{"ÄpfelSaft", []string{"äpfel", "saft"}},
		{"AmoCRM2Sync", []string{"amo", "crm2", "sync"}},
		{"X", []string{"x"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Words(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		sep   string
		want  string
	}{
		{"dash", []string{"my", "new", "mod"}, "-", "my-new-mod"},
		{"underscore", []string{"phone", "book"}, "_", "phone_book"},
		{"single word", []string{"cdr"}, "-", "cdr"},
		{"empty", nil, "-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.words, tt.sep))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantErr    bool
	}{
		{"valid", "ModulePhoneBook", false},
		{"missing prefix", "PhoneBook", true},
		{"prefix mid-string", "MyModulePhoneBook", true},
		{"lowercase prefix", "modulePhoneBook", true},
		{"shorter than prefix", "Mod", true},
		{"bare prefix", "Module", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.identifier, Prefix)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrInvalidIdentifier))

			var invalid *oerrors.InvalidIdentifierError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.identifier, invalid.Identifier)
			assert.Equal(t, Prefix, invalid.Prefix)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty falls back to default", "", DefaultIdentifier, false},
		{"valid accepted verbatim", "ModulePhoneBook", "ModulePhoneBook", false},
		{"no prefix rejected", "PhoneBook", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, oerrors.ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
