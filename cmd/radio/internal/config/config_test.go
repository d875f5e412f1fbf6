package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/radio/pkg/errors"
	"github.com/go-drift/radio/pkg/radio"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestResolve_MissingFileUsesDefaults(t *testing.T) {
	res, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Version != "v1.0.0" || res.Defaults.Color != radio.PaletteAccent || res.LabelPosition != radio.LabelAfter {
		t.Errorf("resolved = %+v", res)
	}
}

func TestResolve_ReadsFile(t *testing.T) {
	dir := writeConfig(t, "version: v1.2.0\ndefaults:\n  color: warn\n  labelPosition: before\n")

	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Version != "v1.2.0" || res.Defaults.Color != radio.PaletteWarn || res.LabelPosition != radio.LabelBefore {
		t.Errorf("resolved = %+v", res)
	}
	if res.Root != dir {
		t.Errorf("Root = %q, want %q", res.Root, dir)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad color", "defaults:\n  color: teal\n", "defaults.color"},
		{"bad label position", "defaults:\n  labelPosition: above\n", "defaults.labelPosition"},
		{"not semver", "version: one\n", "version"},
		{"wrong major", "version: v2.0.0\n", "version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.body))
			var re *errors.RadioError
			if !stderrors.As(err, &re) || re.Kind != errors.KindConfig {
				t.Fatalf("Resolve error = %v, want a config RadioError", err)
			}
			var ve *errors.ValidationError
			if !stderrors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("validation error = %v, want field %s", ve, tt.field)
			}
		})
	}
}

func TestLoadOptional_ParseError(t *testing.T) {
	_, err := LoadOptional(writeConfig(t, "defaults: [unclosed\n"))
	var re *errors.RadioError
	if !stderrors.As(err, &re) || re.Path == "" {
		t.Fatalf("LoadOptional error = %v, want a RadioError with path", err)
	}
}
