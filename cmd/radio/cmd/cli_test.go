package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/radio/pkg/errors"
)

const sizePicker = "../internal/scenario/testdata/size_picker.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	old := errors.DefaultHandler
	t.Cleanup(func() { errors.SetHandler(old) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRun_Pretty(t *testing.T) {
	out, err := execute(t, "run", sizePicker, "--config-dir", t.TempDir())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"size picker", "step 1  check s", `value="large" selected=xl`, "form values [small]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "run", sizePicker, "--format", "json", "--config-dir", t.TempDir())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var payload struct {
		Name        string           `json:"name"`
		Steps       []map[string]any `json:"steps"`
		GroupEvents int              `json:"groupEvents"`
		Touches     int              `json:"touches"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if payload.Name != "size picker" || len(payload.Steps) != 5 || payload.GroupEvents != 1 || payload.Touches != 1 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestRun_BadFormat(t *testing.T) {
	if _, err := execute(t, "run", sizePicker, "--format", "xml"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestRun_FailedExpectationStillPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := "buttons: [{id: a, value: a}]\nsteps: [{op: check, button: a}]\nexpect: {value: b}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "run", path, "--config-dir", t.TempDir())
	if err == nil {
		t.Fatal("expected the expectation to fail")
	}
	if !strings.Contains(out, "step 1  check a") {
		t.Errorf("output should still show the replayed steps:\n%s", out)
	}
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", sizePicker)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.HasPrefix(out, "OK  ") || !strings.Contains(out, "3 button(s), 5 step(s)") {
		t.Errorf("unexpected output %q", out)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("steps: [{op: jump}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "validate", path); err == nil {
		t.Error("expected validation to fail for an unknown operation")
	}
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "radio.yaml"), []byte("defaults:\n  color: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "defaults", "--config-dir", dir)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	for _, want := range []string{"version: v1.0.0", "color: warn", "labelPosition: after"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAsRadioError(t *testing.T) {
	re := errors.New("scenario.Run", errors.KindScenario, os.ErrNotExist)
	if got := asRadioError(re); got != re {
		t.Errorf("asRadioError should return the RadioError unchanged")
	}
	if got := asRadioError(os.ErrNotExist); got.Kind != errors.KindUnknown {
		t.Errorf("Kind = %v, want unknown", got.Kind)
	}
}
