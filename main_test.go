package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	catalogFile = ""
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestLevelsCommand(t *testing.T) {
	out := runCmd(t, "levels")
	if !strings.Contains(out, "Fe2Cl6") || !strings.Contains(out, "My iron sword is rusting!") {
		t.Errorf("levels output:\n%s", out)
	}
}

func TestIngredientsCommand(t *testing.T) {
	out := runCmd(t, "ingredients")
	for _, want := range []string{"water", "River Water", "H2O", "rust", "Fe2O3", "salt"} {
		if !strings.Contains(out, want) {
			t.Errorf("ingredients output missing %q:\n%s", want, out)
		}
	}
}

func TestCustomCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
  "elements": [{"symbol": "Na", "name": "Sodium"}, {"symbol": "Cl", "name": "Chlorine"}],
  "ingredients": [{"id": "brine", "name": "Brine", "formula": "NaCl"}],
  "levels": [{"problem": "Season my stew.", "target": "Na2Cl2"}]
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out := runCmd(t, "levels", "--catalog", path)
	if !strings.Contains(out, "Season my stew.") || !strings.Contains(out, "Na2Cl2") {
		t.Errorf("levels output:\n%s", out)
	}
}
