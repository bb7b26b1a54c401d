package recipe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormula(t *testing.T) {
	cases := []struct {
		in   string
		want Formula
	}{
		{"H2O", Formula{{"H", 2}, {"O", 1}}},
		{"H2O1", Formula{{"H", 2}, {"O", 1}}},
		{"Fe2Cl6", Formula{{"Fe", 2}, {"Cl", 6}}},
		{"Cl", Formula{{"Cl", 1}}},
		{" Fe2O3 ", Formula{{"Fe", 2}, {"O", 3}}},
		{"Cl12", Formula{{"Cl", 12}}},
	}
	for _, tc := range cases {
		got, err := ParseFormula(tc.in)
		if err != nil {
			t.Errorf("ParseFormula(%q): %v", tc.in, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("ParseFormula(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("ParseFormula(%q)[%d] = %v, want %v", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseFormulaRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "h2o", "2H", "H0", "HH", "H2-O", "Fe2Fe"} {
		if _, err := ParseFormula(in); !errors.Is(err, ErrInvalidFormula) {
			t.Errorf("ParseFormula(%q) err = %v, want ErrInvalidFormula", in, err)
		}
	}
}

func TestFormulaString(t *testing.T) {
	for in, want := range map[string]string{
		"H2O1":   "H2O",
		"Fe2Cl6": "Fe2Cl6",
		"Cl1":    "Cl",
		"H1Cl1":  "HCl",
	} {
		if got := MustParseFormula(in).String(); got != want {
			t.Errorf("%q.String() = %q, want %q", in, got, want)
		}
	}
}

func TestCompositionEqual(t *testing.T) {
	a := Composition{"Fe": 2, "Cl": 6}
	if !a.Equal(Composition{"Cl": 6, "Fe": 2}) {
		t.Error("same maps should be equal")
	}
	if a.Equal(Composition{"Fe": 2, "Cl": 6, "O": 3}) {
		t.Error("extra element should not be equal")
	}
	if a.Equal(Composition{"Fe": 2, "Cl": 5}) {
		t.Error("different count should not be equal")
	}
	if a.Equal(Composition{"Fe": 2, "O": 6}) {
		t.Error("different key set of the same size should not be equal")
	}
}

func TestCatalogLookups(t *testing.T) {
	c := newTestCatalog(t)
	if ing, ok := c.Ingredient("rust"); !ok || ing.Name != "Iron Rust" || ing.Formula.String() != "Fe2O3" {
		t.Errorf("Ingredient(rust) = %+v, %v", ing, ok)
	}
	if _, ok := c.Ingredient("nope"); ok {
		t.Error("unknown ingredient reported as found")
	}
	if _, ok := c.Level(2); ok {
		t.Error("out-of-range level reported as found")
	}
	if got := c.ElementName("Fe"); got != "Iron" {
		t.Errorf("ElementName(Fe) = %q", got)
	}
	if got := c.ElementName("Xx"); got != "Xx" {
		t.Errorf("ElementName(Xx) = %q, want symbol fallback", got)
	}
	ids := []string{}
	for _, ing := range c.Ingredients() {
		ids = append(ids, ing.ID)
	}
	if strings.Join(ids, ",") != "water,acid,rust,salt" {
		t.Errorf("shelf order = %v", ids)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	elements := []ElementDef{{Symbol: "H", Name: "Hydrogen"}, {Symbol: "O", Name: "Oxygen"}}
	water := Ingredient{ID: "water", Name: "Water", Formula: MustParseFormula("H2O")}
	level := Level{Problem: "thirsty", Target: MustParseFormula("H2O")}

	cases := []struct {
		name string
		data CatalogData
	}{
		{"no elements", CatalogData{Ingredients: []Ingredient{water}, Levels: []Level{level}}},
		{"duplicate element", CatalogData{Elements: append(elements, ElementDef{Symbol: "H"}), Ingredients: []Ingredient{water}, Levels: []Level{level}}},
		{"empty symbol", CatalogData{Elements: []ElementDef{{Name: "Nothing"}}, Ingredients: []Ingredient{water}, Levels: []Level{level}}},
		{"no ingredients", CatalogData{Elements: elements, Levels: []Level{level}}},
		{"duplicate ingredient", CatalogData{Elements: elements, Ingredients: []Ingredient{water, water}, Levels: []Level{level}}},
		{"blank id", CatalogData{Elements: elements, Ingredients: []Ingredient{{ID: " ", Formula: MustParseFormula("H")}}, Levels: []Level{level}}},
		{"unknown element in formula", CatalogData{Elements: elements, Ingredients: []Ingredient{{ID: "salt", Formula: MustParseFormula("Cl")}}, Levels: []Level{level}}},
		{"zero count", CatalogData{Elements: elements, Ingredients: []Ingredient{{ID: "w", Formula: Formula{{"H", 0}}}}, Levels: []Level{level}}},
		{"empty formula", CatalogData{Elements: elements, Ingredients: []Ingredient{{ID: "w"}}, Levels: []Level{level}}},
		{"no levels", CatalogData{Elements: elements, Ingredients: []Ingredient{water}}},
		{"level without problem", CatalogData{Elements: elements, Ingredients: []Ingredient{water}, Levels: []Level{{Target: MustParseFormula("H")}}}},
		{"level without target", CatalogData{Elements: elements, Ingredients: []Ingredient{water}, Levels: []Level{{Problem: "?"}}}},
		{"repeated target element", CatalogData{Elements: elements, Ingredients: []Ingredient{water}, Levels: []Level{{Problem: "?", Target: Formula{{"H", 1}, {"H", 1}}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.data); !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("err = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	target := MustParseFormula("H2O")
	data := CatalogData{
		Elements:    []ElementDef{{Symbol: "H"}, {Symbol: "O"}},
		Ingredients: []Ingredient{{ID: "water", Formula: MustParseFormula("H2O")}},
		Levels:      []Level{{Problem: "thirsty", Target: target}},
	}
	c, err := NewCatalog(data)
	if err != nil {
		t.Fatal(err)
	}
	target[0].Count = 99
	lv, _ := c.Level(0)
	if lv.Target[0].Count != 2 {
		t.Error("catalog shares the caller's target slice")
	}
	if ing, _ := c.Ingredient("water"); ing.Name != "water" {
		t.Errorf("missing name should default to id, got %q", ing.Name)
	}
}

func TestCatalogGettersReturnCopies(t *testing.T) {
	c, err := NewCatalog(CatalogData{
		Elements:    []ElementDef{{Symbol: "Fe"}, {Symbol: "Cl"}},
		Ingredients: []Ingredient{{ID: "salt", Formula: MustParseFormula("Cl")}},
		Levels:      []Level{{Problem: "rusty", Target: MustParseFormula("Fe2Cl6")}},
	})
	if err != nil {
		t.Fatal(err)
	}

	ing, _ := c.Ingredient("salt")
	ing.Formula[0].Count = 99
	c.Ingredients()[0].Formula[0].Count = 98
	lv, _ := c.Level(0)
	lv.Target[0].Count = 42

	if got, _ := c.Ingredient("salt"); got.Formula.String() != "Cl" {
		t.Errorf("salt formula changed through a returned value: %s", got.Formula)
	}
	if got, _ := c.Level(0); got.Target.String() != "Fe2Cl6" {
		t.Errorf("level target changed through a returned value: %s", got.Target)
	}
}

const testCatalogJSON = `{
  "elements": [
    {"symbol": "H", "name": "Hydrogen"},
    {"symbol": "O", "name": "Oxygen"},
    {"symbol": "Fe", "name": "Iron"},
    {"symbol": "Cl", "name": "Chlorine"}
  ],
  "ingredients": [
    {"id": "rust", "name": "Iron Rust", "formula": "Fe2O3"},
    {"id": "salt", "name": "Cave Salt", "formula": "Cl"}
  ],
  "levels": [
    {"problem": "Rusty sword!", "target": "Fe2Cl6", "hint": "Swap the oxygen."}
  ]
}`

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(testCatalogJSON))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	lv, ok := c.Level(0)
	if !ok || lv.Target.String() != "Fe2Cl6" || lv.Hint != "Swap the oxygen." {
		t.Errorf("level 0 = %+v", lv)
	}

	e := NewEngine(c)
	if _, err := e.StartLevel(0); err != nil {
		t.Fatal(err)
	}
	if _, err := e.AddIngredient("salt"); err != nil {
		t.Fatal(err)
	}
	r, err := e.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != KindUnder || r.Element != "Fe" {
		t.Errorf("got %v(%s), want under(Fe)", r.Kind, r.Element)
	}
}

func TestLoadCatalogRejects(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"elements": [`,
		"unknown field": `{"elements": [], "potions": []}`,
		"bad formula":   strings.Replace(testCatalogJSON, `"Fe2O3"`, `"fe2o3"`, 1),
		"bad target":    strings.Replace(testCatalogJSON, `"Fe2Cl6"`, `""`, 1),
		"unknown elem":  strings.Replace(testCatalogJSON, `"Cl"}`, `"Na"}`, 1),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCatalog(strings.NewReader(in)); !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("err = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(testCatalogJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}
	if c.LevelCount() != 1 {
		t.Errorf("LevelCount = %d, want 1", c.LevelCount())
	}
	if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
