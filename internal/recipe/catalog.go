package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidCatalog wraps every catalog validation or decoding failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ElementDef names an element for display.
type ElementDef struct {
	Symbol Element
	Name   string
}

// Ingredient is a shelf item with a fixed formula.
type Ingredient struct {
	ID      string
	Name    string
	Formula Formula
}

// Level is one customer request.
type Level struct {
	Problem string
	Target  Formula
	Hint    string
}

// CatalogData is the raw material for NewCatalog. Slice order is kept:
// elements and ingredients are listed in shelf order, levels in play order.
type CatalogData struct {
	Elements    []ElementDef
	Ingredients []Ingredient
	Levels      []Level
}

// Catalog is the validated, read-only game data shared by every engine.
type Catalog struct {
	elements    []ElementDef
	elementIdx  map[Element]int
	ingredients []Ingredient
	ingIdx      map[string]int
	levels      []Level
}

// NewCatalog validates data and copies it into an immutable Catalog.
func NewCatalog(data CatalogData) (*Catalog, error) {
	if len(data.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrInvalidCatalog)
	}
	c := &Catalog{
		elementIdx: make(map[Element]int, len(data.Elements)),
		ingIdx:     make(map[string]int, len(data.Ingredients)),
	}
	for _, el := range data.Elements {
		if el.Symbol == "" {
			return nil, fmt.Errorf("%w: element with empty symbol", ErrInvalidCatalog)
		}
		if _, dup := c.elementIdx[el.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate element %q", ErrInvalidCatalog, el.Symbol)
		}
		c.elementIdx[el.Symbol] = len(c.elements)
		c.elements = append(c.elements, el)
	}

	if len(data.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: no ingredients", ErrInvalidCatalog)
	}
	for _, ing := range data.Ingredients {
		id := strings.TrimSpace(ing.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: ingredient %q has empty id", ErrInvalidCatalog, ing.Name)
		}
		if _, dup := c.ingIdx[id]; dup {
			return nil, fmt.Errorf("%w: duplicate ingredient %q", ErrInvalidCatalog, id)
		}
		if err := c.checkFormula(ing.Formula); err != nil {
			return nil, fmt.Errorf("%w: ingredient %q: %v", ErrInvalidCatalog, id, err)
		}
		if ing.Name == "" {
			ing.Name = id
		}
		ing.ID = id
		ing.Formula = append(Formula(nil), ing.Formula...)
		c.ingIdx[id] = len(c.ingredients)
		c.ingredients = append(c.ingredients, ing)
	}

	if len(data.Levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidCatalog)
	}
	for i, lv := range data.Levels {
		if strings.TrimSpace(lv.Problem) == "" {
			return nil, fmt.Errorf("%w: level %d has no problem text", ErrInvalidCatalog, i+1)
		}
		if err := c.checkFormula(lv.Target); err != nil {
			return nil, fmt.Errorf("%w: level %d target: %v", ErrInvalidCatalog, i+1, err)
		}
		lv.Target = append(Formula(nil), lv.Target...)
		c.levels = append(c.levels, lv)
	}
	return c, nil
}

func (c *Catalog) checkFormula(f Formula) error {
	if len(f) == 0 {
		return errors.New("empty formula")
	}
	seen := make(map[Element]bool, len(f))
	for _, t := range f {
		if _, ok := c.elementIdx[t.Element]; !ok {
			return fmt.Errorf("unknown element %q", t.Element)
		}
		if t.Count <= 0 {
			return fmt.Errorf("element %s has count %d", t.Element, t.Count)
		}
		if seen[t.Element] {
			return fmt.Errorf("element %s repeated", t.Element)
		}
		seen[t.Element] = true
	}
	return nil
}

// Element looks up an element definition by symbol.
func (c *Catalog) Element(sym Element) (ElementDef, bool) {
	i, ok := c.elementIdx[sym]
	if !ok {
		return ElementDef{}, false
	}
	return c.elements[i], true
}

// ElementName returns the display name of sym, or the symbol itself when
// the catalog does not know it.
func (c *Catalog) ElementName(sym Element) string {
	if el, ok := c.Element(sym); ok && el.Name != "" {
		return el.Name
	}
	return string(sym)
}

// Elements returns the element definitions in declaration order.
func (c *Catalog) Elements() []ElementDef {
	return append([]ElementDef(nil), c.elements...)
}

// Ingredient looks up an ingredient by id.
func (c *Catalog) Ingredient(id string) (Ingredient, bool) {
	i, ok := c.ingIdx[id]
	if !ok {
		return Ingredient{}, false
	}
	return c.ingredients[i].clone(), true
}

// Ingredients returns the ingredients in shelf order.
func (c *Catalog) Ingredients() []Ingredient {
	out := make([]Ingredient, len(c.ingredients))
	for i, ing := range c.ingredients {
		out[i] = ing.clone()
	}
	return out
}

// Level returns the level at index.
func (c *Catalog) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.levels) {
		return Level{}, false
	}
	lv := c.levels[index]
	lv.Target = append(Formula(nil), lv.Target...)
	return lv, true
}

// clone copies ing so callers cannot reach the catalog's formula storage.
func (ing Ingredient) clone() Ingredient {
	ing.Formula = append(Formula(nil), ing.Formula...)
	return ing
}

// LevelCount returns the number of levels.
func (c *Catalog) LevelCount() int { return len(c.levels) }

// ─── JSON ────────────────────────────────────────────────────────────────────

type catalogFile struct {
	Elements []struct {
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
	} `json:"elements"`
	Ingredients []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Formula string `json:"formula"`
	} `json:"ingredients"`
	Levels []struct {
		Problem string `json:"problem"`
		Target  string `json:"target"`
		Hint    string `json:"hint"`
	} `json:"levels"`
}

// LoadCatalog decodes a JSON catalog and validates it. Formulas are written
// in compact notation ("Fe2O3"). Unknown fields are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var cf catalogFile
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	var data CatalogData
	for _, e := range cf.Elements {
		data.Elements = append(data.Elements, ElementDef{Symbol: Element(e.Symbol), Name: e.Name})
	}
	for _, ing := range cf.Ingredients {
		f, err := ParseFormula(ing.Formula)
		if err != nil {
			return nil, fmt.Errorf("%w: ingredient %q: %v", ErrInvalidCatalog, ing.ID, err)
		}
		data.Ingredients = append(data.Ingredients, Ingredient{ID: ing.ID, Name: ing.Name, Formula: f})
	}
	for i, lv := range cf.Levels {
		f, err := ParseFormula(lv.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: level %d: %v", ErrInvalidCatalog, i+1, err)
		}
		data.Levels = append(data.Levels, Level{Problem: lv.Problem, Target: f, Hint: lv.Hint})
	}
	return NewCatalog(data)
}

// LoadCatalogFile opens path and calls LoadCatalog.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
