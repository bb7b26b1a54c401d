package assets

import (
	"sync"

	"potion-brewer/internal/recipe"
)

// Ingredient ids as used on the shelf and in the brew log.
const (
	IngredientWater = "water"
	IngredientAcid  = "acid"
	IngredientRust  = "rust"
	IngredientSalt  = "salt"
	IngredientIron  = "iron"
)

// Elements lists every element the shop stocks, in display order.
var Elements = []recipe.ElementDef{
	{Symbol: "H", Name: "Hydrogen"},
	{Symbol: "O", Name: "Oxygen"},
	{Symbol: "Fe", Name: "Iron"},
	{Symbol: "Cl", Name: "Chlorine"},
}

// Ingredients is the shelf, left to right.
var Ingredients = []recipe.Ingredient{
	{ID: IngredientWater, Name: "River Water", Formula: recipe.MustParseFormula("H2O")},
	{ID: IngredientAcid, Name: "Stomach Acid", Formula: recipe.MustParseFormula("HCl")},
	{ID: IngredientRust, Name: "Iron Rust", Formula: recipe.MustParseFormula("Fe2O3")},
	{ID: IngredientSalt, Name: "Cave Salt", Formula: recipe.MustParseFormula("Cl")},
	{ID: IngredientIron, Name: "Iron Filings", Formula: recipe.MustParseFormula("Fe")},
}

// Levels is the campaign in play order.
var Levels = []recipe.Level{
	{
		Problem: "My iron sword is rusting! I need something to remove it. It's an emergency!",
		// 2 FeCl3, what is left once the rust has reacted.
		Target: recipe.MustParseFormula("Fe2Cl6"),
		Hint:   "Rust is made of Iron and Oxygen. To remove it, you need to replace the Oxygen with something more reactive, like Chlorine.",
	},
	{
		Problem: "I've crossed the salt flats and my waterskin is dry. Anything clean to drink?",
		Target:  recipe.MustParseFormula("H2O"),
		Hint:    "Nothing fancy. Two Hydrogen, one Oxygen, and nothing else in the pot.",
	},
	{
		Problem: "The temple bells have gone green. The abbot wants a wash strong enough to bite through the tarnish.",
		Target:  recipe.MustParseFormula("H2Cl2"),
		Hint:    "Acid bites. Hydrogen and Chlorine in equal measure, no Oxygen.",
	},
}

var (
	catalogOnce sync.Once
	catalog     *recipe.Catalog
)

// Catalog returns the compiled-in catalog, validated on first use.
// Invalid built-in data is a programming error and panics.
func Catalog() *recipe.Catalog {
	catalogOnce.Do(func() {
		c, err := recipe.NewCatalog(recipe.CatalogData{
			Elements:    Elements,
			Ingredients: Ingredients,
			Levels:      Levels,
		})
		if err != nil {
			panic(err)
		}
		catalog = c
	})
	return catalog
}

// LoadCatalog returns the catalog stored at path, or the compiled-in one when
// path is empty.
func LoadCatalog(path string) (*recipe.Catalog, error) {
	if path == "" {
		return Catalog(), nil
	}
	return recipe.LoadCatalogFile(path)
}
