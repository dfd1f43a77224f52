// Package catalog holds the static, read-only reference data: the alcohol
// drink database, spending categories and exercise types.
package catalog

import (
	"sort"
	"strings"
)

// Drink is one entry of the drink database. The id is derived from the name
// at startup and is stable across restarts.
type Drink struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Category                 string  `json:"category"`
	AlcoholPercentage        float64 `json:"alcohol_percentage"`
	StandardServingML        int     `json:"standard_serving_ml"`
	StandardDrinksPerServing float64 `json:"standard_drinks_per_serving"`
}

// DrinkID normalizes a drink name into its catalog id: lowercased, spaces
// replaced with underscores, parentheses stripped.
func DrinkID(name string) string {
	id := strings.ToLower(name)
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "(", "")
	id = strings.ReplaceAll(id, ")", "")
	return id
}

// Drinks returns catalog entries matching the optional search (substring,
// case-insensitive) and category (case-insensitive equality) filters.
func Drinks(search, category string) []Drink {
	out := make([]Drink, 0, len(drinks))
	searchLower := strings.ToLower(search)
	for _, d := range drinks {
		if search != "" && !strings.Contains(strings.ToLower(d.Name), searchLower) {
			continue
		}
		if category != "" && !strings.EqualFold(d.Category, category) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DrinkCategories returns the distinct categories, sorted.
func DrinkCategories() []string {
	seen := map[string]struct{}{}
	for _, d := range drinks {
		seen[d.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

type drinkSpec struct {
	name     string
	category string
	abv      float64
	serving  int
	std      float64
}

var drinks = buildDrinks()

func buildDrinks() []Drink {
	out := make([]Drink, 0, len(drinkSpecs))
	for _, s := range drinkSpecs {
		out = append(out, Drink{
			ID:                       DrinkID(s.name),
			Name:                     s.name,
			Category:                 s.category,
			AlcoholPercentage:        s.abv,
			StandardServingML:        s.serving,
			StandardDrinksPerServing: s.std,
		})
	}
	return out
}

var drinkSpecs = []drinkSpec{
	// Beer: 12oz serving = 355ml, ~5% ABV = 1 standard drink
	{"Budweiser", "Beer", 5.0, 355, 1.0},
	{"Heineken", "Beer", 5.0, 355, 1.0},
	{"Corona Extra", "Beer", 4.6, 355, 0.9},
	{"Guinness", "Beer", 4.2, 355, 0.8},
	{"Stella Artois", "Beer", 5.2, 355, 1.0},
	{"Sam Adams", "Beer", 4.9, 355, 1.0},
	{"Blue Moon", "Beer", 5.4, 355, 1.1},
	{"IPA (Craft)", "Beer", 6.5, 355, 1.3},
	{"Pilsner", "Beer", 4.5, 355, 0.9},
	{"Lager", "Beer", 5.0, 355, 1.0},
	{"Pale Ale", "Beer", 5.5, 355, 1.1},
	{"Stout", "Beer", 5.0, 355, 1.0},
	{"Porter", "Beer", 5.5, 355, 1.1},
	{"Wheat Beer", "Beer", 5.0, 355, 1.0},
	{"Amber Ale", "Beer", 5.5, 355, 1.1},
	{"Belgian Ale", "Beer", 7.0, 355, 1.4},
	{"Sapporo", "Beer", 4.9, 355, 1.0},
	{"Asahi", "Beer", 5.0, 355, 1.0},
	{"Tiger Beer", "Beer", 5.0, 355, 1.0},
	{"Carlsberg", "Beer", 5.0, 355, 1.0},

	// Wine: 5oz serving = 150ml, ~12% ABV = 1 standard drink
	{"Cabernet Sauvignon", "Wine", 13.5, 150, 1.1},
	{"Merlot", "Wine", 13.0, 150, 1.1},
	{"Pinot Noir", "Wine", 12.5, 150, 1.0},
	{"Chardonnay", "Wine", 13.0, 150, 1.1},
	{"Sauvignon Blanc", "Wine", 12.5, 150, 1.0},
	{"Pinot Grigio", "Wine", 12.0, 150, 1.0},
	{"Riesling", "Wine", 11.0, 150, 0.9},
	{"Moscato", "Wine", 5.5, 150, 0.5},
	{"Prosecco", "Wine", 11.0, 150, 0.9},
	{"Champagne", "Wine", 12.0, 150, 1.0},
	{"Rosé", "Wine", 12.0, 150, 1.0},
	{"Syrah/Shiraz", "Wine", 14.0, 150, 1.2},
	{"Zinfandel", "Wine", 14.5, 150, 1.2},
	{"Malbec", "Wine", 13.5, 150, 1.1},
	{"Sangiovese", "Wine", 13.0, 150, 1.1},
	{"Port Wine", "Wine", 20.0, 75, 0.8},
	{"Sherry", "Wine", 17.0, 75, 0.7},
	{"Vermouth", "Wine", 16.0, 75, 0.6},
	{"Gewürztraminer", "Wine", 13.0, 150, 1.1},
	{"Cava", "Wine", 11.5, 150, 0.9},

	// Spirits: 1.5oz shot = 44ml, 40% ABV = 1 standard drink
	{"Vodka", "Spirit", 40.0, 44, 1.0},
	{"Gin", "Spirit", 40.0, 44, 1.0},
	{"Rum (White)", "Spirit", 40.0, 44, 1.0},
	{"Rum (Dark)", "Spirit", 40.0, 44, 1.0},
	{"Tequila (Blanco)", "Spirit", 40.0, 44, 1.0},
	{"Tequila (Reposado)", "Spirit", 40.0, 44, 1.0},
	{"Whiskey (Bourbon)", "Spirit", 40.0, 44, 1.0},
	{"Whiskey (Scotch)", "Spirit", 40.0, 44, 1.0},
	{"Whiskey (Irish)", "Spirit", 40.0, 44, 1.0},
	{"Whiskey (Rye)", "Spirit", 40.0, 44, 1.0},
	{"Cognac", "Spirit", 40.0, 44, 1.0},
	{"Brandy", "Spirit", 40.0, 44, 1.0},
	{"Mezcal", "Spirit", 42.0, 44, 1.1},
	{"Absinthe", "Spirit", 55.0, 30, 0.9},
	{"Jagermeister", "Spirit", 35.0, 44, 0.9},
	{"Fireball", "Spirit", 33.0, 44, 0.8},
	{"Soju", "Spirit", 17.0, 60, 0.6},
	{"Sake", "Spirit", 15.0, 60, 0.5},
	{"Baijiu", "Spirit", 52.0, 30, 0.9},
	{"Grappa", "Spirit", 40.0, 44, 1.0},

	// Liqueurs
	{"Kahlua", "Liqueur", 20.0, 44, 0.5},
	{"Bailey's", "Liqueur", 17.0, 44, 0.4},
	{"Amaretto", "Liqueur", 24.0, 44, 0.6},
	{"Triple Sec", "Liqueur", 30.0, 44, 0.7},
	{"Cointreau", "Liqueur", 40.0, 30, 0.7},
	{"Grand Marnier", "Liqueur", 40.0, 30, 0.7},
	{"Chambord", "Liqueur", 16.5, 44, 0.4},
	{"Frangelico", "Liqueur", 20.0, 44, 0.5},
	{"Midori", "Liqueur", 20.0, 44, 0.5},
	{"Blue Curacao", "Liqueur", 25.0, 44, 0.6},

	// Cocktails: estimated standard drinks per serving
	{"Margarita", "Cocktail", 13.0, 240, 1.7},
	{"Martini (Classic)", "Cocktail", 30.0, 90, 1.5},
	{"Cosmopolitan", "Cocktail", 18.0, 120, 1.2},
	{"Mojito", "Cocktail", 10.0, 240, 1.3},
	{"Old Fashioned", "Cocktail", 32.0, 90, 1.6},
	{"Manhattan", "Cocktail", 28.0, 90, 1.4},
	{"Negroni", "Cocktail", 24.0, 90, 1.2},
	{"Whiskey Sour", "Cocktail", 15.0, 120, 1.0},
	{"Daiquiri", "Cocktail", 15.0, 120, 1.0},
	{"Piña Colada", "Cocktail", 12.0, 240, 1.6},
	{"Long Island Iced Tea", "Cocktail", 22.0, 350, 4.0},
	{"Bloody Mary", "Cocktail", 12.0, 240, 1.6},
	{"Mimosa", "Cocktail", 8.0, 180, 0.8},
	{"Bellini", "Cocktail", 7.0, 180, 0.7},
	{"Aperol Spritz", "Cocktail", 8.0, 200, 0.9},
	{"Moscow Mule", "Cocktail", 11.0, 200, 1.2},
	{"Mai Tai", "Cocktail", 14.0, 200, 1.5},
	{"Caipirinha", "Cocktail", 18.0, 150, 1.5},
	{"Sex on the Beach", "Cocktail", 10.0, 200, 1.1},
	{"Tequila Sunrise", "Cocktail", 10.0, 200, 1.1},
	{"Gin & Tonic", "Cocktail", 13.0, 200, 1.4},
	{"Rum & Coke", "Cocktail", 11.0, 240, 1.4},
	{"Vodka Soda", "Cocktail", 12.0, 200, 1.3},
	{"Screwdriver", "Cocktail", 10.0, 200, 1.1},
	{"White Russian", "Cocktail", 20.0, 150, 1.7},
	{"Black Russian", "Cocktail", 25.0, 120, 1.7},
	{"Espresso Martini", "Cocktail", 15.0, 120, 1.0},
	{"Singapore Sling", "Cocktail", 12.0, 240, 1.6},
	{"Hurricane", "Cocktail", 14.0, 300, 2.3},
	{"Zombie", "Cocktail", 20.0, 300, 3.4},

	// Ciders & seltzers
	{"Apple Cider", "Cider", 5.0, 355, 1.0},
	{"Pear Cider", "Cider", 4.5, 355, 0.9},
	{"Hard Seltzer", "Seltzer", 5.0, 355, 1.0},
	{"White Claw", "Seltzer", 5.0, 355, 1.0},
	{"Truly", "Seltzer", 5.0, 355, 1.0},
}
