package catalog

import "strings"

// Categorize guesses the category for an item name when the client didn't
// pick one. Case-insensitive: exact match first, then substring match.
// Falls back to the default category.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return DefaultCategory
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// Substring entries are ordered longer/more-specific first.
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return DefaultCategory
}

var exactMatch = map[string]string{
	// Produce
	"apples":       "Produce",
	"bananas":      "Produce",
	"oranges":      "Produce",
	"lemons":       "Produce",
	"limes":        "Produce",
	"avocados":     "Produce",
	"tomatoes":     "Produce",
	"potatoes":     "Produce",
	"onions":       "Produce",
	"garlic":       "Produce",
	"lettuce":      "Produce",
	"spinach":      "Produce",
	"broccoli":     "Produce",
	"carrots":      "Produce",
	"celery":       "Produce",
	"cucumbers":    "Produce",
	"mushrooms":    "Produce",
	"grapes":       "Produce",
	"strawberries": "Produce",
	"blueberries":  "Produce",
	"cilantro":     "Produce",
	"ginger":       "Produce",
	"zucchini":     "Produce",

	// Dairy
	"milk":           "Dairy",
	"eggs":           "Dairy",
	"butter":         "Dairy",
	"cheese":         "Dairy",
	"yogurt":         "Dairy",
	"cream cheese":   "Dairy",
	"sour cream":     "Dairy",
	"heavy cream":    "Dairy",
	"cottage cheese": "Dairy",

	// Meat
	"chicken":       "Meat",
	"beef":          "Meat",
	"pork":          "Meat",
	"turkey":        "Meat",
	"bacon":         "Meat",
	"sausage":       "Meat",
	"ham":           "Meat",
	"steak":         "Meat",
	"salmon":        "Meat",
	"shrimp":        "Meat",
	"tuna":          "Meat",
	"ground beef":   "Meat",
	"ground turkey": "Meat",
	"hot dogs":      "Meat",
	"deli meat":     "Meat",

	// Bakery
	"bread":      "Bakery",
	"bagels":     "Bakery",
	"tortillas":  "Bakery",
	"rolls":      "Bakery",
	"buns":       "Bakery",
	"muffins":    "Bakery",
	"croissants": "Bakery",

	// Pantry
	"rice":          "Pantry",
	"pasta":         "Pantry",
	"flour":         "Pantry",
	"sugar":         "Pantry",
	"salt":          "Pantry",
	"olive oil":     "Pantry",
	"soy sauce":     "Pantry",
	"ketchup":       "Pantry",
	"mustard":       "Pantry",
	"mayonnaise":    "Pantry",
	"honey":         "Pantry",
	"peanut butter": "Pantry",
	"cereal":        "Pantry",
	"oatmeal":       "Pantry",
	"soup":          "Pantry",
	"broth":         "Pantry",
	"beans":         "Pantry",

	// Snacks
	"chips":        "Snacks",
	"crackers":     "Snacks",
	"cookies":      "Snacks",
	"popcorn":      "Snacks",
	"pretzels":     "Snacks",
	"granola bars": "Snacks",
	"trail mix":    "Snacks",
	"candy":        "Snacks",
	"chocolate":    "Snacks",

	// Frozen
	"ice cream":      "Frozen",
	"frozen pizza":   "Frozen",
	"frozen veggies": "Frozen",
	"frozen fruit":   "Frozen",
	"popsicles":      "Frozen",

	// Beverages
	"water":           "Beverages",
	"juice":           "Beverages",
	"coffee":          "Beverages",
	"tea":             "Beverages",
	"soda":            "Beverages",
	"beer":            "Beverages",
	"wine":            "Beverages",
	"sparkling water": "Beverages",

	// Household
	"paper towels":      "Household",
	"toilet paper":      "Household",
	"trash bags":        "Household",
	"dish soap":         "Household",
	"laundry detergent": "Household",
	"sponges":           "Household",
	"aluminum foil":     "Household",
	"batteries":         "Household",
	"napkins":           "Household",

	// Party
	"balloons":     "Party",
	"paper plates": "Party",
	"paper cups":   "Party",
	"streamers":    "Party",
	"candles":      "Party",
	"party hats":   "Party",
}

type substringEntry struct {
	keyword  string
	category string
}

// Ordered with longer/more-specific keywords first for deterministic priority.
var substringMatches = []substringEntry{
	// Meat
	{"chicken breast", "Meat"},
	{"chicken thigh", "Meat"},
	{"ground beef", "Meat"},
	{"ground turkey", "Meat"},
	{"pork chop", "Meat"},
	{"hot dog", "Meat"},
	{"chicken", "Meat"},
	{"beef", "Meat"},
	{"bacon", "Meat"},
	{"sausage", "Meat"},
	{"steak", "Meat"},
	{"fish", "Meat"},

	// Dairy
	{"cream cheese", "Dairy"},
	{"sour cream", "Dairy"},
	{"greek yogurt", "Dairy"},
	{"almond milk", "Dairy"},
	{"oat milk", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"milk", "Dairy"},
	{"butter", "Dairy"},
	{"cream", "Dairy"},
	{"egg", "Dairy"},

	// Produce
	{"salad mix", "Produce"},
	{"sweet potato", "Produce"},
	{"bell pepper", "Produce"},
	{"cherry tomato", "Produce"},
	{"green onion", "Produce"},
	{"cabbage", "Produce"},
	{"cauliflower", "Produce"},
	{"berries", "Produce"},
	{"fruit", "Produce"},
	{"lettuce", "Produce"},
	{"spinach", "Produce"},
	{"apple", "Produce"},
	{"banana", "Produce"},
	{"tomato", "Produce"},
	{"potato", "Produce"},
	{"onion", "Produce"},
	{"pepper", "Produce"},
	{"carrot", "Produce"},

	// Bakery
	{"sourdough", "Bakery"},
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"tortilla", "Bakery"},
	{"muffin", "Bakery"},
	{"croissant", "Bakery"},
	{"bun", "Bakery"},

	// Frozen — before Pantry so "frozen soup" lands here
	{"frozen", "Frozen"},
	{"ice cream", "Frozen"},
	{"popsicle", "Frozen"},

	// Pantry
	{"peanut butter", "Pantry"},
	{"olive oil", "Pantry"},
	{"maple syrup", "Pantry"},
	{"soy sauce", "Pantry"},
	{"pasta sauce", "Pantry"},
	{"canned", "Pantry"},
	{"cereal", "Pantry"},
	{"granola", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"noodle", "Pantry"},
	{"flour", "Pantry"},
	{"sugar", "Pantry"},
	{"spice", "Pantry"},
	{"seasoning", "Pantry"},
	{"sauce", "Pantry"},
	{"broth", "Pantry"},
	{"soup", "Pantry"},
	{"bean", "Pantry"},

	// Beverages
	{"sparkling water", "Beverages"},
	{"orange juice", "Beverages"},
	{"coffee", "Beverages"},
	{"juice", "Beverages"},
	{"soda", "Beverages"},
	{"water", "Beverages"},
	{"beer", "Beverages"},
	{"wine", "Beverages"},
	{"tea", "Beverages"},

	// Snacks
	{"granola bar", "Snacks"},
	{"trail mix", "Snacks"},
	{"chip", "Snacks"},
	{"cracker", "Snacks"},
	{"cookie", "Snacks"},
	{"popcorn", "Snacks"},
	{"pretzel", "Snacks"},
	{"candy", "Snacks"},
	{"chocolate", "Snacks"},
	{"snack", "Snacks"},

	// Party
	{"paper plate", "Party"},
	{"paper cup", "Party"},
	{"balloon", "Party"},
	{"streamer", "Party"},
	{"party", "Party"},

	// Household
	{"paper towel", "Household"},
	{"toilet paper", "Household"},
	{"trash bag", "Household"},
	{"garbage bag", "Household"},
	{"dish soap", "Household"},
	{"laundry", "Household"},
	{"detergent", "Household"},
	{"cleaner", "Household"},
	{"cleaning", "Household"},
	{"sponge", "Household"},
	{"foil", "Household"},
	{"battery", "Household"},
}
