package classify

// Multilingual ingredient keywords (English + Ukrainian). Slice order is
// the tie-break contract: within a tier the first match wins, so the
// traversal order below is load-bearing and covered by tests.

var nonVegKeywords = []string{
	"steak", "chicken", "beef", "pork", "bacon", "fish", "salmon",
	"tuna", "shrimp", "lamb", "meat", "crab", "eel",
	"стейк", "курка", "куряч", "яловичина", "свинина", "бекон", "риба",
	"лосос", "тунець", "креветка", "креветк", "краб", "м'яс", "вугр",
	"телятин", "каперс", "боніто",
}

var vegKeywords = []string{
	"tofu", "seitan", "tempeh", "vegetable", "vegan", "cheese",
	"tomato", "eggplant", "mushroom", "salad",
	"тофу", "сейтан", "темпе", "овоч", "веган", "сир", "страчателла",
	"буррата", "томат", "баклажан", "грібк", "рукол", "авокадо", "салат",
}
