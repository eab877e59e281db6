// Package catalog holds the fixed analysis categories, their canonical
// question lists, keyword sets, and prompt guidance. The content is
// declarative data; the algorithms that consume it live elsewhere.
package catalog

// Category identifiers, in registration order.
const (
	Nutrient        = "nutrient"
	Dietary         = "dietary"
	Allergen        = "allergen"
	GMO             = "gmo"
	Safety          = "safety"
	Composition     = "composition"
	Microbiological = "microbiological"
	Regulatory      = "regulatory"
)

// Categories returns all category names in registration order. This is the
// tie-break order when relevance scores are equal.
func Categories() []string {
	return []string{
		Nutrient, Dietary, Allergen, GMO,
		Safety, Composition, Microbiological, Regulatory,
	}
}

// Questions returns the canonical, ordered question list for a category.
// The order is the display order and is never mutated.
func Questions(category string) []string {
	return questionsByCategory[category]
}

// Keywords returns the lowercase keyword set used to score text relevance
// for a category. Keywords are matched as raw substrings.
func Keywords(category string) []string {
	return keywordsByCategory[category]
}

// Guidance returns the category-specific guidance sentence injected into the
// analysis prompt. Falls back to a generic instruction for unknown categories.
func Guidance(category string) string {
	if g, ok := guidanceByCategory[category]; ok {
		return g
	}
	return "Look for information related to " + category
}

var guidanceByCategory = map[string]string{
	Nutrient:        "Look for nutritional tables, energy values, protein content, fat content, carbohydrates, vitamins, minerals, and any numerical nutritional data. Pay special attention to tables with columns like 'Nutrient', 'Value', 'Unit' or similar structures.",
	Dietary:         "Look for dietary certifications, religious compliance (Halal, Kosher), dietary restrictions (Vegan, Vegetarian), and special dietary claims (Gluten-free, Organic, etc.).",
	Allergen:        "Look for allergen declarations, 'contains' statements, 'may contain' warnings, and any mention of the 14 major allergens or cross-contamination risks.",
	GMO:             "Look for GMO status, genetic modification information, bioengineering details, and any statements about genetically modified organisms.",
	Safety:          "Look for safety data, contaminant levels, heavy metals, pesticide residues, toxicological information, and safety limits.",
	Composition:     "Look for ingredient lists, formulation details, component percentages, and compositional information.",
	Microbiological: "Look for microbial specifications, shelf life data, storage conditions, pathogen testing, and microbiological safety information.",
	Regulatory:      "Look for regulatory compliance statements, certifications, standards compliance, and legal requirements.",
}
