package catalog

// Keyword sets per category. Matching is deliberately permissive raw
// substring counting ("nut" also hits "nutrient"), trading precision for
// recall; the truncation and ordering behavior downstream is calibrated
// against these exact lists.
var keywordsByCategory = map[string][]string{
	Nutrient: {
		"nutrient", "nutrition", "nutritional", "energy", "protein", "fat", "carbohydrate",
		"vitamin", "mineral", "kcal", "calorie", "sugar", "fiber", "fibre", "sodium",
		"calcium", "iron", "potassium", "saturated", "unsaturated", "trans", "cholesterol",
		"ash", "moisture", "starch", "dietary fiber", "total fat", "monounsaturated",
		"polyunsaturated", "vitamin a", "vitamin c", "vitamin d", "vitamin e", "thiamin",
		"riboflavin", "niacin", "folate", "cobalamin", "mg/100g", "g/100g", "kj/100g",
		"per 100g", "per serving", "nutritional value", "nutritional information",
	},
	Dietary: {
		"dietary", "halal", "kosher", "vegan", "vegetarian", "gluten", "lactose",
		"organic", "natural", "free range", "grass fed", "non-dairy", "plant-based",
		"gluten-free", "lactose-free", "dairy-free", "egg-free", "nut-free", "soy-free",
		"certified", "certification", "religious", "diet", "dietary restriction",
	},
	Allergen: {
		"allergen", "allergy", "allergic", "contain", "contains", "may contain", "trace",
		"peanut", "nut", "tree nut", "milk", "dairy", "egg", "soy", "soya", "wheat",
		"gluten", "fish", "shellfish", "crustacean", "mollusc", "celery", "mustard",
		"sesame", "lupin", "sulphite", "sulfite", "cross-contamination", "allergen information",
		"allergy advice", "free from", "does not contain",
	},
	GMO: {
		"gmo", "genetic", "genetically", "modified", "organism", "dna", "gene", "transgenic",
		"bioengineered", "biotechnology", "recombinant", "engineered", "modification",
		"non-gmo", "gmo-free", "genetically modified organism", "genetic engineering",
	},
	Safety: {
		"safety", "heavy metal", "metals", "contaminant", "contamination", "residue",
		"pesticide", "herbicide", "toxin", "toxic", "pathogen", "irradiation", "radiation",
		"lead", "mercury", "cadmium", "arsenic", "aflatoxin", "mycotoxin", "chemical",
		"hazard", "risk", "limit", "maximum", "acceptable", "safe", "unsafe",
	},
	Composition: {
		"composition", "ingredient", "ingredients", "formulation", "component", "components",
		"carrier", "additive", "additives", "preservative", "preservatives", "percentage",
		"percent", "%", "formula", "recipe", "constituent", "material", "substance",
		"compound", "mixture", "blend", "preparation",
	},
	Microbiological: {
		"microbiological", "microbial", "microbe", "bacteria", "bacterial", "yeast",
		"mold", "mould", "fungi", "pathogen", "pathogenic", "shelf life", "storage",
		"temperature", "refrigeration", "freezing", "sterilization", "pasteurization",
		"cfu", "colony", "count", "salmonella", "listeria", "e.coli", "staphylococcus",
		"clostridium", "bacillus", "spoilage", "preservation",
	},
	Regulatory: {
		"regulatory", "regulation", "regulations", "compliance", "compliant", "standard",
		"standards", "requirement", "requirements", "certification", "certified", "approved",
		"approval", "eu", "european", "fda", "usda", "bpom", "codex", "iso", "haccp",
		"brc", "ifs", "fssc", "legal", "law", "directive", "legislation", "authorized",
		"permitted", "prohibited", "banned", "restricted",
	},
}
