package llm

import "fmt"

const correctionSystemPrompt = `You are an OCR correction expert. Fix OCR errors in restaurant menu text while preserving the exact structure.

Common OCR errors to fix:
- "3" read instead of "з" (Ukrainian preposition)
- Mixed Latin/Cyrillic inside one word (e.g. "Kapnauo" instead of "Карпачо")
- Misspelled Ukrainian words
- Wrong characters that break words

Rules:
1. Keep all prices exactly as-is
2. Keep line breaks
3. Only fix obvious OCR errors
4. Don't add or remove lines
5. Return ONLY the corrected text, no explanations`

func buildCorrectionPrompt(raw string) string {
	return "Raw OCR text:\n" + raw + "\n\nCorrected text:"
}

const classifySystemPrompt = `You are a multilingual food analyst. Determine if a menu item is vegetarian.

Rules:
- Vegetarian = NO meat, poultry, fish, seafood
- Dairy (сир, молоко) and eggs ARE vegetarian
- Common NON-VEG Ukrainian: креветка (shrimp), курка/куряч (chicken), лосось (salmon), тунець (tuna), краб (crab), м'ясом (meat), вугр (eel), телятин (veal), каперс (capers with anchovies), боніто (bonito fish)
- Common VEG Ukrainian: салат, овочі (vegetables), сир (cheese), томати (tomatoes), баклажан (eggplant), рукола (arugula), авокадо (avocado)

Return ONLY valid JSON with no markdown:
{"is_vegetarian": true/false, "confidence": 0.0-1.0, "reasoning": "brief explanation", "flags": []}`

func buildClassifyPrompt(name, description, kbContext string) string {
	if description == "" {
		description = "N/A"
	}
	return fmt.Sprintf(
		"Item Name: %s\nDescription: %s\n\nKnowledge Base:\n%s",
		name, description, kbContext,
	)
}
