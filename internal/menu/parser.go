package menu

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Price is a run of digits at the very end of the line. Trimming happens
// before this match, so dotted/dashed leaders never break price detection.
var pricePattern = regexp.MustCompile(`(\d+)\s*$`)

// Portion or weight annotations trailing the dish name: "180", "1/2".
var portionPattern = regexp.MustCompile(`^\d+$|^\d+/\d+$`)

// ParseMenuText converts recognized menu text into menu items.
// Pure and deterministic; lines that don't look like "name ... price"
// are dropped silently. Output order matches input line order.
func ParseMenuText(text string) []MenuItem {
	lines := strings.Split(text, "\n")
	items := make([]MenuItem, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) < 3 {
			continue
		}

		// Section headers: short all-caps lines (STARTERS, ДЕСЕРТИ)
		if trimmed == strings.ToUpper(trimmed) && utf8.RuneCountInString(trimmed) < 30 {
			continue
		}

		// Annotations and footnotes
		if strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, `"`) {
			continue
		}

		loc := pricePattern.FindStringSubmatchIndex(trimmed)
		if loc == nil {
			continue
		}

		price, err := strconv.Atoi(trimmed[loc[2]:loc[3]])
		if err != nil {
			// Digit run too long for int; treat the line as noise.
			continue
		}

		name := extractName(trimmed[:loc[0]])
		if utf8.RuneCountInString(name) <= 2 {
			continue
		}

		items = append(items, MenuItem{
			Name:    name,
			Price:   price,
			RawText: trimmed,
		})
	}

	return items
}

// extractName cleans the text preceding the price: decorative leaders are
// trimmed off the tail, then trailing portion/weight tokens are skipped
// scanning backward ("Карпачо лосось 180" → "Карпачо лосось").
func extractName(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), ".- ")

	parts := strings.Fields(s)
	end := len(parts)
	for i := len(parts) - 1; i >= 0; i-- {
		if !portionPattern.MatchString(parts[i]) {
			end = i + 1
			break
		}
	}

	return strings.Join(parts[:end], " ")
}
