package menu

import "fmt"

// ReviewThreshold is the confidence floor below which an item is
// surfaced on the uncertainty card. Both keyword tiers score above it,
// so keyword-only runs never produce a card.
const ReviewThreshold = 0.7

// Aggregate builds the final result from classified items:
// vegetarian items in original order, their exact price sum, and an
// uncertainty card only when some item actually needs review.
// Pure and deterministic; no external calls.
func Aggregate(items []ClassifiedMenuItem, requestID string) MenuProcessingResult {
	vegetarian := make([]ClassifiedMenuItem, 0, len(items))
	total := 0
	var flagged []FlaggedItem

	for _, item := range items {
		c := item.Classification
		if c == nil {
			// Classification never attempted; not vegetarian, not reviewable.
			continue
		}

		if c.IsVegetarian {
			vegetarian = append(vegetarian, item)
			total += item.Price
		}

		if len(c.Flags) > 0 || c.Confidence < ReviewThreshold {
			flagged = append(flagged, FlaggedItem{
				Name:   item.Name,
				Reason: reviewReason(c),
			})
		}
	}

	result := MenuProcessingResult{
		VegetarianItems: vegetarian,
		TotalSum:        total,
		RequestID:       requestID,
	}

	if len(flagged) > 0 {
		result.UncertaintyCard = &UncertaintyCard{
			FlaggedItems:   flagged,
			RequiresReview: true,
		}
	}

	return result
}

func reviewReason(c *Classification) string {
	if len(c.Flags) > 0 {
		return fmt.Sprintf("flagged %v: %s", c.Flags, c.Reasoning)
	}
	return fmt.Sprintf("low confidence %.2f: %s", c.Confidence, c.Reasoning)
}
