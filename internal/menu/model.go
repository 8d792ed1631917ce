package menu

// MenuItem is one dish candidate extracted from recognized menu text.
// Price is an integer in the menu's native currency unit.
type MenuItem struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
	RawText     string `json:"raw_text,omitempty"`
}

// Classification is the vegetarian verdict for a single item.
// Confidence is always within [0,1]; values coming back from an LLM
// are clamped before they reach this struct.
type Classification struct {
	IsVegetarian bool     `json:"is_vegetarian"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	Flags        []string `json:"flags"`
}

// ClassifiedMenuItem pairs an item with its classification.
// Classification is nil only when classification was never attempted;
// consumers must tolerate that.
type ClassifiedMenuItem struct {
	MenuItem
	Classification *Classification `json:"classification,omitempty"`
}

// FlaggedItem explains why one item needs human review.
type FlaggedItem struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// UncertaintyCard summarizes items that need human review.
type UncertaintyCard struct {
	FlaggedItems   []FlaggedItem `json:"flagged_items"`
	RequiresReview bool          `json:"requires_review"`
}

// MenuProcessingResult is the final output of the pipeline.
// VegetarianItems keeps the original parse order.
type MenuProcessingResult struct {
	VegetarianItems []ClassifiedMenuItem `json:"vegetarian_items"`
	TotalSum        int                  `json:"total_sum"`
	UncertaintyCard *UncertaintyCard     `json:"uncertainty_card,omitempty"`
	RequestID       string               `json:"request_id"`
}
