package types

// DesignSystem is the aggregate recommendation document produced for a
// single query. It is constructed once per generation call and not mutated
// afterwards.
type DesignSystem struct {
	ProjectName string
	Query       string

	Recommendations Recommendations
	Alternatives    Alternatives

	// AntiPatterns are derived from the top product picks: semicolon-split,
	// deduplicated in first-seen order, capped at 5.
	AntiPatterns []string

	// Checklist is derived from the top ux results that carry both a
	// guideline name and a rule.
	Checklist []ChecklistItem
}

// Recommendations holds the highest-scoring pick per category. Single-pick
// categories carry an empty Record when the category had no positive-score
// match.
type Recommendations struct {
	Product        Record
	Style          Record
	ColorPalette   Record
	Typography     Record
	LandingPattern Record
	Charts         []Record // up to 3, descending score
	UXGuidelines   []Record // up to 5, descending score
}

// Alternatives holds the rank-2 and rank-3 results per single-pick category.
// A slice is empty when the category had fewer than two matches.
type Alternatives struct {
	Products        []Record
	Styles          []Record
	Colors          []Record
	Typography      []Record
	LandingPatterns []Record
}

// ChecklistItem is one pre-delivery checklist entry derived from a ux
// guideline record.
type ChecklistItem struct {
	Item     string // guideline name
	Rule     string
	Category string // ux record's category field, or "general"
}
