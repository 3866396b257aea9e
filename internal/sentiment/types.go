package sentiment

// Result is the per-review classification produced by the scorer.
type Result struct {
	Sentiment string  `json:"sentiment"` // positive | neutral | negative
	Score     float64 `json:"score"`     // signed polarity
}

// Distribution counts reviews per sentiment label.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Summary is the aggregate over one scored batch.
type Summary struct {
	AverageScore float64      `json:"average_score"`
	TotalReviews int          `json:"total_reviews"`
	Distribution Distribution `json:"sentiment_distribution"`
}

// Batch is the scorer's full output for one invocation. Results are
// order-aligned with the input texts.
type Batch struct {
	Reviews []Result `json:"reviews"`
	Overall Summary  `json:"overall"`
}

// EmptySummary is the defined empty-state response for media items without
// reviews. It is a value, not an error.
func EmptySummary() Summary {
	return Summary{}
}
