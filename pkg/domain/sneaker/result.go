package sneaker

type ConfidenceLevel string

const (
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceVeryLow  ConfidenceLevel = "very_low"
)

func ConfidenceLevelFor(score float64) ConfidenceLevel {
	pct := score * 100
	switch {
	case pct >= 85:
		return ConfidenceVeryHigh
	case pct >= 70:
		return ConfidenceHigh
	case pct >= 50:
		return ConfidenceMedium
	case pct >= 30:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// ConfidencePercentage is score*100 clamped to [0,100].
func ConfidencePercentage(score float64) float64 {
	pct := score * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

type Result struct {
	Rank                 int             `json:"rank"`
	SimilarityScore      float64         `json:"similarity_score"`
	ConfidencePercentage float64         `json:"confidence_percentage"`
	ConfidenceLevel      ConfidenceLevel `json:"confidence_level"`
	ModelName            string          `json:"model_name"`
	Brand                string          `json:"brand"`
	Color                string          `json:"color"`
	Size                 string          `json:"size"`
	Price                float64         `json:"price"`
	Description          string          `json:"description"`
	ImagePath            string          `json:"image_path"`
	OriginalDBID         interface{}     `json:"original_db_id"`
}

func NewResult(rank int, m Match) Result {
	return Result{
		Rank:                 rank,
		SimilarityScore:      m.Score,
		ConfidencePercentage: ConfidencePercentage(m.Score),
		ConfidenceLevel:      ConfidenceLevelFor(m.Score),
		ModelName:            m.ModelName,
		Brand:                m.Brand,
		Color:                m.Color,
		Size:                 m.Size,
		Price:                m.Price,
		Description:          m.Description,
		ImagePath:            m.ImagePath,
		OriginalDBID:         m.OriginalDBID,
	}
}

// NewResults ranks matches in the order given, starting at 1.
func NewResults(matches []Match) []Result {
	out := make([]Result, 0, len(matches))
	for i, m := range matches {
		out = append(out, NewResult(i+1, m))
	}
	return out
}
