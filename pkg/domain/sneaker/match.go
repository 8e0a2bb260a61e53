package sneaker

import (
	"strconv"
	"strings"
)

const Unknown = "Unknown"

// Match is a single index hit with its catalog metadata.
type Match struct {
	ID             string      `json:"id"`
	Score          float64     `json:"score"`
	ModelName      string      `json:"model_name"`
	Brand          string      `json:"brand"`
	Color          string      `json:"color"`
	Size           string      `json:"size"`
	Price          float64     `json:"price"`
	Description    string      `json:"description"`
	ImagePath      string      `json:"image_path"`
	OriginalDBID   interface{} `json:"original_db_id"`
	EmbeddingIndex interface{} `json:"embedding_index"`
}

// MatchFromMetadata builds a Match from raw index metadata, filling defaults for missing keys.
func MatchFromMetadata(id string, score float64, md map[string]interface{}) Match {
	return Match{
		ID:             id,
		Score:          score,
		ModelName:      stringOr(md, "model_name", Unknown),
		Brand:          stringOr(md, "brand", Unknown),
		Color:          stringOr(md, "color", Unknown),
		Size:           stringOr(md, "size", Unknown),
		Price:          floatOr(md, "price", 0),
		Description:    stringOr(md, "description", ""),
		ImagePath:      stringOr(md, "image_path", ""),
		OriginalDBID:   md["original_db_id"],
		EmbeddingIndex: md["embedding_index"],
	}
}

func stringOr(md map[string]interface{}, key, def string) string {
	raw, ok := md[key]
	if !ok || raw == nil {
		return def
	}
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return def
	}
}

func floatOr(md map[string]interface{}, key string, def float64) float64 {
	raw, ok := md[key]
	if !ok || raw == nil {
		return def
	}
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}
