package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	EmbeddingKeyPattern = "sneakerlens:embedding:%s"
	SearchKeyPattern    = "sneakerlens:search:%s"
)

// EmbeddingKey identifies a text embedding by provider, model and input text.
func EmbeddingKey(provider, model, text string) string {
	return fmt.Sprintf(EmbeddingKeyPattern, digest(provider, model, text))
}

// SearchKey identifies a text search by its normalized query, result count and filter.
func SearchKey(query string, topK int, filterKey string) string {
	return fmt.Sprintf(SearchKeyPattern, digest(strings.ToLower(strings.TrimSpace(query)), fmt.Sprint(topK), filterKey))
}

func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
