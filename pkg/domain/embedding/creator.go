package embedding

import (
	"context"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=embedding_creator_mock.go --case=underscore --with-expecter

// Creator turns text or image bytes into a vector in the shared multimodal space.
type Creator interface {
	EmbedText(ctx context.Context, text string) (*Embedding, error)
	EmbedImage(ctx context.Context, image []byte) (*Embedding, error)
	HealthCheck(ctx context.Context) bool
	Info() Info
}

type Info struct {
	Service       string `json:"service"`
	Model         string `json:"model"`
	Dimension     int    `json:"dimension"`
	APIConfigured bool   `json:"api_configured"`
	Provider      string `json:"provider"`
	BaseURL       string `json:"base_url,omitempty"`
	Note          string `json:"note,omitempty"`
}
