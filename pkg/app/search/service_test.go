package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	embeddingmocks "github.com/NeuralTrust/SneakerLens/pkg/domain/embedding/mocks"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/vector/mocks"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchText_ShapesResults(t *testing.T) {
	creator := embeddingmocks.NewCreator(t)
	index := mocks.NewIndex(t)
	brand := "Nike"
	filter := sneaker.Filter{Brand: &brand}

	creator.EXPECT().EmbedText(mock.Anything, "air max").Return(&embedding.Embedding{Value: vec}, nil).Once()
	index.EXPECT().Query(mock.Anything, vec, 6, filter).Return([]sneaker.Match{
		match("Air Max 90", 0.91),
		match("Air Max 1", 0.62),
	}, nil).Once()

	svc := NewService(creator, NewUniqueModelSearcher(index, DefaultSearcherConfig(), newTestLogger()), nil, 0, newTestLogger())
	out, err := svc.SearchText(context.Background(), TextQuery{Query: "  air max ", TopK: 2, Filter: filter})

	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.Equal(t, 1, out.Results[0].Rank)
	assert.Equal(t, sneaker.ConfidenceVeryHigh, out.Results[0].ConfidenceLevel)
	assert.InDelta(t, 91.0, out.Results[0].ConfidencePercentage, 1e-9)
	assert.Equal(t, 2, out.Results[1].Rank)
	assert.Equal(t, sneaker.ConfidenceMedium, out.Results[1].ConfidenceLevel)
	assert.Equal(t, map[string]interface{}{"brand": "Nike"}, out.FiltersApplied)
}

func TestSearchText_UsesResultCache(t *testing.T) {
	creator := embeddingmocks.NewCreator(t)
	index := mocks.NewIndex(t)
	creator.EXPECT().EmbedText(mock.Anything, "samba").Return(&embedding.Embedding{Value: vec}, nil).Once()
	index.EXPECT().Query(mock.Anything, vec, 3, sneaker.Filter{}).Return([]sneaker.Match{match("Samba OG", 0.8)}, nil).Once()

	svc := NewService(creator, NewUniqueModelSearcher(index, DefaultSearcherConfig(), newTestLogger()),
		cache.NewLocalClient(newTestLogger()), time.Minute, newTestLogger())

	first, err := svc.SearchText(context.Background(), TextQuery{Query: "samba", TopK: 1})
	require.NoError(t, err)
	second, err := svc.SearchText(context.Background(), TextQuery{Query: "Samba", TopK: 1})
	require.NoError(t, err)

	assert.Equal(t, first.Results[0].ModelName, second.Results[0].ModelName)
}

func TestSearchText_EmbeddingFailure(t *testing.T) {
	creator := embeddingmocks.NewCreator(t)
	index := mocks.NewIndex(t)
	creator.EXPECT().EmbedText(mock.Anything, "x").Return(nil, embedding.ErrMissingAPIKey).Once()

	svc := NewService(creator, NewUniqueModelSearcher(index, DefaultSearcherConfig(), newTestLogger()), nil, 0, newTestLogger())
	_, err := svc.SearchText(context.Background(), TextQuery{Query: "x", TopK: 1})

	assert.ErrorIs(t, err, embedding.ErrMissingAPIKey)
}

func TestClassifyImage(t *testing.T) {
	creator := embeddingmocks.NewCreator(t)
	index := mocks.NewIndex(t)
	img := []byte{0xff, 0xd8}
	creator.EXPECT().EmbedImage(mock.Anything, img).Return(&embedding.Embedding{Value: vec}, nil).Once()
	index.EXPECT().Query(mock.Anything, vec, 3, sneaker.Filter{}).Return([]sneaker.Match{match("Forum Low", 0.2)}, nil).Once()

	svc := NewService(creator, NewUniqueModelSearcher(index, DefaultSearcherConfig(), newTestLogger()), nil, 0, newTestLogger())
	out, err := svc.ClassifyImage(context.Background(), ImageQuery{Image: img, TopK: 1})

	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, sneaker.ConfidenceVeryLow, out.Results[0].ConfidenceLevel)
	assert.Empty(t, out.FiltersApplied)
}

func TestClassifyImage_IndexFailure(t *testing.T) {
	creator := embeddingmocks.NewCreator(t)
	index := mocks.NewIndex(t)
	creator.EXPECT().EmbedImage(mock.Anything, mock.Anything).Return(&embedding.Embedding{Value: vec}, nil).Once()
	index.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	svc := NewService(creator, NewUniqueModelSearcher(index, DefaultSearcherConfig(), newTestLogger()), nil, 0, newTestLogger())
	_, err := svc.ClassifyImage(context.Background(), ImageQuery{Image: []byte{1}, TopK: 1})

	assert.ErrorContains(t, err, "failed to search index: boom")
}
