package vision

import "context"

// Analysis holds the classification extracted from a clothing image
type Analysis struct {
	Category    string `json:"category"`
	Color       string `json:"color"`
	Style       string `json:"style"`
	Description string `json:"description"`
}

// Analyzer classifies a clothing image into category/color/style/description
type Analyzer interface {
	AnalyzeClothing(ctx context.Context, imageBase64 string) (Analysis, error)
}

// StubAnalyzer returns a fixed classification for every image. A vision model
// would replace it behind the same interface; nothing downstream depends on
// how the classification is produced.
type StubAnalyzer struct{}

func NewStubAnalyzer() *StubAnalyzer {
	return &StubAnalyzer{}
}

func (*StubAnalyzer) AnalyzeClothing(_ context.Context, _ string) (Analysis, error) {
	return Analysis{
		Category:    "tops",
		Color:       "blue",
		Style:       "casual",
		Description: "A casual blue shirt perfect for everyday wear",
	}, nil
}
