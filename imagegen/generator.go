package imagegen

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured means no image-generation credential is set
	ErrNotConfigured = errors.New("image generation service not available")
	// ErrNoImage means the model answered without a usable image
	ErrNoImage = errors.New("no image in model response")
)

// Generator defines the interface to the image-generation service
type Generator interface {
	// Generate submits a text prompt and returns the raw bytes of one image
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
