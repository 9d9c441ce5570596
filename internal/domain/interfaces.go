package domain

import "context"

// Generator defines the interface for the service-worker generation service.
// The pipeline sanitizes its configuration down to a GeneratorInput, calls
// Generate exactly once per emission pass, and merges the returned warnings
// into the build.
type Generator interface {
	// Name returns the generator name
	Name() string
	// Generate produces the worker script for the given input
	Generate(ctx context.Context, input *GeneratorInput) (*GeneratorResult, error)
}
