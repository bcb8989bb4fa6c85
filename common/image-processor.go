package common

import (
	"context"

	"createblogpost/config"
)

// Variant is one resized copy of the source image
type Variant struct {
	Name    string
	Width   int
	Quality int
	Output  string
}

// ImageProcessor produces a single variant from a source image.
// Implementations must honour ctx cancellation; the returned bytes are any
// output the processor captured and may be empty on success.
type ImageProcessor interface {
	Resize(ctx context.Context, source string, variant Variant) ([]byte, error)
}

// Variants returns the header and teaser variants for the post, in that order
func (p *Post) Variants(cfg config.ResizeConfig) []Variant {
	return []Variant{
		{Name: "header", Width: cfg.Header.Width, Quality: cfg.Header.Quality, Output: p.HeaderImage},
		{Name: "teaser", Width: cfg.Teaser.Width, Quality: cfg.Teaser.Quality, Output: p.TeaserImage},
	}
}
