// Package resize turns a source image into the header and teaser variants.
package resize

import (
	"createblogpost/common"
	"createblogpost/config"
)

// New returns the processor selected by resize.backend.
// cfg is expected to be validated.
func New(cfg *config.Config) common.ImageProcessor {
	if cfg.Resize.Backend == config.BackendNative {
		return Native{}
	}
	return NewMogrify(cfg.Resize.Tool)
}
