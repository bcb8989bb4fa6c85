// Package scaffold creates a new blog post: the markdown file with its
// front-matter, and optionally the header and teaser images.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"createblogpost/common"
	"createblogpost/config"
	"createblogpost/console"
)

// ErrResizeFailed is returned when the post was written but at least one
// image variant could not be produced.
var ErrResizeFailed = errors.New("image resizing failed")

// Options are the user inputs of a run
type Options struct {
	Title string
	// Image is the source image; blank means no image
	Image string
}

// Scaffolder runs the post creation steps in order
type Scaffolder struct {
	cfg       *config.Config
	printer   *console.Printer
	processor common.ImageProcessor
	now       func() time.Time
}

// New creates a scaffolder using the wall clock
func New(cfg *config.Config, printer *console.Printer, processor common.ImageProcessor) *Scaffolder {
	return &Scaffolder{
		cfg:       cfg,
		printer:   printer,
		processor: processor,
		now:       time.Now,
	}
}

// SetClock replaces the clock used to date the post
func (s *Scaffolder) SetClock(now func() time.Time) {
	s.now = now
}

// Run writes the post and resizes the image if one was given.
// A failed write stops the run. Failed resizes are reported as they happen
// and the run finishes before returning ErrResizeFailed; the post stays on disk.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*common.Post, error) {
	s.printer.Info("🖋🖋🖋 create-blogpost ✒️✒️✒️", "")
	s.printer.Info("Welcome to create-blogpost", "👋")
	s.printer.Info("Creating your blogpost...", "")

	post := common.NewPost(opts.Title, s.now(), s.cfg)

	if err := post.Write(); err != nil {
		return nil, err
	}

	failed := 0
	if strings.TrimSpace(opts.Image) != "" {
		s.printer.Info("Resizing your image...", "")
		for _, variant := range post.Variants(s.cfg.Resize) {
			if err := s.resize(ctx, opts.Image, variant); err != nil {
				s.printer.Warn(fmt.Sprintf("Could not create %s image %s: %v", variant.Name, variant.Output, err))
				failed++
			}
		}
	} else {
		s.printer.Warn("No image provided, skipping resizing.")
	}

	s.printer.Info("Blogpost title: "+post.Title, "")
	s.printer.Info("Blogpost id: "+post.Slug, "")
	s.printer.Info("Blogpost file: "+post.FilePath, "")
	s.printer.Info("Header file: "+post.HeaderImage, "")
	s.printer.Info("Teaser file: "+post.TeaserImage, "")

	if failed > 0 {
		return post, fmt.Errorf("%w: %d of %d images not created", ErrResizeFailed, failed, len(post.Variants(s.cfg.Resize)))
	}

	s.printer.Success("Blogpost created successfully!")
	return post, nil
}

// resize runs one variant under the configured timeout. Output is discarded.
func (s *Scaffolder) resize(ctx context.Context, source string, variant common.Variant) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Resize.Timeout)
	defer cancel()

	_, err := s.processor.Resize(ctx, source, variant)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timed out after %s: %w", s.cfg.Resize.Timeout, err)
	}
	return err
}
