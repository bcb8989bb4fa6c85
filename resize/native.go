package resize

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"createblogpost/common"
)

// Native resizes in-process, for hosts without ImageMagick
type Native struct{}

// Resize scales the source down to the variant width, keeping the aspect
// ratio, and writes it as JPEG. Images narrower than the variant are
// re-encoded at their original size.
func (Native) Resize(ctx context.Context, source string, v common.Variant) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > v.Width {
		newH := max(h*v.Width/w, 1)
		dst := image.NewRGBA(image.Rect(0, 0, v.Width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := os.Create(v.Output)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", v.Output, err)
	}

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: v.Quality}); err != nil {
		out.Close()
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", v.Output, err)
	}

	return nil, nil
}
