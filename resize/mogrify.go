package resize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"time"

	"createblogpost/common"
)

// waitDelay bounds how long Resize waits for output pipes after the tool is killed
const waitDelay = 2 * time.Second

// Mogrify resizes images by shelling out to ImageMagick's mogrify
type Mogrify struct {
	Tool string
}

// NewMogrify creates a processor that runs tool, resolved on PATH
func NewMogrify(tool string) *Mogrify {
	return &Mogrify{Tool: tool}
}

// Args returns the command line passed to the tool for one variant
func (m *Mogrify) Args(source string, v common.Variant) []string {
	return []string{
		"-resize", strconv.Itoa(v.Width) + "x",
		"-quality", strconv.Itoa(v.Quality),
		"-write", v.Output,
		source,
	}
}

// Resize runs the tool once and returns its standard output. A tool that
// cannot be started, exits non-zero or outlives ctx is reported as an error.
func (m *Mogrify) Resize(ctx context.Context, source string, v common.Variant) ([]byte, error) {
	cmd := exec.CommandContext(ctx, m.Tool, m.Args(source, v)...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.Bytes(), fmt.Errorf("%s %s: %w", m.Tool, v.Name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Printf("%s error: %s", m.Tool, stderr.String())
		return stdout.Bytes(), fmt.Errorf("%s %s exited with status %d: %w", m.Tool, v.Name, exitErr.ExitCode(), err)
	}

	return nil, fmt.Errorf("failed to run %s: %w", m.Tool, err)
}
