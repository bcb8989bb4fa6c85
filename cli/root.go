// Package cli defines the create-blogpost command. It only handles flags,
// configuration loading and exit codes; the work is done by package scaffold.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"createblogpost/config"
	"createblogpost/console"
	"createblogpost/resize"
	"createblogpost/scaffold"
)

// Exit codes
const (
	ExitOK    = 0
	ExitFatal = 1
)

const name = "create-blogpost"

type flags struct {
	title      string
	image      string
	configPath string
}

// Execute runs the command with args and returns the process exit code
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	printer := console.New(stdout, stderr)

	cmd := newRootCmd(version, printer)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		message := "Failed to create blogpost"
		if errors.Is(err, scaffold.ErrResizeFailed) {
			message = "Blogpost created, but image resizing failed"
		}
		printer.Error(message, err)
		return ExitFatal
	}

	return ExitOK
}

func newRootCmd(version string, printer *console.Printer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Scaffold a new blog post",
		Long:          `Creates ./_posts/<date>-<slug>.md with front-matter and, given an image, resizes it into header and teaser variants with ImageMagick.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}

			s := scaffold.New(cfg, printer, resize.New(cfg))
			_, err = s.Run(cmd.Context(), scaffold.Options{Title: f.title, Image: f.image})
			return err
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}}\n", name))

	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Title of the blogpost")
	cmd.Flags().StringVarP(&f.image, "image", "i", "", "Source image to resize into header and teaser")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")

	return cmd
}
