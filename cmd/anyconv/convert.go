// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/anyconv/internal/backend"
	"github.com/pdiddy/anyconv/internal/category"
	"github.com/pdiddy/anyconv/internal/dispatch"
	"github.com/pdiddy/anyconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a file from one format to another",
	Long: `Convert a file from one format to another within the same category.

Examples:
  # Convert a HEIC image to JPG
  anyconv convert photo.heic photo.jpg

  # Convert M4A audio to MP3
  anyconv convert audio.m4a audio.mp3

  # Convert a DOCX document to ODT
  anyconv convert document.docx document.odt --verbose

  # Overwrite an existing output file
  anyconv convert input.mp4 output.mov --force`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolP("force", "f", false, "overwrite the output file if it already exists")
	convertCmd.Flags().BoolP("verbose", "v", false, "print detailed information about the conversion")

	rootCmd.AddCommand(convertCmd)
}

// convertConfig merges config-file defaults with explicit flags; flags win.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	var fileCfg types.Config
	_ = viper.Unmarshal(&fileCfg)
	cfg := fileCfg.Convert

	if cmd.Flags().Changed("force") {
		cfg.Force, _ = cmd.Flags().GetBool("force")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	inputPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving input path %s: %w", args[0], err)
	}
	outputPath, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolving output path %s: %w", args[1], err)
	}

	if _, err := os.Stat(outputPath); err == nil && !cfg.Force {
		return fmt.Errorf("output file already exists: %s\nUse --force to overwrite it", outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	d := dispatch.New(cmd.OutOrStdout())
	if err := d.Convert(inputPath, outputPath, cfg.Verbose); err != nil {
		if !knownFailure(err) {
			if cfg.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s", debug.Stack())
			}
			return fmt.Errorf("unexpected error: %w", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Success: converted %s -> %s\n",
		filepath.Base(inputPath), filepath.Base(outputPath))
	return nil
}

// knownFailure reports whether err is one of the handled failure kinds:
// missing input, unsupported format, category mismatch, missing tool, or a
// failed conversion. Anything else is surfaced as unexpected.
func knownFailure(err error) bool {
	var (
		notFound    *dispatch.NotFoundError
		unsupported *category.UnsupportedFormatError
		mismatch    *dispatch.MismatchError
		noTool      *backend.ToolNotFoundError
		badTarget   *backend.UnsupportedTargetError
		runErr      *backend.RunError
		artifact    *backend.ArtifactError
	)
	return errors.As(err, &notFound) ||
		errors.As(err, &unsupported) ||
		errors.As(err, &mismatch) ||
		errors.As(err, &noTool) ||
		errors.As(err, &badTarget) ||
		errors.As(err, &runErr) ||
		errors.As(err, &artifact)
}
