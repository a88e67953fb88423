// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch routes a conversion request to the backend invoker for
// its category. It enforces the one domain invariant: input and output must
// classify into the same category, or no conversion is attempted.
package dispatch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/anyconv/internal/backend"
	"github.com/pdiddy/anyconv/internal/category"
)

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// MismatchError reports an input and output in different categories.
type MismatchError struct {
	Input  category.Category
	Output category.Category
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot convert between different categories\n"+
		"input category: %s\noutput category: %s\n"+
		"only conversions within the same category are supported",
		e.Input, e.Output)
}

// Dispatcher classifies both sides of a request and hands it to exactly one
// invoker. Invokers are injected at construction so tests can verify that
// no process execution is attempted on invalid requests.
type Dispatcher struct {
	audio  backend.Invoker
	video  backend.Invoker
	image  backend.Invoker
	office backend.Invoker
	out    io.Writer
}

// New returns a Dispatcher wired to the real external tool invokers.
// Verbose progress lines are written to out.
func New(out io.Writer) *Dispatcher {
	return &Dispatcher{
		audio:  backend.NewAudioInvoker(out),
		video:  backend.NewVideoInvoker(out),
		image:  backend.NewImageInvoker(out),
		office: backend.NewOfficeInvoker(out),
		out:    out,
	}
}

// Convert converts inputPath into outputPath within a single category.
// Invoker failures propagate unchanged.
func (d *Dispatcher) Convert(inputPath, outputPath string, verbose bool) error {
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: inputPath}
		}
		return fmt.Errorf("checking input %s: %w", inputPath, err)
	}

	inCat, err := category.FromPath(inputPath)
	if err != nil {
		return fmt.Errorf("unsupported input format: %w", err)
	}
	outCat, err := category.FromPath(outputPath)
	if err != nil {
		return fmt.Errorf("unsupported output format: %w", err)
	}

	if inCat != outCat {
		return &MismatchError{Input: inCat, Output: outCat}
	}

	if verbose {
		fmt.Fprintf(d.out, "Converting %s: %s -> %s\n",
			inCat, filepath.Base(inputPath), filepath.Base(outputPath))
	}

	switch inCat {
	case category.Audio:
		return d.audio.Convert(inputPath, outputPath, verbose)
	case category.Video:
		return d.video.Convert(inputPath, outputPath, verbose)
	case category.Image:
		return d.image.Convert(inputPath, outputPath, verbose)
	case category.Document, category.Spreadsheet, category.Presentation:
		return d.office.Convert(inputPath, outputPath, verbose)
	}
	return fmt.Errorf("no converter available for category: %s", inCat)
}
