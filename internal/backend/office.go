// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const binSoffice = "soffice"

// officeInvoker runs soffice in headless batch mode. soffice only accepts
// an output directory and names its artifact after the input's base name,
// so the invoker locates that file afterwards and renames it to the path
// the caller actually asked for.
type officeInvoker struct {
	exec executor
	out  io.Writer
}

func newOfficeInvoker(exec executor, out io.Writer) *officeInvoker {
	return &officeInvoker{exec: exec, out: out}
}

// NewOfficeInvoker returns the soffice-backed invoker for document,
// spreadsheet, and presentation conversions.
func NewOfficeInvoker(out io.Writer) Invoker {
	return &officeInvoker{exec: defaultExec, out: out}
}

func (o *officeInvoker) Convert(inputPath, outputPath string, verbose bool) error {
	if _, err := o.exec.LookPath(binSoffice); err != nil {
		return &ToolNotFoundError{Tool: binSoffice}
	}

	// soffice takes the target extension without the dot.
	targetExt := strings.TrimPrefix(filepath.Ext(outputPath), ".")
	outDir := filepath.Dir(outputPath)

	args := []string{"--headless", "--convert-to", targetExt, "--outdir", outDir, inputPath}
	if err := run(o.exec, o.out, binSoffice, args, verbose); err != nil {
		return err
	}

	// The artifact carries the input's base name, not the requested one.
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	produced := filepath.Join(outDir, stem+"."+targetExt)

	if _, err := os.Stat(produced); err != nil {
		return &ArtifactError{Tool: binSoffice, Path: produced}
	}

	if filepath.Clean(produced) != filepath.Clean(outputPath) {
		if verbose {
			fmt.Fprintf(o.out, "Renaming %s to %s\n", produced, outputPath)
		}
		if err := os.Rename(produced, outputPath); err != nil {
			return fmt.Errorf("renaming %s to %s: %w", produced, outputPath, err)
		}
	}
	return nil
}
