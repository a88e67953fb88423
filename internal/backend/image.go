// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import "io"

const binMagick = "magick"

// imageInvoker runs magick with the bare two-argument form. ImageMagick
// infers both formats from the file extensions, so no flags are needed.
type imageInvoker struct {
	exec executor
	out  io.Writer
}

func newImageInvoker(exec executor, out io.Writer) *imageInvoker {
	return &imageInvoker{exec: exec, out: out}
}

// NewImageInvoker returns the magick-backed invoker for image conversions.
func NewImageInvoker(out io.Writer) Invoker {
	return newImageInvoker(defaultExec, out)
}

func (i *imageInvoker) Convert(inputPath, outputPath string, verbose bool) error {
	if _, err := i.exec.LookPath(binMagick); err != nil {
		return &ToolNotFoundError{Tool: binMagick}
	}
	return run(i.exec, i.out, binMagick, []string{inputPath, outputPath}, verbose)
}
