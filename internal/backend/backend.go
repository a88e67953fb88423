// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package backend implements the external tool invokers that perform the
// actual conversions: ffmpeg for audio and video, magick for images, and
// soffice for office documents. Each invoker builds one command line, runs
// one process, and captures its output in full.
package backend

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Invoker converts inputPath into outputPath by running a single external
// process. Implementations differ only in how the command is constructed.
type Invoker interface {
	Convert(inputPath, outputPath string, verbose bool) error
}

// executor abstracts binary lookup and command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// ToolNotFoundError reports a required external binary missing from PATH.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in PATH: install it and ensure it is available", e.Tool)
}

// RunError reports an external tool that exited non-zero. Stderr is always
// attached; Stdout only when the run was verbose.
type RunError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Stdout   string
}

func (e *RunError) Error() string {
	msg := fmt.Sprintf("%s failed with exit code %d", e.Tool, e.ExitCode)
	if e.Stderr != "" {
		msg += "\nError output:\n" + e.Stderr
	}
	if e.Stdout != "" {
		msg += "\nStandard output:\n" + e.Stdout
	}
	return msg
}

// UnsupportedTargetError reports a target extension outside the known set
// for the invoker's category.
type UnsupportedTargetError struct {
	Kind      string
	Extension string
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("unsupported %s output format: %s", e.Kind, e.Extension)
}

// ArtifactError reports a tool that exited zero without producing the file
// it was expected to produce.
type ArtifactError struct {
	Tool string
	Path string
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s did not produce expected output file: %s", e.Tool, e.Path)
}

// exitCoder matches exec.ExitError and test doubles that carry an exit code.
type exitCoder interface {
	ExitCode() int
}

// run executes the tool with args, capturing stdout and stderr in full.
// When verbose, the command line is printed to w first. A non-zero exit is
// translated into a *RunError.
func run(e executor, w io.Writer, tool string, args []string, verbose bool) error {
	if verbose {
		fmt.Fprintf(w, "Running: %s %s\n", tool, strings.Join(args, " "))
	}

	var stdout, stderr bytes.Buffer
	err := e.Run(tool, args, &stdout, &stderr)
	if err == nil {
		return nil
	}

	code := -1
	var ec exitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}

	runErr := &RunError{
		Tool:     tool,
		ExitCode: code,
		Stderr:   strings.TrimRight(stderr.String(), "\n"),
	}
	if verbose {
		runErr.Stdout = strings.TrimRight(stdout.String(), "\n")
	}
	return runErr
}
