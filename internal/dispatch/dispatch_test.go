// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/anyconv/internal/category"
)

// fakeInvoker records calls and returns a canned error.
type fakeInvoker struct {
	err   error
	calls int
}

func (f *fakeInvoker) Convert(inputPath, outputPath string, verbose bool) error {
	f.calls++
	return f.err
}

// testDispatcher wires fake invokers and returns them for inspection.
func testDispatcher(out io.Writer) (*Dispatcher, map[string]*fakeInvoker) {
	fakes := map[string]*fakeInvoker{
		"audio":  {},
		"video":  {},
		"image":  {},
		"office": {},
	}
	d := &Dispatcher{
		audio:  fakes["audio"],
		video:  fakes["video"],
		image:  fakes["image"],
		office: fakes["office"],
		out:    out,
	}
	return d, fakes
}

// writeInput creates a file in a temp dir and returns its path.
func writeInput(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertInputMissing(t *testing.T) {
	d, fakes := testDispatcher(io.Discard)
	missing := filepath.Join(t.TempDir(), "nope.mp3")

	err := d.Convert(missing, "out.wav", false)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if notFound.Path != missing {
		t.Errorf("path = %q, want %q", notFound.Path, missing)
	}
	for name, f := range fakes {
		if f.calls != 0 {
			t.Errorf("%s invoker should not be called, got %d calls", name, f.calls)
		}
	}
}

func TestConvertUnsupportedSides(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		wantMsg string
		wantExt string
	}{
		{
			name:    "unknown input extension",
			input:   "data.xyz",
			output:  "data.jpg",
			wantMsg: "unsupported input format",
			wantExt: "xyz",
		},
		{
			name:    "unknown output extension",
			input:   "photo.jpg",
			output:  "photo.xyz",
			wantMsg: "unsupported output format",
			wantExt: "xyz",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, fakes := testDispatcher(io.Discard)
			input := writeInput(t, tt.input)

			err := d.Convert(input, tt.output, false)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should qualify the failing side, got: %v", err)
			}
			var unsupported *category.UnsupportedFormatError
			if !errors.As(err, &unsupported) {
				t.Fatalf("expected wrapped *UnsupportedFormatError, got: %v", err)
			}
			if unsupported.Extension != tt.wantExt {
				t.Errorf("extension = %q, want %q", unsupported.Extension, tt.wantExt)
			}
			for name, f := range fakes {
				if f.calls != 0 {
					t.Errorf("%s invoker should not be called", name)
				}
			}
		})
	}
}

func TestConvertCategoryMismatch(t *testing.T) {
	d, fakes := testDispatcher(io.Discard)
	input := writeInput(t, "song.mp3")

	err := d.Convert(input, "photo.jpg", false)
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T: %v", err, err)
	}
	if mismatch.Input != category.Audio || mismatch.Output != category.Image {
		t.Errorf("mismatch = %s/%s, want audio/image", mismatch.Input, mismatch.Output)
	}
	if !strings.Contains(err.Error(), "audio") || !strings.Contains(err.Error(), "image") {
		t.Errorf("error should name both categories, got: %v", err)
	}
	for name, f := range fakes {
		if f.calls != 0 {
			t.Errorf("%s invoker should not be called on mismatch", name)
		}
	}
}

func TestConvertRouting(t *testing.T) {
	tests := []struct {
		input  string
		output string
		want   string
	}{
		{"song.m4a", "song.mp3", "audio"},
		{"clip.mov", "clip.mp4", "video"},
		{"photo.heic", "photo.jpg", "image"},
		{"report.docx", "report.odt", "office"},
		{"data.csv", "data.xlsx", "office"},
		{"deck.ppt", "deck.odp", "office"},
	}
	for _, tt := range tests {
		t.Run(tt.input+"_to_"+tt.output, func(t *testing.T) {
			d, fakes := testDispatcher(io.Discard)
			input := writeInput(t, tt.input)

			if err := d.Convert(input, tt.output, false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for name, f := range fakes {
				want := 0
				if name == tt.want {
					want = 1
				}
				if f.calls != want {
					t.Errorf("%s invoker calls = %d, want %d", name, f.calls, want)
				}
			}
		})
	}
}

func TestConvertPropagatesInvokerError(t *testing.T) {
	d, fakes := testDispatcher(io.Discard)
	sentinel := errors.New("encoder exploded")
	fakes["audio"].err = sentinel

	input := writeInput(t, "song.mp3")
	err := d.Convert(input, "song.wav", false)
	if !errors.Is(err, sentinel) {
		t.Errorf("invoker error should propagate unchanged, got: %v", err)
	}
}

func TestConvertVerboseAnnouncesConversion(t *testing.T) {
	var out bytes.Buffer
	d, _ := testDispatcher(&out)
	input := writeInput(t, "song.m4a")

	if err := d.Convert(input, "song.mp3", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Converting audio: song.m4a -> song.mp3") {
		t.Errorf("verbose output = %q", got)
	}
}
