// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backend

import (
	"io"

	"github.com/pdiddy/anyconv/internal/category"
)

const binFFmpeg = "ffmpeg"

// audioProfiles maps target extensions to ffmpeg codec flags.
var audioProfiles = map[string][]string{
	// high quality VBR MP3
	"mp3": {"-codec:a", "libmp3lame", "-q:a", "2"},
	// uncompressed PCM, 16-bit
	"wav": {"-codec:a", "pcm_s16le"},
	// AAC at 192 kbps
	"m4a": {"-codec:a", "aac", "-b:a", "192k"},
}

// videoProfiles maps target extensions to ffmpeg codec flags.
var videoProfiles = map[string][]string{
	// H.264 + AAC, faststart for web streaming
	"mp4": {"-codec:v", "libx264", "-codec:a", "aac", "-movflags", "+faststart"},
	// H.264 + AAC for MOV
	"mov": {"-codec:v", "libx264", "-codec:a", "aac"},
}

// mediaInvoker runs ffmpeg. Audio and video share the same logic; they
// differ only in the codec profile table consulted for the target extension.
type mediaInvoker struct {
	kind     string // "audio" or "video", for error messages
	profiles map[string][]string
	exec     executor
	out      io.Writer
}

func newAudioInvoker(exec executor, out io.Writer) *mediaInvoker {
	return &mediaInvoker{
		kind:     "audio",
		profiles: audioProfiles,
		exec:     exec,
		out:      out,
	}
}

func newVideoInvoker(exec executor, out io.Writer) *mediaInvoker {
	return &mediaInvoker{
		kind:     "video",
		profiles: videoProfiles,
		exec:     exec,
		out:      out,
	}
}

// NewAudioInvoker returns the ffmpeg-backed invoker for audio conversions.
// Verbose output is written to out.
func NewAudioInvoker(out io.Writer) Invoker {
	return newAudioInvoker(defaultExec, out)
}

// NewVideoInvoker returns the ffmpeg-backed invoker for video conversions.
func NewVideoInvoker(out io.Writer) Invoker {
	return newVideoInvoker(defaultExec, out)
}

func (m *mediaInvoker) Convert(inputPath, outputPath string, verbose bool) error {
	if _, err := m.exec.LookPath(binFFmpeg); err != nil {
		return &ToolNotFoundError{Tool: binFFmpeg}
	}

	ext := category.ExtensionOf(outputPath)
	flags, ok := m.profiles[ext]
	if !ok {
		return &UnsupportedTargetError{Kind: m.kind, Extension: ext}
	}

	// -y overwrites an existing output; the caller checks force intent
	// before the conversion is attempted.
	args := []string{"-i", inputPath, "-y"}
	args = append(args, flags...)
	args = append(args, outputPath)

	return run(m.exec, m.out, binFFmpeg, args, verbose)
}
