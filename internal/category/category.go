// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package category defines the file format categories and the extension
// table that classifies a path into one of them. Conversions are only
// permitted between formats in the same category, so classification is the
// gatekeeper for the whole pipeline.
package category

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Category is a closed conversion domain. A conversion is legal only when
// the input and output paths classify into the same Category.
type Category string

const (
	Audio        Category = "audio"
	Image        Category = "image"
	Video        Category = "video"
	Spreadsheet  Category = "spreadsheet"
	Presentation Category = "presentation"
	Document     Category = "document"
)

// extensionCategories maps normalized extensions (lowercase, no dot) to
// their category. Keys must be pre-normalized; the table is never mutated
// after init.
var extensionCategories = map[string]Category{
	// audio
	"mp3": Audio,
	"wav": Audio,
	"m4a": Audio,
	// image
	"heic": Image,
	"jpg":  Image,
	"jpeg": Image,
	"gif":  Image,
	"icns": Image,
	"webp": Image,
	"avif": Image,
	// video
	"mov": Video,
	"mp4": Video,
	// spreadsheet
	"csv":  Spreadsheet,
	"ods":  Spreadsheet,
	"xlsx": Spreadsheet,
	"xls":  Spreadsheet,
	"xlsm": Spreadsheet,
	// presentation
	"odp":  Presentation,
	"ppt":  Presentation,
	"pptx": Presentation,
	// document
	"docx": Document,
	"doc":  Document,
	"odt":  Document,
	"txt":  Document,
	"rtf":  Document,
}

// extensionAliases folds alternate spellings into the canonical one.
var extensionAliases = map[string]string{
	"jpeg": "jpg",
}

// UnsupportedFormatError reports an extension that is absent from the
// extension table.
type UnsupportedFormatError struct {
	// Extension is the normalized extension that failed lookup, empty when
	// the path had no extension at all.
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	ext := "(no extension)"
	if e.Extension != "" {
		ext = "." + e.Extension
	}
	return fmt.Sprintf("unsupported file format: %s\nSupported formats: %s",
		ext, strings.Join(SupportedExtensions(), ", "))
}

// NormalizeExtension strips one leading dot, lowercases, and substitutes
// the canonical spelling for known aliases. It is pure and total; feeding
// its output back in is a no-op.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if canonical, ok := extensionAliases[ext]; ok {
		return canonical
	}
	return ext
}

// ExtensionOf extracts the extension from path and normalizes it.
func ExtensionOf(path string) string {
	return NormalizeExtension(filepath.Ext(path))
}

// FromPath classifies path by its normalized extension. It returns an
// *UnsupportedFormatError when the extension is not in the table.
func FromPath(path string) (Category, error) {
	ext := ExtensionOf(path)
	cat, ok := extensionCategories[ext]
	if !ok {
		return "", &UnsupportedFormatError{Extension: ext}
	}
	return cat, nil
}

// SupportedExtensions returns every extension in the table, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionCategories))
	for ext := range extensionCategories {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extensions returns the sorted extensions belonging to cat.
func Extensions(cat Category) []string {
	var exts []string
	for ext, c := range extensionCategories {
		if c == cat {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// All returns every category in a stable order.
func All() []Category {
	return []Category{Audio, Image, Video, Spreadsheet, Presentation, Document}
}
