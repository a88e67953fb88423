// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/anyconv/internal/category"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats grouped by category",
	Long: `Formats prints the supported file extensions for each category. Conversions
are only possible between extensions listed under the same category.`,
	RunE: runFormats,
}

func init() {
	formatsCmd.Flags().String("category", "", "restrict the listing to one category")
	formatsCmd.Flags().String("output", "text", "output encoding: text, json, or yaml")

	rootCmd.AddCommand(formatsCmd)
}

// formatListing is one category's worth of supported extensions.
type formatListing struct {
	Category   category.Category `json:"category" yaml:"category"`
	Extensions []string          `json:"extensions" yaml:"extensions"`
}

func runFormats(cmd *cobra.Command, args []string) error {
	catFlag, _ := cmd.Flags().GetString("category")
	encoding, _ := cmd.Flags().GetString("output")

	cats := category.All()
	if catFlag != "" {
		cats = nil
		for _, c := range category.All() {
			if string(c) == catFlag {
				cats = []category.Category{c}
				break
			}
		}
		if cats == nil {
			return fmt.Errorf("unknown category %q: valid categories are %s",
				catFlag, joinCategories(category.All()))
		}
	}

	listings := make([]formatListing, len(cats))
	for i, c := range cats {
		listings[i] = formatListing{Category: c, Extensions: category.Extensions(c)}
	}

	out := cmd.OutOrStdout()
	switch encoding {
	case "text":
		for _, l := range listings {
			fmt.Fprintf(out, "%s: %s\n", l.Category, strings.Join(l.Extensions, ", "))
		}
	case "json":
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(listings)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unknown output encoding %q: use text, json, or yaml", encoding)
	}
	return nil
}

func joinCategories(cats []category.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
