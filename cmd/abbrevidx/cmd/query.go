package cmd

import (
	"fmt"
	"sort"

	"github.com/alecthomas/repr"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/abbrevidx/abbrevidx/internal/index"
)

var queryCmd = &cobra.Command{
	Use:   "query --file entries.yaml PATTERN",
	Short: "Run a pattern against a loaded entry set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return fmt.Errorf("--file is required")
		}
		idx, _, err := buildIndex(path)
		if err != nil {
			return err
		}

		tflags, _ := cmd.Flags().GetUint32("tflags")
		pedantic, _ := cmd.Flags().GetBool("pedantic")
		noLegacy, _ := cmd.Flags().GetBool("no-legacy-check")
		idx.EnableLegacyScorer = !noLegacy

		var values []any
		if pedantic {
			values = idx.FindP(args[0], tflags)
		} else {
			values = idx.FindAll(args[0], tflags)
		}

		results := make([]string, len(values))
		for i, v := range values {
			results[i] = fmt.Sprint(v)
		}
		sort.Slice(results, func(i, j int) bool { return natural.Less(results[i], results[j]) })

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			out := "{}"
			var jsonErr error
			out, jsonErr = sjson.Set(out, "pattern", args[0])
			if jsonErr != nil {
				return jsonErr
			}
			out, jsonErr = sjson.Set(out, "matches", results)
			if jsonErr != nil {
				return jsonErr
			}
			fmt.Println(out)
			return nil
		}

		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			handles := idx.FindEntries(args[0], tflags)
			entries := make([]*index.Entry, len(handles))
			for i, h := range handles {
				entries[i] = idx.Entry(h)
			}
			repr.Println(entries)
			return nil
		}

		if len(results) == 0 {
			fmt.Println("no match")
			return nil
		}
		for _, r := range results {
			fmt.Println(r)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().String("file", "", "path to a YAML entry-set file")
	queryCmd.Flags().Uint32("tflags", 0, "tag mask to intersect results against")
	queryCmd.Flags().Bool("pedantic", false, "use findp semantics (suppress ambiguous plain-text matches)")
	queryCmd.Flags().Bool("json", false, "print results as JSON")
	queryCmd.Flags().Bool("debug", false, "pretty-print the matched entries instead of their values")
	queryCmd.Flags().Bool("no-legacy-check", false, "skip the legacy scorer cross-check")
	rootCmd.AddCommand(queryCmd)
}
