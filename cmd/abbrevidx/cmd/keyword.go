package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abbrevidx/abbrevidx/internal/index"
)

var keywordCmd = &cobra.Command{
	Use:   "keyword --file entries.yaml NAME",
	Short: "Synthesize a short unambiguous keyword for a named entry",
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

		// Registering an entry can append a strict-camel-split alias right
		// after it, and deparenthesized aliases are appended after all
		// entries, so the entry's position
		// in the source file and its handle in idx can diverge. Resolve by
		// name instead of by index.
		target := index.EntryHandle(-1)
		for i := 0; i < idx.NEntries(); i++ {
			if strings.EqualFold(idx.Entry(index.EntryHandle(i)).Name(), args[0]) {
				target = index.EntryHandle(i)
				break
			}
		}
		if target < 0 {
			return fmt.Errorf("no entry named %q in %s", args[0], path)
		}

		shapeFlag, _ := cmd.Flags().GetString("shape")
		ensure, _ := cmd.Flags().GetBool("ensure")
		tflags, _ := cmd.Flags().GetUint32("tflags")

		var shape index.KeywordClass
		switch strings.ToLower(shapeFlag) {
		case "dash":
			shape = index.Dash
		case "underscore":
			shape = index.Underscore
		default:
			shape = index.Camel
		}

		if ensure {
			fmt.Println(idx.EnsureEntryKeyword(target, shape, tflags))
			return nil
		}
		kw, ok := idx.FindEntryKeyword(target, shape, tflags)
		if !ok {
			fmt.Println("no unique keyword found; pass --ensure to force one")
			return nil
		}
		fmt.Println(kw)
		return nil
	},
}

func init() {
	keywordCmd.Flags().String("file", "", "path to a YAML entry-set file")
	keywordCmd.Flags().String("shape", "camel", "keyword shape: camel, dash, or underscore")
	keywordCmd.Flags().Bool("ensure", false, "force a unique keyword, installing a .N alias if needed")
	keywordCmd.Flags().Uint32("tflags", 0, "tag mask the synthesized keyword must resolve under")
	rootCmd.AddCommand(keywordCmd)
}
