package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/abbrevidx/abbrevidx/internal/index"
	"github.com/abbrevidx/abbrevidx/pkg/ident"
)

// entrySpec is one entry in an entry-set file: a phrase or keyword name,
// its tag bits, and an optional priority for its tag's tier.
type entrySpec struct {
	Name     string   `yaml:"name"`
	Keyword  bool     `yaml:"keyword"`
	TFlags   uint32   `yaml:"tflags"`
	Priority *float64 `yaml:"priority"`

	Deparenthesize bool `yaml:"deparenthesize"`
}

// entrySetFile is the on-disk shape a --file flag points at.
type entrySetFile struct {
	Entries []entrySpec `yaml:"entries"`
}

// buildIndex parses path as an entry-set file and registers every entry
// into a fresh Index. Each entry's value is its own display name — the
// CLI has no richer payload type to carry, so the name doubles as the
// thing a query ultimately returns.
func buildIndex(path string) (*index.Index, entrySetFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, entrySetFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var spec entrySetFile
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, entrySetFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	idx := index.New()
	needsDeparenthesize := false
	// seen tracks entry names case-insensitively so a duplicate definition
	// in the source file is reported with the casing it first appeared
	// under, rather than silently registering two entries for one name.
	seen := ident.NewMap[int]()
	for i, e := range spec.Entries {
		if prior, dup := seen.Get(e.Name); dup {
			return nil, entrySetFile{}, fmt.Errorf("%s: entry %q at position %d duplicates %q at position %d",
				path, e.Name, i, seen.GetOriginalKey(e.Name), prior)
		}
		seen.Set(e.Name, i)

		if e.Keyword {
			idx.AddKeyword(e.Name, e.Name, e.TFlags)
		} else {
			idx.AddPhrase(e.Name, e.Name, e.TFlags)
		}
		if e.Priority != nil {
			idx.SetPriority(e.TFlags, *e.Priority)
		}
		if e.Deparenthesize {
			needsDeparenthesize = true
		}
	}
	if needsDeparenthesize {
		idx.AddDeparenthesized()
	}
	return idx, spec, nil
}

var loadCmd = &cobra.Command{
	Use:   "load --file entries.yaml",
	Short: "Parse an entry-set file and report what was registered",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return fmt.Errorf("--file is required")
		}
		idx, spec, err := buildIndex(path)
		if err != nil {
			return err
		}
		fmt.Printf("loaded %d source entries, %d total after aliasing\n", len(spec.Entries), idx.NEntries())
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			for i := 0; i < idx.NEntries(); i++ {
				e := idx.Entry(index.EntryHandle(i))
				fmt.Printf("  [%d] %q (keyword=%v tflags=%#x)\n", i, e.Name(), e.IsKeyword(), e.TFlags())
			}
		}
		return nil
	},
}

func init() {
	loadCmd.Flags().String("file", "", "path to a YAML entry-set file")
	loadCmd.Flags().Bool("debug", false, "print every registered entry")
	rootCmd.AddCommand(loadCmd)
}
