package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show the ordered images, subsets and slot bindings",
	Long:  `Indexes the asset directory and prints the display order of every image, which subset it belongs to, and how each named slot resolves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lib, err := openLibrary(cfg)
		if err != nil {
			return err
		}
		ix := lib.Current()

		if ix.Len() == 0 {
			fmt.Printf("No images found in %s\n", cfg.AssetDir)
		} else {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tKEY\tSUBSET\tURL")
			for i, a := range ix.Sequence {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, a.Name, a.Key, subsetOf(ix, i), a.URL)
			}
			w.Flush()
		}

		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tIMAGE")
		for _, slot := range ix.SlotNames() {
			name := "(none)"
			if a, ok := ix.Resolve(slot); ok {
				name = a.Name
			}
			fmt.Fprintf(w, "%s\t%s\n", slot, name)
		}
		return w.Flush()
	},
}

// subsetOf names the subsets position i falls into, comma separated.
func subsetOf(ix *assets.Index, i int) string {
	a, _ := ix.Sequence.At(i)
	var in []string
	for _, name := range assets.SubsetNames {
		sub, _ := ix.Subsets.Get(name)
		for _, b := range sub {
			if b.Name == a.Name {
				in = append(in, name)
				break
			}
		}
	}
	if len(in) == 0 {
		return "-"
	}
	return strings.Join(in, ",")
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}
