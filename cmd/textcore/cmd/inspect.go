package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textcore/scratch"
	"github.com/msto63/textcore/strx"
	"github.com/msto63/textcore/utf8x"
)

var inspectDelim string

var inspectCmd = &cobra.Command{
	Use:   "inspect [text|-]",
	Short: "Show length, capacity, and split statistics",
	Long: `Prints what the substrate sees for a piece of text: byte and rune
counts, the FNV-1a hash, the buffer capacity after loading it, and
segment statistics for the --delim delimiter. Diagnostic lines are
built through the scratch slot pool.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectDelim, "delim", ",", "delimiter for the split statistics")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	buf := strx.NewString(input)
	view := buf.View()
	pool := scratch.NewPool()

	runes, invalid := countRunes(view.Bytes())

	fmt.Println(pool.Format("bytes:     %d", view.Len()).String())
	fmt.Println(pool.Format("runes:     %d", runes).String())
	if invalid > 0 {
		fmt.Println(pool.Format("invalid:   %d byte(s) not valid UTF-8", invalid).String())
	}
	fmt.Println(pool.Format("hash:      %08x", view.Hash()).String())
	fmt.Println(pool.Format("capacity:  %d", buf.Capacity()).String())

	if inspectDelim != "" {
		parts := view.Split(inspectDelim)
		longest := 0
		empty := 0
		for _, part := range parts {
			if part.Len() > longest {
				longest = part.Len()
			}
			if part.IsEmpty() {
				empty++
			}
		}
		fmt.Println(pool.Format("segments:  %d on %q (%d empty, longest %d)",
			len(parts), inspectDelim, empty, longest).String())
	}
	return nil
}

// countRunes walks the bytes with the substrate codec, counting decoded
// codepoints and the bytes skipped over malformed sequences.
func countRunes(b []byte) (runes, invalid int) {
	for i := 0; i < len(b); {
		_, size := utf8x.DecodeRune(b[i:])
		if size < 0 {
			invalid++
			i++
			continue
		}
		runes++
		i += size
	}
	return runes, invalid
}
