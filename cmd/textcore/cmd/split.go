package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tcerrors "github.com/msto63/textcore/core/errors"
	"github.com/msto63/textcore/core/log"
	"github.com/msto63/textcore/strx"
)

var (
	splitDelim string
	splitChunk int
)

var splitCmd = &cobra.Command{
	Use:   "split [text|-]",
	Short: "Split text on a delimiter or into fixed-size chunks",
	Long: `Splits the text on every occurrence of --delim and prints one
segment per line, including empty segments, so "a,,b" split on ","
yields three lines. With --chunk N the text is instead cut into
fixed-size runs of N bytes, the last one possibly shorter.`,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVar(&splitDelim, "delim", ",", "delimiter to split on")
	splitCmd.Flags().IntVar(&splitChunk, "chunk", 0, "chunk size in bytes, 0 splits on the delimiter")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	view := strx.OfString(input)

	var parts []strx.View
	if splitChunk > 0 {
		parts = view.Chunk(splitChunk)
	} else {
		if splitDelim == "" {
			return tcerrors.InvalidInput(tcerrors.ModuleStrx, "split", splitDelim, "non-empty delimiter")
		}
		parts = view.Split(splitDelim)
	}

	logger.Debug("split input", log.Int("segments", len(parts)))
	for _, part := range parts {
		fmt.Println(part.String())
	}
	return nil
}
