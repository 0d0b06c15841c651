package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textcore/core/log"
	"github.com/msto63/textcore/strx"
	"github.com/msto63/textcore/utf8x"
)

var upperASCIIOnly bool

var upperCmd = &cobra.Command{
	Use:   "upper [text...|-]",
	Short: "Uppercase text (UTF-8 aware)",
	Long: `Uppercases the given text. Multi-byte UTF-8 sequences are folded
through the case table, so Cyrillic, Greek, and accented Latin input
is handled alongside ASCII. With --ascii only ASCII bytes are mapped.

Reads stdin when no text is given or the single argument is "-".`,
	RunE: runUpper,
}

func init() {
	upperCmd.Flags().BoolVar(&upperASCIIOnly, "ascii", false, "map ASCII bytes only")
	rootCmd.AddCommand(upperCmd)
}

func runUpper(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	timer := logger.StartTimer("upper")
	var result string
	if upperASCIIOnly {
		result = strx.NewString(input).Uppercase().String()
	} else {
		result = utf8x.UpperString(input)
	}
	timer.WithField("bytes", len(input)).Stop()

	logger.Debug("uppercased input", log.Int("in_bytes", len(input)), log.Int("out_bytes", len(result)))
	fmt.Println(result)
	return nil
}
