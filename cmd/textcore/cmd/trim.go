package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textcore/core/log"
	"github.com/msto63/textcore/strx"
)

var (
	trimSet   string
	trimLeft  bool
	trimRight bool
)

var trimCmd = &cobra.Command{
	Use:   "trim [text...|-]",
	Short: "Strip leading and trailing characters",
	Long: `Removes leading and trailing characters from the text. The default
set is whitespace (space, tab, newline, carriage return); --set
selects a custom character set. --left and --right restrict the trim
to one side.`,
	RunE: runTrim,
}

func init() {
	trimCmd.Flags().StringVar(&trimSet, "set", "", "characters to strip (default: whitespace)")
	trimCmd.Flags().BoolVar(&trimLeft, "left", false, "trim the left side only")
	trimCmd.Flags().BoolVar(&trimRight, "right", false, "trim the right side only")
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	buf := strx.NewString(input)
	switch {
	case trimLeft && !trimRight:
		if trimSet != "" {
			buf.TrimLeftSet(trimSet)
		} else {
			buf.TrimLeft()
		}
	case trimRight && !trimLeft:
		if trimSet != "" {
			buf.TrimRightSet(trimSet)
		} else {
			buf.TrimRight()
		}
	default:
		if trimSet != "" {
			buf.TrimSet(trimSet)
		} else {
			buf.Trim()
		}
	}

	logger.Debug("trimmed input", log.Int("removed", len(input)-buf.Len()))
	fmt.Println(buf.String())
	return nil
}
