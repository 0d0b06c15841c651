package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textcore/strx"
)

var hashCmd = &cobra.Command{
	Use:   "hash [text...|-]",
	Short: "FNV-1a 32-bit hash of each argument",
	Long: `Prints the 32-bit FNV-1a hash of every argument, one per line, as
hexadecimal followed by the input. Reads stdin when no arguments are
given.`,
	RunE: runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		args = []string{input}
	}

	for _, arg := range args {
		fmt.Printf("%08x  %s\n", strx.OfString(arg).Hash(), arg)
	}
	return nil
}
