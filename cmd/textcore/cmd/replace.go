package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tcerrors "github.com/msto63/textcore/core/errors"
	"github.com/msto63/textcore/core/log"
	"github.com/msto63/textcore/strx"
)

var (
	replaceOld string
	replaceNew string
)

var replaceCmd = &cobra.Command{
	Use:   "replace --old A --new B [text|-]",
	Short: "Replace every occurrence of a pattern",
	Long: `Replaces every occurrence of --old with --new and prints the result.
The replacement count goes to the log at debug level. Replacement is
safe even when the new text contains the old pattern; scanning resumes
after the inserted text.`,
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().StringVar(&replaceOld, "old", "", "pattern to replace")
	replaceCmd.Flags().StringVar(&replaceNew, "new", "", "replacement text")
	_ = replaceCmd.MarkFlagRequired("old")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	if replaceOld == "" {
		return tcerrors.InvalidInput(tcerrors.ModuleStrx, "replace", replaceOld, "non-empty pattern")
	}
	if replaceNew == "" {
		return tcerrors.InvalidInput(tcerrors.ModuleStrx, "replace", replaceNew, "non-empty replacement")
	}

	buf := strx.NewString(input)
	count := buf.Replace(replaceOld, replaceNew)

	logger.Debug("replaced pattern",
		log.String("old", replaceOld),
		log.String("new", replaceNew),
		log.Int("count", count))
	fmt.Println(buf.String())
	return nil
}
