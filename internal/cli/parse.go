package cli

import (
	"github.com/spf13/cobra"

	"github.com/creait/sessionkit/internal/parser"
	"github.com/creait/sessionkit/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a session document without storing it",
		Long:  "Parse a session document (file argument or stdin) and print the extracted draft.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runParse,
	}

	cmd.Flags().Bool("check", false, "Fail if the draft is missing a title, date, summary or goals")

	RootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) {
	check, _ := cmd.Flags().GetBool("check")

	raw, err := readInput(cmd, args)
	if err != nil {
		exitErr("read input", err)
	}

	parsed := parser.Parse(raw)
	logger.Info().
		Str("title", parsed.Title).
		Str("date", parsed.Date).
		Int("goals", len(parsed.Goals)).
		Int("blocks", len(parsed.Blocks)).
		Msg("parsed")

	printOut(cmd, parsed)

	if check {
		if err := session.Validate(parsed); err != nil {
			exitErr("check", err)
		}
	}
}
