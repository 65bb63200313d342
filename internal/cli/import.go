package cli

import (
	"github.com/spf13/cobra"

	"github.com/creait/sessionkit/internal/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Parse a session document and store it",
		Long: "Parse a session document (file argument or stdin), validate it, prefix the title " +
			"with its day label and store it with its blocks.",
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}

	cmd.Flags().Int("day", 0, "Day number used in the title label (required)")
	cmd.Flags().String("date", "", "Override the parsed date (YYYY-MM-DD)")
	cmd.Flags().Bool("publish", false, "Publish the session immediately")
	cmd.Flags().String("location", "", "Session location")
	cmd.Flags().String("presenter", "", "Presenter name")
	cmd.Flags().Bool("dry-run", false, "Print the create request without storing it")

	cmd.MarkFlagRequired("day")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	day, _ := cmd.Flags().GetInt("day")
	date, _ := cmd.Flags().GetString("date")
	publish, _ := cmd.Flags().GetBool("publish")
	location, _ := cmd.Flags().GetString("location")
	presenter, _ := cmd.Flags().GetString("presenter")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	raw, err := readInput(cmd, args)
	if err != nil {
		exitErr("read input", err)
	}

	opts := session.ImportOptions{
		Day:       day,
		Date:      date,
		Published: publish,
		Location:  location,
		Presenter: presenter,
	}

	if dryRun {
		im := session.NewImporter(nil, logger, cfg.TitleFormat)
		_, params, err := im.Prepare(raw, opts)
		if err != nil {
			exitErr("import", err)
		}
		printOut(cmd, params)
		return
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sess, err := session.NewImporter(s, logger, cfg.TitleFormat).Import(cmd.Context(), raw, opts)
	if err != nil {
		exitErr("import", err)
	}

	printOut(cmd, sess)
}
