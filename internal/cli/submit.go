package cli

import (
	"github.com/spf13/cobra"

	"github.com/creait/sessionkit/internal/session"
	"github.com/creait/sessionkit/internal/store"
)

func init() {
	submit := &cobra.Command{
		Use:   "submit <session-id>",
		Short: "Record a submission with a GitHub link or file asset",
		Args:  cobra.ExactArgs(1),
		Run:   runSubmit,
	}
	submit.Flags().String("github", "", "GitHub repository URL")
	submit.Flags().String("asset", "", "Asset id of the submitted file")
	submit.Flags().StringP("message", "m", "", "Message for the presenter")
	submit.Flags().String("name", "", "Submitter name")
	submit.Flags().String("email", "", "Submitter email")

	list := &cobra.Command{
		Use:   "submissions [session-id]",
		Short: "List submissions, newest first",
		Args:  cobra.MaximumNArgs(1),
		Run:   runSubmissions,
	}

	RootCmd.AddCommand(submit, list)
}

func runSubmit(cmd *cobra.Command, args []string) {
	github, _ := cmd.Flags().GetString("github")
	assetID, _ := cmd.Flags().GetString("asset")
	msg, _ := cmd.Flags().GetString("message")
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")

	p := store.SubmissionParams{
		SessionID:      args[0],
		SubmitterName:  name,
		SubmitterEmail: email,
		GithubURL:      github,
		FileAssetID:    assetID,
		Message:        msg,
	}
	if err := session.ValidateSubmission(p); err != nil {
		exitErr("validate", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sub, err := s.AddSubmission(cmd.Context(), p)
	if err != nil {
		exitErr("submit", err)
	}
	logger.Info().Str("id", sub.ID).Str("session", sub.SessionID).Msg("submission recorded")

	printOut(cmd, sub)
}

func runSubmissions(cmd *cobra.Command, args []string) {
	sessionID := ""
	if len(args) > 0 {
		sessionID = args[0]
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	subs, err := s.ListSubmissions(cmd.Context(), sessionID)
	if err != nil {
		exitErr("list submissions", err)
	}

	printOut(cmd, subs)
}
