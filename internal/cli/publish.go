package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish or unpublish a session",
		Args:  cobra.ExactArgs(1),
		Run:   runPublish,
	}

	cmd.Flags().Bool("unpublish", false, "Hide the session instead")

	RootCmd.AddCommand(cmd)
}

func runPublish(cmd *cobra.Command, args []string) {
	unpublish, _ := cmd.Flags().GetBool("unpublish")
	id := args[0]

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.SetPublished(cmd.Context(), id, !unpublish); err != nil {
		exitErr("publish", err)
	}
	logger.Info().Str("id", id).Bool("published", !unpublish).Msg("session visibility changed")

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"published":%t}`+"\n", id, !unpublish)
}
