package cli

import (
	"fmt"

	"github.com/creait/sessionkit/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions by date",
		Run:   runList,
	}

	cmd.Flags().Bool("published", false, "Only published sessions")
	cmd.Flags().IntP("limit", "l", 50, "Max results")
	cmd.Flags().Bool("ids-only", false, "Only output id, date and title")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	published, _ := cmd.Flags().GetBool("published")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessions, err := s.List(cmd.Context(), store.ListParams{
		PublishedOnly: published,
		Limit:         limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if idsOnly {
		for _, sess := range sessions {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", sess.ID, sess.Date, sess.Title)
		}
		return
	}

	printOut(cmd, sessions)
}
