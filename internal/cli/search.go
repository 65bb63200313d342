package cli

import (
	"strings"

	"github.com/creait/sessionkit/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search sessions by keyword",
		Long:  "Search session titles, summaries and block text for matching text.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().Bool("published", false, "Only published sessions")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	published, _ := cmd.Flags().GetBool("published")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query:         query,
		PublishedOnly: published,
		Limit:         limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	printOut(cmd, results)
}
