package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sessions with their blocks",
		Long:  "Export every session with its blocks. The output can be loaded again with restore.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sessions, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	printOut(cmd, sessions)
}
