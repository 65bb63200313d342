package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/creait/sessionkit/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "restore [file]",
		Short: "Load sessions from an export",
		Long:  "Load sessions from JSON or YAML produced by export (file argument or stdin). Sessions get new ids.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runRestore,
	}

	RootCmd.AddCommand(cmd)
}

func runRestore(cmd *cobra.Command, args []string) {
	// Exports are not capped by max_input_bytes.
	data, err := readInputLimit(cmd, args, 0)
	if err != nil {
		exitErr("read input", err)
	}

	sessions, err := decodeSessions(data)
	if err != nil {
		exitErr("decode", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	restored, err := s.Import(cmd.Context(), sessions)
	if err != nil {
		exitErr("restore", err)
	}
	logger.Info().Int("sessions", restored).Msg("restore finished")

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"restored":%d}`+"\n", restored)
}

// decodeSessions accepts a JSON array or a YAML sequence.
func decodeSessions(data string) ([]model.Session, error) {
	var sessions []model.Session
	if strings.HasPrefix(strings.TrimSpace(data), "[") {
		if err := json.Unmarshal([]byte(data), &sessions); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return sessions, nil
	}
	if err := yaml.Unmarshal([]byte(data), &sessions); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return sessions, nil
}
