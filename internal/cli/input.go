package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/creait/sessionkit/internal/session"
)

// readInput returns the document named by args[0], or piped stdin, capped at
// max_input_bytes.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	return readInputLimit(cmd, args, cfg.MaxInputBytes)
}

// readInputLimit is readInput with an explicit cap. Zero means no cap.
func readInputLimit(cmd *cobra.Command, args []string, limit int64) (string, error) {
	var r io.Reader
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok {
			stat, _ := f.Stat()
			if stat != nil && (stat.Mode()&os.ModeCharDevice) != 0 {
				return "", fmt.Errorf("no input: pass a file or pipe text on stdin")
			}
		}
		r = in
	}

	text, err := session.ReadInput(r, limit)
	if err != nil {
		return "", err
	}
	logger.Debug().Int("bytes", len(text)).Msg("input read")
	return text, nil
}
