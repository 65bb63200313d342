package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/creait/sessionkit/internal/model"
	"github.com/creait/sessionkit/internal/session"
	"github.com/creait/sessionkit/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage file metadata attached to sessions",
	}

	add := &cobra.Command{
		Use:   "add <session-id> [file]",
		Short: "Record an asset for a session",
		Long:  "Record an asset for a session. When a file is given its name, size and type are read from disk; the file itself is not copied.",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runAssetAdd,
	}
	add.Flags().StringP("kind", "k", string(model.AssetEtc), "Kind: SESSION_SLIDE, LAB_SLIDE, CODE, ETC")
	add.Flags().StringP("title", "t", "", "Asset title (default: file name)")
	add.Flags().String("description", "", "Description")
	add.Flags().String("storage-key", "", "Where the file bytes are kept")

	list := &cobra.Command{
		Use:   "list [session-id]",
		Short: "List assets, optionally for one session",
		Args:  cobra.MaximumNArgs(1),
		Run:   runAssetList,
	}

	rm := &cobra.Command{
		Use:   "rm <asset-id>",
		Short: "Delete asset metadata",
		Args:  cobra.ExactArgs(1),
		Run:   runAssetRm,
	}

	cmd.AddCommand(add, list, rm)
	RootCmd.AddCommand(cmd)
}

func runAssetAdd(cmd *cobra.Command, args []string) {
	kind, _ := cmd.Flags().GetString("kind")
	title, _ := cmd.Flags().GetString("title")
	desc, _ := cmd.Flags().GetString("description")
	key, _ := cmd.Flags().GetString("storage-key")

	p := store.AssetParams{
		SessionID:   args[0],
		Kind:        model.AssetKind(strings.ToUpper(kind)),
		Title:       title,
		Description: desc,
		StorageKey:  key,
	}
	if len(args) > 1 {
		info, err := os.Stat(args[1])
		if err != nil {
			exitErr("stat file", err)
		}
		p.FileName = filepath.Base(args[1])
		p.Size = info.Size()
		p.MimeType = session.MimeType(p.FileName)
		if p.Title == "" {
			p.Title = p.FileName
		}
	}

	if err := session.ValidateAsset(p); err != nil {
		exitErr("validate", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	a, err := s.AddAsset(cmd.Context(), p)
	if err != nil {
		exitErr("add asset", err)
	}
	logger.Info().Str("id", a.ID).Str("session", a.SessionID).Str("kind", string(a.Kind)).Msg("asset recorded")

	printOut(cmd, a)
}

func runAssetList(cmd *cobra.Command, args []string) {
	sessionID := ""
	if len(args) > 0 {
		sessionID = args[0]
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	assets, err := s.ListAssets(cmd.Context(), sessionID)
	if err != nil {
		exitErr("list assets", err)
	}

	printOut(cmd, assets)
}

func runAssetRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.RmAsset(cmd.Context(), args[0]); err != nil {
		exitErr("rm asset", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"deleted":%q}`+"\n", args[0])
}
