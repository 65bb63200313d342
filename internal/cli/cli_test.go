package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/creait/sessionkit/internal/model"
	"github.com/creait/sessionkit/internal/parser"
	"github.com/creait/sessionkit/internal/store"
)

const sampleDoc = `━━━━━━━━━━━━━━━━━━━━
2026-03-09 Session 1 — 기초
━━━━━━━━━━━━━━━━━━━━
■ 세션 목표
목표입니다
■ 오늘 배우는 것
1. 목표A
2. 목표B
■ 타임라인 상세
① 시작
설명1
▶ 넘어가며
② 끝
설명2
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	resetFlags(RootCmd)
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
		resetFlags(RootCmd)
	})

	require.NoError(t, RootCmd.Execute(), errOut.String())
	return out.String()
}

// resetFlags puts every flag of cmd and its subcommands back to its default,
// since flag values live in package variables across Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestParseCommand_JSON(t *testing.T) {
	out := execute(t, "parse", writeDoc(t, sampleDoc), "--format", "json", "--check")

	var got parser.ParsedSession
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "기초", got.Title)
	assert.Equal(t, "2026-03-09", got.Date)
	assert.Equal(t, []string{"목표A", "목표B"}, got.Goals)
	require.Len(t, got.Blocks, 2)
	assert.Equal(t, "[연결] 넘어가며\n\n설명2", got.Blocks[1].Description)
}

func TestParseCommand_YAML(t *testing.T) {
	out := execute(t, "parse", writeDoc(t, sampleDoc), "--format", "yaml", "--check=false")

	var got parser.ParsedSession
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "기초", got.Title)
	require.Len(t, got.Blocks, 2)
	assert.Equal(t, model.BlockFlow, got.Blocks[0].Type)
}

func TestSessionLifecycle(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sessions.db")
	doc := writeDoc(t, sampleDoc)

	dry := execute(t, "import", doc, "--db", db, "--format", "json", "--day", "1", "--dry-run")
	var params store.CreateParams
	require.NoError(t, json.Unmarshal([]byte(dry), &params))
	assert.Equal(t, "1일차 세션: 기초", params.Title)

	out := execute(t, "import", doc, "--db", db, "--format", "json", "--day", "3", "--location", "세미나실", "--dry-run=false", "--publish=false")
	var created model.Session
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "3일차 세션: 기초", created.Title)
	assert.Equal(t, "세미나실", created.Location)
	assert.Len(t, created.Blocks, 2)

	out = execute(t, "get", created.ID, "--db", db, "--format", "json")
	var got model.Session
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "시작", got.Blocks[0].Title)

	out = execute(t, "list", "--db", db, "--format", "json", "--published=true", "--ids-only=false")
	assert.Equal(t, "[]", strings.TrimSpace(out))

	execute(t, "publish", created.ID, "--db", db, "--unpublish=false")
	out = execute(t, "list", "--db", db, "--format", "json", "--published=true", "--ids-only=true")
	assert.Contains(t, out, created.ID)

	out = execute(t, "search", "넘어가며", "--db", db, "--format", "json", "--published=false")
	var results []store.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.NotNil(t, results[0].MatchBlock)
	assert.Equal(t, "끝", results[0].MatchBlock.Title)

	exported := execute(t, "export", "--db", db, "--format", "yaml")
	other := filepath.Join(t.TempDir(), "restored.db")
	out = execute(t, "restore", writeDoc(t, exported), "--db", other, "--format", "json")
	assert.Contains(t, out, `"restored":1`)

	out = execute(t, "stats", "--db", other, "--format", "json")
	var st store.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 1, st.TotalSessions)
	assert.Equal(t, 1, st.PublishedSessions)
	assert.Equal(t, 2, st.TotalBlocks)

	out = execute(t, "rm", created.ID, "--db", db)
	assert.Contains(t, out, created.ID)
	out = execute(t, "list", "--db", db, "--format", "json", "--published=false", "--ids-only=false")
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestDecodeSessions(t *testing.T) {
	js := `[{"id":"x","title":"t","date":"2026-03-09","summary":"s","goals":["a"],"prerequisites":[],"published":false,"created_at":"2026-03-01T00:00:00Z","updated_at":"2026-03-01T00:00:00Z","block_count":0}]`
	got, err := decodeSessions(js)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t", got[0].Title)

	got, err = decodeSessions("- title: y\n  date: \"2026-03-10\"\n  goals: [b]\n")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-03-10", got[0].Date)

	_, err = decodeSessions("[not json")
	assert.Error(t, err)
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, encode(&bytes.Buffer{}, "xml", 1))
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	doc := writeDoc(t, sampleDoc)

	out := execute(t, "parse", doc, "--format", "yaml", "--check")
	assert.Contains(t, out, "title: 기초")

	out = execute(t, "parse", doc)
	var got parser.ParsedSession
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, "기초", got.Title)
	assert.Equal(t, "json", formatFlag)
}

func TestRestoreIgnoresInputCeiling(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sessions.db")
	execute(t, "import", writeDoc(t, sampleDoc), "--db", db, "--day", "1")
	exported := execute(t, "export", "--db", db, "--format", "json")

	conf := filepath.Join(t.TempDir(), "sessionkit.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("max_input_bytes: 64\n"), 0o644))
	require.Greater(t, len(exported), 64)

	other := filepath.Join(t.TempDir(), "restored.db")
	out := execute(t, "restore", writeDoc(t, exported), "--db", other, "--config", conf)
	assert.Contains(t, out, `"restored":1`)
	assert.Equal(t, int64(64), cfg.MaxInputBytes)
}

func TestAssetsAndSubmissions(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sessions.db")
	out := execute(t, "import", writeDoc(t, sampleDoc), "--db", db, "--day", "1")
	var sess model.Session
	require.NoError(t, json.Unmarshal([]byte(out), &sess))

	slides := filepath.Join(t.TempDir(), "day1.pdf")
	require.NoError(t, os.WriteFile(slides, []byte("%PDF-1.4"), 0o644))

	out = execute(t, "asset", "add", sess.ID, slides, "--db", db, "--kind", "session_slide")
	var asset model.Asset
	require.NoError(t, json.Unmarshal([]byte(out), &asset))
	assert.Equal(t, model.AssetSessionSlide, asset.Kind)
	assert.Equal(t, "day1.pdf", asset.Title)
	assert.Equal(t, "application/pdf", asset.MimeType)
	assert.Equal(t, int64(8), asset.Size)

	out = execute(t, "asset", "list", sess.ID, "--db", db)
	var assets []model.Asset
	require.NoError(t, json.Unmarshal([]byte(out), &assets))
	require.Len(t, assets, 1)
	assert.Equal(t, asset.ID, assets[0].ID)

	out = execute(t, "submit", sess.ID, "--db", db, "--github", "https://github.com/kim/day1", "--asset", asset.ID, "-m", "완료")
	var sub model.Submission
	require.NoError(t, json.Unmarshal([]byte(out), &sub))
	assert.Equal(t, "https://github.com/kim/day1", sub.GithubURL)

	out = execute(t, "submissions", "--db", db, "--format", "yaml")
	var subs []model.Submission
	require.NoError(t, yaml.Unmarshal([]byte(out), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "완료", subs[0].Message)
	assert.Equal(t, asset.ID, subs[0].FileAssetID)

	out = execute(t, "asset", "rm", asset.ID, "--db", db)
	assert.Contains(t, out, asset.ID)

	out = execute(t, "stats", "--db", db)
	var st store.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 0, st.TotalAssets)
	assert.Equal(t, 1, st.TotalSubmissions)
}
