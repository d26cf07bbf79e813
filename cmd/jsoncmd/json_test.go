package jsoncmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/book-stack/internal/common"
	"github.com/bjulian5/book-stack/internal/config"
	"github.com/bjulian5/book-stack/internal/model"
	"github.com/bjulian5/book-stack/internal/testutil"
)

func TestWrite(t *testing.T) {
	head := model.Commit{
		Node:      "b1b1b1",
		ShortNode: "b1b1",
		Title:     "Add parser",
		Phase:     model.PhaseDraft,
		Bookmarks: []string{"feature-a"},
	}
	base := model.Commit{Node: "c0c0c0", ShortNode: "c0c0", Phase: model.PhasePublic, Bookmarks: []string{}}
	changes := []model.Change{{
		ID:        "0123456789abcdef",
		Date:      time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Head:      head,
		ChildHead: base,
		Commits:   []model.Commit{head},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, changes))

	out := buf.String()
	assert.NotContains(t, out, "\n")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "2025-03-14T09:26:53Z", decoded[0]["date"])
	assert.Equal(t, "b1b1b1", decoded[0]["head"].(map[string]any)["node"])
	assert.Equal(t, "c0c0c0", decoded[0]["child_head"].(map[string]any)["node"])
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "[]", buf.String())
}

// fakeSL answers the queries made while building a one-change stack. The default
// remote has no ".git" suffix.
func fakeSL(root string) string {
	return fmt.Sprintf(`case "$1" in
root)
	echo '%s'
	;;
config)
	echo 'https://github.com/owner/repo'
	;;
log)
	case "$3" in
	'bottom^')
		printf '%%s' '{"bookmarks": [], "github_pull_request_number": null, "node": "c0c0c0c0", "phase": "public", "short_node": "c0c0", "title": "Base"}'
		;;
	*)
		echo '{"bookmarks": ["feature-a"], "github_pull_request_number": null, "node": "b1b1b1b1", "phase": "draft", "short_node": "b1b1", "title": "Add parser"}'
		;;
	esac
	;;
*)
	echo "unexpected sl $*" >&2
	exit 1
	;;
esac
`, root)
}

func TestCommand_RemoteWithoutSuffix(t *testing.T) {
	testutil.FakeCommand(t, "sl", fakeSL(t.TempDir()))
	// An API client without a token is only an error for commands that talk to GitHub
	t.Setenv(config.EnvGitHubClient, config.GitHubClientAPI)
	t.Setenv("GITHUB_TOKEN", "")
	t.Cleanup(common.Close)

	ctx := context.Background()

	_, err := common.InitClients(ctx)
	require.Error(t, err)

	var buf bytes.Buffer
	cmd := &Command{Out: &buf}
	require.NoError(t, cmd.Init(ctx))
	require.NoError(t, cmd.Run(ctx))

	var decoded []model.Change
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "b1b1b1b1", decoded[0].Head.Node)
	assert.Equal(t, []string{"feature-a"}, decoded[0].Head.Bookmarks)
	assert.Equal(t, "c0c0c0c0", decoded[0].ChildHead.Node)
	require.Len(t, decoded[0].Commits, 1)
	assert.Equal(t, "Add parser", decoded[0].Commits[0].Title)
}
