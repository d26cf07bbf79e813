// Package sl talks to the Sapling CLI: revset queries with JSON templates,
// repository introspection, and pushes.
package sl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bjulian5/book-stack/internal/command"
	"github.com/bjulian5/book-stack/internal/model"
	"github.com/bjulian5/book-stack/internal/revset"
)

// CommitTemplate projects the fields of model.Commit as a single JSON object.
const CommitTemplate = "{dict(phase, bookmarks, github_pull_request_number, node, short_node=node|short, title=desc|firstline) | json}"

// DefaultPushPrefix is prepended to the bookmark name to form the remote branch.
const DefaultPushPrefix = "remote/"

// ErrPublicCommit is reported when a query walks past the draft stack onto a public
// commit, which means there is no draft work to anchor a stack on.
var ErrPublicCommit = errors.New("current commit is public")

// ErrEmptyRevset is returned when a query is attempted with a blank expression.
var ErrEmptyRevset = errors.New("empty revset")

const publicCommitDiagnostic = "current commit is public"

// Client runs sl commands in a repository.
type Client struct {
	dir        string
	pushPrefix string
	run        command.Runner
}

// Option configures a Client.
type Option func(*Client)

// WithDir runs commands in dir instead of the working directory.
func WithDir(dir string) Option {
	return func(c *Client) { c.dir = dir }
}

// WithPushPrefix overrides the remote branch prefix used by Push.
func WithPushPrefix(prefix string) Option {
	return func(c *Client) { c.pushPrefix = prefix }
}

// WithRunner replaces the command runner.
func WithRunner(run command.Runner) Option {
	return func(c *Client) { c.run = run }
}

// NewClient creates a new sl client
func NewClient(opts ...Option) *Client {
	c := &Client{
		pushPrefix: DefaultPushPrefix,
		run:        command.Run,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) execSL(ctx context.Context, args ...string) ([]byte, error) {
	output, err := c.run(ctx, c.dir, "sl", args...)
	if err != nil {
		return nil, classify(err)
	}
	return output, nil
}

// classify maps well-known diagnostics onto sentinel errors while keeping the
// original command error reachable through errors.As.
func classify(err error) error {
	var cmdErr *command.Error
	if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, publicCommitDiagnostic) {
		return &classifiedError{sentinel: ErrPublicCommit, cause: err}
	}
	return err
}

type classifiedError struct {
	sentinel error
	cause    error
}

func (e *classifiedError) Error() string {
	return e.cause.Error()
}

func (e *classifiedError) Unwrap() []error {
	return []error{e.sentinel, e.cause}
}

// Log runs `sl log -r <revset> -T <template>` and returns raw stdout.
func (c *Client) Log(ctx context.Context, r revset.Revset, template string) ([]byte, error) {
	if r.IsEmpty() {
		return nil, ErrEmptyRevset
	}
	return c.execSL(ctx, "log", "-r", r.String(), "-T", template)
}

// Query decodes a single JSON record produced by template for r.
func Query[T any](ctx context.Context, c *Client, r revset.Revset, template string) (T, error) {
	var out T

	output, err := c.Log(ctx, r, template)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(output, &out); err != nil {
		return out, fmt.Errorf("failed to decode %q: %w", r.String(), err)
	}
	return out, nil
}

// QueryList decodes one JSON record per line produced by template for r.
func QueryList[T any](ctx context.Context, c *Client, r revset.Revset, template string) ([]T, error) {
	output, err := c.Log(ctx, r, template+"\n")
	if err != nil {
		return nil, err
	}

	records := []T{}
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", r.String(), err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read output of %q: %w", r.String(), err)
	}

	return records, nil
}

// Commit resolves r to exactly one commit.
func (c *Client) Commit(ctx context.Context, r revset.Revset) (model.Commit, error) {
	return Query[model.Commit](ctx, c, r, CommitTemplate)
}

// Commits resolves r to a list of commits in revset order.
func (c *Client) Commits(ctx context.Context, r revset.Revset) ([]model.Commit, error) {
	return QueryList[model.Commit](ctx, c, r, CommitTemplate)
}

// Root returns the repository root directory.
func (c *Client) Root(ctx context.Context) (string, error) {
	output, err := c.execSL(ctx, "root")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// ConfigValue returns the value of a Sapling config key, e.g. "paths.default".
func (c *Client) ConfigValue(ctx context.Context, key string) (string, error) {
	output, err := c.execSL(ctx, "config", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// Push force-pushes node to <prefix><bookmark> on the default remote.
func (c *Client) Push(ctx context.Context, node string, bookmark string) error {
	_, err := c.execSL(ctx, "push", "-f", "-r", node, "--to", c.RemoteBranch(bookmark))
	if err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", node, c.RemoteBranch(bookmark), err)
	}
	return nil
}

// RemoteBranch returns the remote branch a bookmark is pushed to.
func (c *Client) RemoteBranch(bookmark string) string {
	return c.pushPrefix + bookmark
}

// HeadBranch returns the branch name a bookmark has on the code host once pushed:
// the push target without Sapling's "remote/" namespace.
func (c *Client) HeadBranch(bookmark string) string {
	return strings.TrimPrefix(c.RemoteBranch(bookmark), DefaultPushPrefix)
}
