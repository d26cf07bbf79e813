package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bjulian5/book-stack/internal/config"
	"github.com/bjulian5/book-stack/internal/gh"
	"github.com/bjulian5/book-stack/internal/logging"
	"github.com/bjulian5/book-stack/internal/notes"
	"github.com/bjulian5/book-stack/internal/repository"
	"github.com/bjulian5/book-stack/internal/sl"
	"github.com/bjulian5/book-stack/internal/stack"
)

// GlobalFlags are the persistent flags shared by every command
type GlobalFlags struct {
	Verbose    bool
	ConfigPath string
}

// Flags is bound to the root command's persistent flags
var Flags GlobalFlags

var logCloser io.Closer

// Clients bundles everything a command needs to work on the current repository
type Clients struct {
	Root   string
	Config config.Config
	SL     *sl.Client
	Repo   *repository.Descriptor
	Notes  *notes.Store
	PRs    stack.PullRequests
	GH     *gh.Client
}

// Workspace is the resolved repository root and its configuration
type Workspace struct {
	Root       string
	ConfigPath string
	Config     config.Config
}

// ResolveWorkspace locates the sl root and the config path without reading the
// config file, so a broken config can still be rewritten.
func ResolveWorkspace(ctx context.Context) (*Workspace, error) {
	if err := setupLogging(logging.Options{Verbose: Flags.Verbose}); err != nil {
		return nil, err
	}

	root, err := sl.NewClient().Root(ctx)
	if err != nil {
		return nil, fmt.Errorf("not in a sapling repository: %w", err)
	}

	path := Flags.ConfigPath
	if path == "" {
		path = config.Path(root)
	}
	return &Workspace{Root: root, ConfigPath: path}, nil
}

// LoadWorkspace locates the sl root and loads its configuration, then installs
// the logger the configuration asks for.
func LoadWorkspace(ctx context.Context) (*Workspace, error) {
	ws, err := ResolveWorkspace(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ws.ConfigPath)
	if err != nil {
		return nil, err
	}
	ws.Config = cfg

	if cfg.Log.File != "" {
		err := setupLogging(logging.Options{
			Verbose:    Flags.Verbose,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		})
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("loaded workspace", "root", ws.Root, "config", ws.ConfigPath)
	return ws, nil
}

// InitBuilder returns a stack builder bound to the sl root. It needs neither the
// remote nor a GitHub client.
func InitBuilder(ctx context.Context) (*stack.Builder, error) {
	ws, err := LoadWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	return stack.NewBuilder(sl.NewClient(sl.WithDir(ws.Root))), nil
}

// InitClients initializes sl, notes, and GitHub clients for the current repository
// Returns an error that is suitable for use in PreRunE hooks
func InitClients(ctx context.Context) (*Clients, error) {
	ws, err := LoadWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	cfg := ws.Config

	slClient := sl.NewClient(sl.WithDir(ws.Root), sl.WithPushPrefix(cfg.PushPrefix))

	repo, err := repository.New(ctx, slClient, cfg.RemotePathKey, cfg.RemoteSuffix)
	if err != nil {
		return nil, err
	}

	ghClient := gh.NewClient(repo.URL)
	prs, err := pullRequestClient(ctx, cfg, repo, ghClient)
	if err != nil {
		return nil, err
	}

	return &Clients{
		Root:   ws.Root,
		Config: cfg,
		SL:     slClient,
		Repo:   repo,
		Notes:  notes.NewStore(notes.SaplingGitDir(ws.Root), cfg.NotesRef),
		PRs:    prs,
		GH:     ghClient,
	}, nil
}

// Builder returns a stack builder reading from the repository
func (c *Clients) Builder() *stack.Builder {
	return stack.NewBuilder(c.SL)
}

// Synchronizer returns a synchronizer pushing through sl and journaling in git notes
func (c *Clients) Synchronizer(opts ...stack.SyncOption) *stack.Synchronizer {
	opts = append([]stack.SyncOption{stack.WithBranchName(c.SL.HeadBranch)}, opts...)
	return stack.NewSynchronizer(c.PRs, c.Notes, c.SL, c.Repo.URL, opts...)
}

func pullRequestClient(ctx context.Context, cfg config.Config, repo *repository.Descriptor, cli *gh.Client) (stack.PullRequests, error) {
	if cfg.GitHub.Client != config.GitHubClientAPI {
		return cli, nil
	}

	token := os.Getenv(cfg.GitHub.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("github.client is %q but $%s is not set", config.GitHubClientAPI, cfg.GitHub.TokenEnv)
	}

	owner, name, err := repo.OwnerRepo()
	if err != nil {
		return nil, err
	}
	host, err := repo.Host()
	if err != nil {
		return nil, err
	}

	client, err := gh.NewAPIClient(ctx, host, token, owner, name)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func setupLogging(opts logging.Options) error {
	closer, err := logging.Setup(opts)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	Close()
	logCloser = closer
	return nil
}

// Close releases the log file, if one was opened
func Close() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}
