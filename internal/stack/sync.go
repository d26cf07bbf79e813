package stack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bjulian5/book-stack/internal/gh"
	"github.com/bjulian5/book-stack/internal/model"
)

// PullRequests looks up the pull request tracking a bookmark
type PullRequests interface {
	PullRequest(ctx context.Context, branch string) (*gh.PullRequest, error)
}

// Journals stores push journals keyed by commit node
type Journals interface {
	Show(ctx context.Context, node string) (string, error)
	Add(ctx context.Context, node string, content string) error
}

// Pusher publishes a commit to the remote branch for a bookmark
type Pusher interface {
	Push(ctx context.Context, node string, bookmark string) error
}

// State describes how a change relates to its pull request
type State int

const (
	// StateNoRemote means no pull request exists for the change yet
	StateNoRemote State = iota
	// StateUnchanged means the pull request already points at the local head
	StateUnchanged
	// StateDiverged means the local head was rewritten since the last push
	StateDiverged
)

func (s State) String() string {
	switch s {
	case StateNoRemote:
		return "new"
	case StateUnchanged:
		return "unchanged"
	case StateDiverged:
		return "diverged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// NeedsPush reports whether a change in this state must be pushed
func (s State) NeedsPush() bool {
	return s != StateUnchanged
}

// Result reports what happened to a single change
type Result struct {
	Change model.Change
	Name   string
	// Branch is the head branch of the change's pull request
	Branch      string
	State       State
	PullRequest *gh.PullRequest
	// URL is the pull request URL, or the compare URL when there is none
	URL     string
	Pushed  bool
	DryRun  bool
	Journal model.Journal
}

// Synchronizer pushes changes and records their journals
type Synchronizer struct {
	prs     PullRequests
	journal Journals
	pusher  Pusher
	repoURL string
	dryRun  bool
	branch  func(bookmark string) string
}

// SyncOption configures a Synchronizer
type SyncOption func(*Synchronizer)

// WithDryRun computes states and journals without writing notes or pushing
func WithDryRun(dryRun bool) SyncOption {
	return func(s *Synchronizer) {
		s.dryRun = dryRun
	}
}

// WithBranchName maps a bookmark to the pull request head branch it is pushed to
func WithBranchName(branch func(bookmark string) string) SyncOption {
	return func(s *Synchronizer) {
		s.branch = branch
	}
}

// NewSynchronizer creates a synchronizer for the repository at repoURL
func NewSynchronizer(prs PullRequests, journals Journals, pusher Pusher, repoURL string, opts ...SyncOption) *Synchronizer {
	s := &Synchronizer{
		prs:     prs,
		journal: journals,
		pusher:  pusher,
		repoURL: repoURL,
		branch:  func(bookmark string) string { return bookmark },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync processes changes in order, calling report after each one. An ancestor is
// always settled before its descendants; the first error stops the run.
func (s *Synchronizer) Sync(ctx context.Context, changes []model.Change, report func(Result)) error {
	for _, change := range changes {
		result, err := s.SyncChange(ctx, change)
		if err != nil {
			return err
		}
		if report != nil {
			report(result)
		}
	}
	return nil
}

// SyncChange brings a single change's pull request up to date.
//
// The journal is written as a note on the local head before the head is pushed, so
// a pull request pointing at the new head can always find its history.
func (s *Synchronizer) SyncChange(ctx context.Context, change model.Change) (Result, error) {
	name, err := change.Name()
	if err != nil {
		return Result{}, err
	}

	branch := s.branch(name)
	pr, err := s.prs.PullRequest(ctx, branch)
	if err != nil {
		return Result{}, fmt.Errorf("failed to look up pull request for %s: %w", name, err)
	}

	result := Result{
		Change:      change,
		Name:        name,
		Branch:      branch,
		PullRequest: pr,
		DryRun:      s.dryRun,
	}

	result.State = stateOf(change, pr)
	switch result.State {
	case StateNoRemote:
		result.Journal = model.Journal{}.Append(change)
	case StateDiverged:
		journal, err := s.loadJournal(ctx, pr.HeadRefOid)
		if err != nil {
			return Result{}, fmt.Errorf("failed to load journal for %s: %w", name, err)
		}
		result.Journal = journal.Append(change)
	}

	result.URL, err = s.displayURL(change, pr)
	if err != nil {
		return Result{}, err
	}

	if !result.State.NeedsPush() {
		slog.Debug("change unchanged", "bookmark", name, "node", change.Head.Node)
		return result, nil
	}

	if s.dryRun {
		slog.Debug("dry run, skipping push", "bookmark", name, "state", result.State.String())
		return result, nil
	}

	encoded, err := result.Journal.Encode()
	if err != nil {
		return Result{}, err
	}
	if err := s.journal.Add(ctx, change.Head.Node, encoded); err != nil {
		return Result{}, fmt.Errorf("failed to record journal for %s: %w", name, err)
	}
	if err := s.pusher.Push(ctx, change.Head.Node, name); err != nil {
		return Result{}, err
	}
	result.Pushed = true

	slog.Debug("pushed change", "bookmark", name, "node", change.Head.Node, "state", result.State.String())
	return result, nil
}

// Describe looks up each change's pull request and display URL without reading
// journals, writing notes, or pushing. Results carry no journal.
func (s *Synchronizer) Describe(ctx context.Context, changes []model.Change) ([]Result, error) {
	results := make([]Result, 0, len(changes))
	for _, change := range changes {
		name, err := change.Name()
		if err != nil {
			return nil, err
		}

		branch := s.branch(name)
		pr, err := s.prs.PullRequest(ctx, branch)
		if err != nil {
			return nil, fmt.Errorf("failed to look up pull request for %s: %w", name, err)
		}

		url, err := s.displayURL(change, pr)
		if err != nil {
			return nil, err
		}

		results = append(results, Result{
			Change:      change,
			Name:        name,
			Branch:      branch,
			State:       stateOf(change, pr),
			PullRequest: pr,
			URL:         url,
		})
	}
	return results, nil
}

func stateOf(change model.Change, pr *gh.PullRequest) State {
	switch {
	case pr == nil:
		return StateNoRemote
	case pr.HeadRefOid == change.Head.Node:
		return StateUnchanged
	default:
		return StateDiverged
	}
}

func (s *Synchronizer) loadJournal(ctx context.Context, node string) (model.Journal, error) {
	content, err := s.journal.Show(ctx, node)
	if err != nil {
		return nil, err
	}
	return model.ParseJournal(content)
}

func (s *Synchronizer) displayURL(change model.Change, pr *gh.PullRequest) (string, error) {
	if pr != nil && pr.URL != "" {
		return pr.URL, nil
	}
	return change.CompareURL(s.repoURL)
}
