package stack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bjulian5/book-stack/internal/model"
	"github.com/bjulian5/book-stack/internal/revset"
	"github.com/bjulian5/book-stack/internal/sl"
)

// Revisions defines the query operations needed to build a stack
type Revisions interface {
	Commit(ctx context.Context, r revset.Revset) (model.Commit, error)
	Commits(ctx context.Context, r revset.Revset) ([]model.Commit, error)
}

// Builder partitions the bookmarked draft range into changes
type Builder struct {
	revs  Revisions
	clock func() time.Time
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithClock overrides the time source used to date changes
func WithClock(clock func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.clock = clock
	}
}

// NewBuilder creates a new stack builder
func NewBuilder(revs Revisions, opts ...BuilderOption) *Builder {
	b := &Builder{revs: revs, clock: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the stack's changes ordered from base to tip.
//
// When the bottom of the stack has no draft parent (the working copy sits on a
// public commit) the stack is empty. Segment i spans from the head of segment i-1
// (or the stack base for i = 0) to bookmarked commit i, base exclusive.
func (b *Builder) Build(ctx context.Context) ([]model.Change, error) {
	base, err := b.revs.Commit(ctx, revset.BottomParent())
	if err != nil {
		if errors.Is(err, sl.ErrPublicCommit) {
			slog.Debug("no draft commits, stack is empty")
			return []model.Change{}, nil
		}
		return nil, fmt.Errorf("failed to resolve stack base: %w", err)
	}

	heads, err := b.revs.Commits(ctx, revset.BookmarkedRange())
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarked commits: %w", err)
	}

	now := b.clock().UTC()
	changes := make([]model.Change, 0, len(heads))
	childHead := base
	for _, head := range heads {
		commits, err := b.revs.Commits(ctx, revset.Segment(childHead.Node, head.Node))
		if err != nil {
			return nil, fmt.Errorf("failed to list commits for %s: %w", head.ShortOrNode(), err)
		}

		changes = append(changes, model.Change{
			ID:        model.NewChangeID(),
			Date:      now,
			Head:      head,
			ChildHead: childHead,
			Commits:   commits,
		})
		childHead = head
	}

	slog.Debug("built stack", "base", base.ShortOrNode(), "changes", len(changes))
	return changes, nil
}
