package stack

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bjulian5/book-stack/internal/gh"
	"github.com/bjulian5/book-stack/internal/model"
	"github.com/bjulian5/book-stack/internal/revset"
)

type MockRevisions struct {
	mock.Mock
}

// Commit implements Revisions.
func (m *MockRevisions) Commit(ctx context.Context, r revset.Revset) (model.Commit, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(model.Commit), args.Error(1)
}

// Commits implements Revisions.
func (m *MockRevisions) Commits(ctx context.Context, r revset.Revset) ([]model.Commit, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Commit), args.Error(1)
}

type MockPullRequests struct {
	mock.Mock
}

// PullRequest implements PullRequests.
func (m *MockPullRequests) PullRequest(ctx context.Context, branch string) (*gh.PullRequest, error) {
	args := m.Called(ctx, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gh.PullRequest), args.Error(1)
}

type MockJournals struct {
	mock.Mock
}

// Show implements Journals.
func (m *MockJournals) Show(ctx context.Context, node string) (string, error) {
	args := m.Called(ctx, node)
	return args.String(0), args.Error(1)
}

// Add implements Journals.
func (m *MockJournals) Add(ctx context.Context, node string, content string) error {
	args := m.Called(ctx, node, content)
	return args.Error(0)
}

type MockPusher struct {
	mock.Mock
}

// Push implements Pusher.
func (m *MockPusher) Push(ctx context.Context, node string, bookmark string) error {
	args := m.Called(ctx, node, bookmark)
	return args.Error(0)
}
