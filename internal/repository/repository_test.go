package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConfigReader struct {
	mock.Mock
}

func (m *mockConfigReader) ConfigValue(ctx context.Context, key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func TestNew(t *testing.T) {
	reader := &mockConfigReader{}
	reader.On("ConfigValue", "paths.default").Return("https://github.com/owner/repo.git", nil)

	d, err := New(context.Background(), reader, "paths.default", ".git")
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/owner/repo.git", d.DefaultPath)
	assert.Equal(t, "https://github.com/owner/repo", d.URL)
	reader.AssertExpectations(t)
}

func TestNew_MissingSuffix(t *testing.T) {
	reader := &mockConfigReader{}
	reader.On("ConfigValue", "paths.default").Return("https://github.com/owner/repo", nil)

	_, err := New(context.Background(), reader, "paths.default", ".git")
	assert.ErrorIs(t, err, ErrUnexpectedRemote)
}

func TestNew_ConfigFailure(t *testing.T) {
	reader := &mockConfigReader{}
	reader.On("ConfigValue", "paths.default").Return("", errors.New("abort: no repository found"))

	_, err := New(context.Background(), reader, "paths.default", ".git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read paths.default")
	assert.Contains(t, err.Error(), "no repository found")
}

func TestFromPath_SuffixOnly(t *testing.T) {
	_, err := FromPath(".git", ".git")
	assert.ErrorIs(t, err, ErrUnexpectedRemote)
}

func TestDescriptor_OwnerRepo(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		owner     string
		repo      string
		expectErr bool
	}{
		{name: "https", path: "https://github.com/owner/repo.git", owner: "owner", repo: "repo"},
		{name: "ssh url", path: "ssh://git@github.com/owner/repo.git", owner: "owner", repo: "repo"},
		{name: "scp style", path: "git@github.com:owner/repo.git", owner: "owner", repo: "repo"},
		{name: "enterprise host with prefix", path: "https://ghe.example.com/org/team/repo.git", owner: "team", repo: "repo"},
		{name: "no owner", path: "https://github.com/repo.git", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromPath(tt.path, ".git")
			require.NoError(t, err)

			owner, repo, err := d.OwnerRepo()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestDescriptor_Host(t *testing.T) {
	tests := []struct {
		path string
		host string
	}{
		{"https://github.com/owner/repo.git", "github.com"},
		{"ssh://git@ghe.example.com:2222/owner/repo.git", "ghe.example.com"},
		{"git@github.com:owner/repo.git", "github.com"},
		{"github.com:owner/repo.git", "github.com"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d, err := FromPath(tt.path, ".git")
			require.NoError(t, err)

			host, err := d.Host()
			require.NoError(t, err)
			assert.Equal(t, tt.host, host)
		})
	}
}
