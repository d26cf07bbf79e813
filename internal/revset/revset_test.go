package revset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevsetExpressions(t *testing.T) {
	tests := []struct {
		name     string
		revset   Revset
		expected string
	}{
		{name: "bottom parent", revset: BottomParent(), expected: "bottom^"},
		{name: "bookmarked range", revset: BookmarkedRange(), expected: "bottom::top and bookmark()"},
		{name: "segment", revset: Segment("aaa", "bbb"), expected: "aaa::bbb - aaa"},
		{name: "raw", revset: New("."), expected: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.revset.String())
			assert.False(t, tt.revset.IsEmpty())
		})
	}
}

func TestRevset_IsEmpty(t *testing.T) {
	assert.True(t, New("").IsEmpty())
	assert.True(t, Revset{}.IsEmpty())
}
