// Package notes stores change journals as git notes in a dedicated notes ref.
//
// Notes are read directly from the object database with go-git and written with
// `git notes add -f`, so the ref is always updated by git itself.
package notes

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/bjulian5/book-stack/internal/command"
)

// DefaultRef is the notes namespace used for journals.
const DefaultRef = "refs/notes/book-stack"

// ErrNoteNotFound is returned when the object has no note in the ref.
var ErrNoteNotFound = errors.New("no note found")

// Store reads and writes notes in a single notes ref of a git directory.
type Store struct {
	gitDir string
	ref    string
	run    command.Runner
}

// NewStore creates a store for gitDir (a bare repository or a .git directory).
// An empty ref selects DefaultRef.
func NewStore(gitDir string, ref string) *Store {
	if ref == "" {
		ref = DefaultRef
	}
	return &Store{
		gitDir: gitDir,
		ref:    ref,
		run:    command.Run,
	}
}

// SaplingGitDir returns the git store backing a Sapling checkout at root.
func SaplingGitDir(root string) string {
	return filepath.Join(root, ".sl", "store", "git")
}

// Show returns the note attached to node, trimmed of surrounding whitespace.
func (s *Store) Show(ctx context.Context, node string) (string, error) {
	repo, err := gogit.PlainOpen(s.gitDir)
	if err != nil {
		return "", fmt.Errorf("failed to open git store %s: %w", s.gitDir, err)
	}

	ref, err := repo.Reference(plumbing.ReferenceName(s.ref), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", fmt.Errorf("%w for %s: %s does not exist", ErrNoteNotFound, node, s.ref)
		}
		return "", fmt.Errorf("failed to resolve %s: %w", s.ref, err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.ref, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("failed to read %s tree: %w", s.ref, err)
	}

	for _, path := range notePaths(node) {
		file, err := tree.File(path)
		if err != nil {
			if errors.Is(err, object.ErrFileNotFound) {
				continue
			}
			return "", fmt.Errorf("failed to read note for %s: %w", node, err)
		}

		contents, err := file.Contents()
		if err != nil {
			return "", fmt.Errorf("failed to read note for %s: %w", node, err)
		}
		return strings.TrimSpace(contents), nil
	}

	return "", fmt.Errorf("%w for %s in %s", ErrNoteNotFound, node, s.ref)
}

// notePaths lists where git may have stored the note for node: flat, or fanned out
// by the first two hex characters once the notes tree grows.
func notePaths(node string) []string {
	node = strings.ToLower(strings.TrimSpace(node))
	paths := []string{node}
	if len(node) > 2 {
		paths = append(paths, node[:2]+"/"+node[2:])
	}
	return paths
}

// Add attaches content to node, replacing any existing note.
func (s *Store) Add(ctx context.Context, node string, content string) error {
	_, err := s.run(ctx, "", "git",
		"--git-dir", s.gitDir,
		"notes", "--ref", s.ref,
		"add", "-f", node,
		"-m", content,
	)
	if err != nil {
		return fmt.Errorf("failed to add note to %s: %w", node, err)
	}
	return nil
}
