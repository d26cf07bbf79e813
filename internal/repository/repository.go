// Package repository resolves the upstream remote of the working repository.
package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnexpectedRemote is returned when the configured remote does not carry the expected suffix.
var ErrUnexpectedRemote = errors.New("could not get the url")

// ConfigReader reads repository configuration values.
type ConfigReader interface {
	ConfigValue(ctx context.Context, key string) (string, error)
}

// Descriptor describes the upstream remote.
type Descriptor struct {
	// DefaultPath is the configured remote, e.g. https://github.com/owner/repo.git
	DefaultPath string `json:"default_path"`

	// URL is the browsable form of DefaultPath, e.g. https://github.com/owner/repo
	URL string `json:"url"`
}

// New reads key (normally "paths.default") and derives the browsable URL by stripping suffix.
func New(ctx context.Context, cfg ConfigReader, key string, suffix string) (*Descriptor, error) {
	defaultPath, err := cfg.ConfigValue(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return FromPath(defaultPath, suffix)
}

// FromPath builds a Descriptor from a remote path.
func FromPath(defaultPath string, suffix string) (*Descriptor, error) {
	u, ok := strings.CutSuffix(defaultPath, suffix)
	if !ok || u == "" {
		return nil, fmt.Errorf("%w: %q does not end with %q", ErrUnexpectedRemote, defaultPath, suffix)
	}
	return &Descriptor{DefaultPath: defaultPath, URL: u}, nil
}

// OwnerRepo splits the URL into GitHub owner and repository name. It understands
// https://host/owner/repo, ssh://git@host/owner/repo and git@host:owner/repo.
func (d *Descriptor) OwnerRepo() (owner string, repo string, err error) {
	var path string

	if strings.Contains(d.URL, "://") {
		parsed, perr := url.Parse(d.URL)
		if perr != nil {
			return "", "", fmt.Errorf("failed to parse %q: %w", d.URL, perr)
		}
		path = parsed.Path
	} else if _, after, ok := strings.Cut(d.URL, ":"); ok {
		path = after
	} else {
		path = d.URL
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("cannot determine owner/repo from %q", d.URL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// Host returns the hostname serving the repository, e.g. github.com
func (d *Descriptor) Host() (string, error) {
	if strings.Contains(d.URL, "://") {
		parsed, err := url.Parse(d.URL)
		if err != nil {
			return "", fmt.Errorf("failed to parse %q: %w", d.URL, err)
		}
		return parsed.Hostname(), nil
	}

	before, _, ok := strings.Cut(d.URL, ":")
	if !ok {
		return "", fmt.Errorf("cannot determine host from %q", d.URL)
	}
	if _, host, found := strings.Cut(before, "@"); found {
		return host, nil
	}
	return before, nil
}
