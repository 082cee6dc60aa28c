package catalog

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/newkub/templates/internal/branding"
	"github.com/newkub/templates/internal/config"
)

const (
	freshnessFile = ".templates-updated"

	// DefaultMaxAge is how old a clone may get before commands nag about it.
	DefaultMaxAge = 7 * 24 * time.Hour

	tmpSuffix = ".tmp"
	dirPerm   = 0755
)

// RepoURL returns the templates repository URL, checking (in order):
// 1. $TEMPLATES_REPO_URL
// 2. config key "templates_repo"
// 3. branding.TemplatesRepoURL()
func RepoURL() string {
	if v := os.Getenv(branding.EnvVar("REPO_URL")); v != "" {
		return v
	}
	if v := config.Get(config.KeyTemplatesRepo); v != "" {
		return v
	}
	return branding.TemplatesRepoURL()
}

// Dir is the default clone location.
func Dir() string {
	return config.RepoCacheDir()
}

// Fetch clones repoURL into dir, or pulls when dir already holds a clone.
func Fetch(ctx context.Context, repoURL, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return Update(ctx, dir)
	}
	return Clone(ctx, repoURL, dir)
}

// Clone performs a shallow clone of repoURL into targetDir. A sparse
// checkout of templates/ is tried first, falling back to a full shallow
// clone. The clone lands in a .tmp sibling and is renamed into place on
// success, so a failed clone never replaces a working one.
func Clone(ctx context.Context, repoURL, targetDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	tmpDir := targetDir + tmpSuffix
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), dirPerm); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if err := trySparseClone(ctx, tmpDir, repoURL); err != nil {
		_ = os.RemoveAll(tmpDir)
		if err := git(ctx, "", "clone", "--depth=1", repoURL, tmpDir); err != nil {
			_ = os.RemoveAll(tmpDir)
			return fmt.Errorf("cloning templates repository: %w", err)
		}
	}

	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("removing existing clone: %w", err)
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing clone: %w", err)
	}

	return WriteFreshnessMarker(targetDir, time.Now())
}

// Update pulls the latest changes into an existing clone.
func Update(ctx context.Context, dir string) error {
	if err := ensureGit(); err != nil {
		return err
	}
	if err := git(ctx, dir, "pull", "--depth=1", "--rebase"); err != nil {
		return fmt.Errorf("pulling templates updates: %w", err)
	}
	return WriteFreshnessMarker(dir, time.Now())
}

// WriteFreshnessMarker records now as the last successful fetch.
func WriteFreshnessMarker(dir string, now time.Time) error {
	ts := strconv.FormatInt(now.Unix(), 10)
	if err := os.WriteFile(filepath.Join(dir, freshnessFile), []byte(ts), 0644); err != nil {
		return fmt.Errorf("writing freshness marker: %w", err)
	}
	return nil
}

// ReadFreshnessMarker returns the last fetch time, or the zero time when the
// marker is missing or unparsable.
func ReadFreshnessMarker(dir string) time.Time {
	data, err := os.ReadFile(filepath.Join(dir, freshnessFile))
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale reports whether the clone in dir was fetched more than maxAge
// before now. A clone without a marker is stale.
func IsStale(dir string, maxAge time.Duration, now time.Time) bool {
	last := ReadFreshnessMarker(dir)
	if last.IsZero() {
		return true
	}
	return now.Sub(last) > maxAge
}

func trySparseClone(ctx context.Context, targetDir, repoURL string) error {
	if err := git(ctx, "", "clone", "--depth=1", "--sparse", "--no-checkout", repoURL, targetDir); err != nil {
		return err
	}
	if err := git(ctx, targetDir, "sparse-checkout", "set", "templates/"); err != nil {
		return err
	}
	return git(ctx, targetDir, "checkout")
}

func git(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w\n%s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
