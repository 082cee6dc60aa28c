package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b. A leading "v" is tolerated.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}

// compareLoose orders two versions by semver when both parse and by a
// numeric-aware string comparison otherwise.
func compareLoose(a, b string) int {
	if cmp, err := CompareVersions(a, b); err == nil {
		return cmp
	}
	return naturalCompare(a, b)
}

// SortVersions returns a sorted copy of versions. SortLatest and SortSemver
// put the newest version first; SortOldest puts it last.
func SortVersions(versions []TemplateVersion, order SortOrder) []TemplateVersion {
	sorted := make([]TemplateVersion, len(versions))
	copy(sorted, versions)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareLoose(sorted[i].Version, sorted[j].Version)
		if order == SortOldest {
			return cmp < 0
		}
		return cmp > 0
	})
	return sorted
}

// LatestVersion returns the first listed version, or "" when there is none.
// Manifests list their newest release first.
func LatestVersion(m *TemplateManifest) string {
	if m == nil || len(m.Versions) == 0 {
		return ""
	}
	return m.Versions[0].Version
}

// Changelog renders the release notes of version as markdown. An empty
// version means the manifest's current version.
func Changelog(m *TemplateManifest, version string) string {
	if m == nil {
		return "No changelog available"
	}

	target := version
	if target == "" {
		target = m.CurrentVersion
	}

	var v *TemplateVersion
	for i := range m.Versions {
		if m.Versions[i].Version == target {
			v = &m.Versions[i]
			break
		}
	}
	if v == nil {
		return fmt.Sprintf("Version %s not found", target)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s - %s\n\n", v.Version, v.ReleaseDate)

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "### %s\n", title)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}
	section("Breaking Changes", v.BreakingChanges)
	section("Features", v.Features)
	section("Bug Fixes", v.Bugfixes)

	b.WriteString("### Changes\n")
	for _, change := range v.Changelog {
		fmt.Fprintf(&b, "- %s\n", change)
	}

	return b.String()
}

// Create writes an initial manifest for a template. It refuses to replace an
// existing manifest.
func Create(fs afero.Fs, templateDir, name, initialVersion string, now time.Time) (*TemplateManifest, error) {
	if initialVersion == "" {
		initialVersion = "1.0.0"
	}

	path := PathIn(templateDir)
	if ok, _ := afero.Exists(fs, path); ok {
		return nil, fmt.Errorf("manifest %s already exists", path)
	}

	m := &TemplateManifest{
		Name:           name,
		CurrentVersion: initialVersion,
		Versions: []TemplateVersion{{
			Version:     initialVersion,
			ReleaseDate: now.UTC().Format(time.DateOnly),
			Changelog:   []string{"Initial release"},
		}},
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, os.FileMode(0644)); err != nil {
		return nil, fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return m, nil
}

// naturalCompare compares strings treating digit runs as numbers, so
// "1.10" sorts after "1.9".
func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		ad, ar := leadingDigits(a)
		bd, br := leadingDigits(b)
		if ad != "" && bd != "" {
			an, _ := strconv.Atoi(ad)
			bn, _ := strconv.Atoi(bd)
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			a, b = ar, br
			continue
		}
		if a[0] != b[0] {
			if a[0] < b[0] {
				return -1
			}
			return 1
		}
		a, b = a[1:], b[1:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func leadingDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
