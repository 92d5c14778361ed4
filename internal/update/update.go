// Package update checks for and installs newer mathops releases.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

// Repository is the GitHub slug releases are published under.
const Repository = "pengelbrecht/mathops"

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	InstallDirect InstallMethod = iota
	InstallHomebrew
)

// ErrDevBuild is returned when asked to update a binary built without a version.
var ErrDevBuild = errors.New("development build cannot be updated")

// Release is the subset of a published release callers need.
type Release struct {
	Version   string
	AssetURL  string
	AssetName string
}

// DetectInstallMethod inspects the running executable's location.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallDirect
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return installMethodForPath(exe)
}

func installMethodForPath(exe string) InstallMethod {
	p := filepath.ToSlash(exe)
	if strings.Contains(p, "/Cellar/") || strings.Contains(p, "/homebrew/") || strings.Contains(p, "/linuxbrew/") {
		return InstallHomebrew
	}
	return InstallDirect
}

// IsDevVersion reports whether current carries no release version.
func IsDevVersion(current string) bool {
	v := strings.TrimSpace(current)
	return v == "" || v == "dev" || strings.HasSuffix(v, "-dev")
}

// CheckForUpdate returns the latest release and whether it is newer than current.
func CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	if IsDevVersion(current) {
		return nil, false, ErrDevBuild
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	rel := &Release{
		Version:   latest.Version(),
		AssetURL:  latest.AssetURL,
		AssetName: latest.AssetName,
	}
	if latest.LessOrEqual(strings.TrimPrefix(current, "v")) {
		return rel, false, nil
	}
	return rel, true, nil
}

// Update replaces the running executable with the latest release when it is
// newer than current. It reports whether an install happened.
func Update(ctx context.Context, current string) (*Release, bool, error) {
	rel, hasUpdate, err := CheckForUpdate(ctx, current)
	if err != nil || !hasUpdate {
		return rel, false, err
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, false, fmt.Errorf("locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, rel.AssetURL, rel.AssetName, exe); err != nil {
		return nil, false, fmt.Errorf("install %s: %w", rel.Version, err)
	}
	return rel, true, nil
}
