package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the config files found for one invocation, lowest precedence first.
// Empty fields mean nothing was found at that layer.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

// ProjectConfigFiles are the project config names, most preferred first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{
	".srcedit.yml",
	".srcedit.yaml",
	"srcedit.yml",
	"srcedit.yaml",
}

// boundaryMarkers end the upward project config search. Directories mark a
// repository checkout; files mark the root of a Maven or Gradle build.
//
//nolint:gochecknoglobals // Read-only lookup table.
var boundaryMarkers = []struct {
	name string
	dir  bool
}{
	{".git", true},
	{".hg", true},
	{".svn", true},
	{"pom.xml", false},
	{"settings.gradle", false},
	{"settings.gradle.kts", false},
}

// DiscoverPaths collects the system, user and project config files that apply to workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstConfigIn(systemConfigDir()),
		User:    firstConfigIn(userConfigDir()),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return "/etc/srcedit"
	}
	base := os.Getenv("ProgramData")
	if base == "" {
		base = `C:\ProgramData`
	}
	return filepath.Join(base, "srcedit")
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "srcedit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "srcedit")
}

// firstConfigIn returns dir/config.yaml or dir/config.yml, whichever exists first.
func firstConfigIn(dir string) string {
	if dir == "" {
		return ""
	}
	return firstExisting(dir, []string{"config.yaml", "config.yml"})
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if isRegularFile(candidate) {
			return candidate
		}
	}
	return ""
}

// FindProjectConfig walks from startDir toward the filesystem root and returns
// the first project config file it sees. The walk ends without a result at a
// repository or build root, at the home directory, or at the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if found := firstExisting(dir, ProjectConfigFiles); found != "" {
			return found, nil
		}

		parent := filepath.Dir(dir)
		if isBoundary(dir) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isBoundary(dir string) bool {
	for _, marker := range boundaryMarkers {
		info, err := os.Stat(filepath.Join(dir, marker.name))
		if err == nil && info.IsDir() == marker.dir {
			return true
		}
	}
	return false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
