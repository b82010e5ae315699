package component

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sourceRoots are searched in order for a class's source file.
var sourceRoots = []string{
	filepath.Join("src", "main", "java"),
	filepath.Join("src", "test", "java"),
}

// SourceFile maps a fully qualified class name to its source file under a
// Maven-style project rooted at projectDir. Nested classes resolve to the
// file of their outermost class.
func SourceFile(projectDir, className string) (string, error) {
	if className == "" {
		return "", fmt.Errorf("%w: empty class name", ErrNoTarget)
	}
	if i := strings.IndexByte(className, '$'); i >= 0 {
		className = className[:i]
	}

	rel := filepath.FromSlash(strings.ReplaceAll(className, ".", "/")) + ".java"
	for _, root := range sourceRoots {
		path := filepath.Join(projectDir, root, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: no source file for %s under %s", ErrNoTarget, className, projectDir)
}
