// Package langdetect identifies the language of a source file so sessions can
// refuse files the Java parser would misread.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Java is the enry name of the only language srcedit edits.
const Java = "Java"

// Detect returns the enry language name for a file, using the file name
// first and falling back to the content classifier. The empty string means
// the language could not be determined.
func Detect(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang
	}

	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return lang
	}

	if len(content) == 0 {
		return ""
	}

	lang, _ := enry.GetLanguageByClassifier(content, []string{Java, "Kotlin", "Groovy", "Scala", "C#"})
	return lang
}

// IsJava reports whether the file looks like Java source.
// Vendored and generated files are never treated as editable Java.
func IsJava(path string, content []byte) bool {
	if enry.IsVendor(path) || enry.IsGenerated(path, content) {
		return false
	}
	if strings.EqualFold(filepath.Ext(path), ".java") {
		return true
	}
	return Detect(path, content) == Java
}
