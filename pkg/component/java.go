package component

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/yaklabco/srcedit/pkg/locate"
	"github.com/yaklabco/srcedit/pkg/syntax"
)

var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "var": true, "record": true, "yield": true,
}

// javaString renders s as a Java string literal.
func javaString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// construction renders new T("a", "b").
func construction(typ Type, args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = javaString(a)
	}
	return "new " + typ.SimpleName() + "(" + strings.Join(quoted, ", ") + ")"
}

// declaration renders T name = new T(args) without the semicolon.
func declaration(typ Type, name string, args []string) string {
	return typ.SimpleName() + " " + name + " = " + construction(typ, args)
}

// variableName derives a local variable name: the single constructor
// argument in lower camel case, otherwise the lower-cased class name. A
// number is appended while the name collides with an identifier in tree.
func variableName(tree *syntax.Tree, typ Type, args []string) string {
	base := ""
	if len(args) == 1 {
		base = identifier(strcase.ToLowerCamel(args[0]))
	}
	if base == "" || javaKeywords[base] {
		base = strcase.ToLowerCamel(typ.SimpleName())
	}

	taken := locate.Identifiers(tree)
	if !taken[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate
		}
	}
}

// identifier drops runes not allowed in a Java identifier. A leading digit
// makes the result unusable and yields "".
func identifier(s string) string {
	out := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			return r
		}
		return -1
	}, s)
	if out == "" || unicode.IsDigit([]rune(out)[0]) {
		return ""
	}
	return out
}

// indentUnit guesses one level of indentation from the first indented line.
func indentUnit(tree *syntax.Tree) string {
	for line := 1; line <= tree.Lines.LineCount(); line++ {
		indent := tree.Lines.Indentation(line)
		if indent == "" || strings.TrimSpace(tree.Lines.LineContent(line)) == "" {
			continue
		}
		if indent[0] == '\t' {
			return "\t"
		}
		return "    "
	}
	return "    "
}

// packageName returns the declared package of the compilation unit.
func packageName(tree *syntax.Tree) string {
	decl := locate.PackageDeclaration(tree)
	if decl == nil {
		return ""
	}
	text := strings.TrimSpace(tree.Text(decl))
	text = strings.TrimPrefix(text, "package")
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")
	return strings.Join(strings.Fields(text), "")
}
