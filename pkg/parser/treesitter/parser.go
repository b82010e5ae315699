// Package treesitter provides a syntax.Tree parser backed by tree-sitter grammars.
package treesitter

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/yaklabco/srcedit/pkg/syntax"
)

// LanguageJava identifies the Java grammar.
const LanguageJava = "java"

// typeError is the node type tree-sitter uses for unparseable regions.
const typeError = "ERROR"

// ErrParse is returned when tree-sitter produces no tree at all.
var ErrParse = errors.New("tree-sitter parse failed")

// Parser converts source text into a syntax.Tree.
// A Parser is safe for concurrent use: each call creates its own
// tree-sitter parser, which is not.
type Parser struct {
	name string
	lang *sitter.Language
}

// New creates a parser for the given tree-sitter language.
func New(name string, lang *sitter.Language) *Parser {
	return &Parser{name: name, lang: lang}
}

// NewJava creates a parser for Java sources.
func NewJava() *Parser {
	return New(LanguageJava, java.GetLanguage())
}

// Language returns the grammar name.
func (p *Parser) Language() string {
	return p.name
}

// Parse converts raw source bytes into a syntax.Tree.
//
// The method:
//  1. Checks for context cancellation.
//  2. Parses content with tree-sitter.
//  3. Converts every named node into a syntax.Node, keeping field names.
//  4. Releases the tree-sitter tree; the result holds no cgo memory.
//
// Syntax errors do not fail the parse: the tree is returned with HasErrors set.
func (p *Parser) Parse(ctx context.Context, content []byte) (*syntax.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.lang)

	tsTree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if tsTree == nil {
		return nil, ErrParse
	}
	defer tsTree.Close()

	source := string(content)
	conv := converter{source: source, lines: syntax.BuildLines(source)}

	rootNode := tsTree.RootNode()
	cursor := sitter.NewTreeCursor(rootNode)
	defer cursor.Close()

	root := conv.convert(cursor, "")

	tree := syntax.NewTree(source, root)
	tree.HasErrors = rootNode.HasError()

	return tree, nil
}

type converter struct {
	source string
	lines  syntax.LineIndex
}

// convert builds the node under the cursor and its named descendants.
// The cursor is left where it started.
func (c *converter) convert(cursor *sitter.TreeCursor, field string) *syntax.Node {
	tsNode := cursor.CurrentNode()

	node := &syntax.Node{
		Type:      tsNode.Type(),
		Field:     field,
		StartByte: int(tsNode.StartByte()),
		EndByte:   int(tsNode.EndByte()),
		Error:     tsNode.IsMissing() || tsNode.Type() == typeError,
	}
	node.Span = c.span(node.StartByte, node.EndByte)

	if cursor.GoToFirstChild() {
		for {
			if cursor.CurrentNode().IsNamed() {
				node.Children = append(node.Children, c.convert(cursor, cursor.CurrentFieldName()))
			}
			if !cursor.GoToNextSibling() {
				break
			}
		}
		cursor.GoToParent()
	}

	return node
}

// span converts a byte range to an inclusive rune-column span.
func (c *converter) span(start, end int) syntax.Span {
	begin := c.lines.LineAt(start)
	if end <= start {
		return syntax.Span{Begin: begin, End: begin}
	}
	_, size := utf8.DecodeLastRuneInString(c.source[start:end])
	return syntax.Span{Begin: begin, End: c.lines.LineAt(end - size)}
}
