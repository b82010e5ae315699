package session_test

import (
	"context"
	"testing"

	"github.com/yaklabco/srcedit/internal/javatest"
	"github.com/yaklabco/srcedit/pkg/component"
	"github.com/yaklabco/srcedit/pkg/parser/treesitter"
	"github.com/yaklabco/srcedit/pkg/session"
)

// Benchmark parsing the demo view.
func BenchmarkParseJava(b *testing.B) {
	parser := treesitter.NewJava()
	src := []byte(javatest.DemoFile)
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		tree, err := parser.Parse(ctx, src)
		if err != nil || tree == nil {
			b.Fail()
		}
	}
}

// Benchmark a full add transformation, including the reparse check.
func BenchmarkTransformAdd(b *testing.B) {
	parser := treesitter.NewJava()
	src := javatest.DemoFile
	ctx := context.Background()

	create := javatest.LineOf(b, src, `Button sayHello2 = new Button("Say hello2");`)
	attach := javatest.LineOf(b, src, "add(name, sayHello,")
	build := component.AddComponent(create, attach, component.After, component.Button, "Click me")

	b.ResetTimer()
	for range b.N {
		result, err := session.Transform(ctx, parser, src, build)
		if err != nil || result == nil {
			b.Fail()
		}
	}
}
