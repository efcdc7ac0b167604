package parse

import (
	"testing"

	"github.com/cwbudde/gdcst/pkg/cst"
	"github.com/cwbudde/gdcst/pkg/printer"
	"github.com/cwbudde/gdcst/pkg/settings"
	"github.com/cwbudde/gdcst/pkg/visitor"
)

// Hard keywords are still valid attribute names immediately after `@`
// (spec.md §4.7's `@abstract`, `@onready`, `@export`, ...); LookupIdent
// never returns Ident for them, so parseAttribute must accept a keyword
// token here, not just token.Ident.
func TestParseAttributeAcceptsKeywordNames(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"abstract", "@abstract\nclass_name Foo\n"},
		{"onready", "@onready\nextends Node\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.src, settings.New())
			file := p.ParseFile()
			if err := p.Err(); err != nil {
				t.Fatalf("Err() = %v, want nil", err)
			}
			if len(file.Header) == 0 {
				t.Fatalf("Header is empty, want an Attribute first")
			}
			attr, ok := file.Header[0].(*cst.Attribute)
			if !ok {
				t.Fatalf("Header[0] = %T, want *cst.Attribute", file.Header[0])
			}
			if attr.Name.Text != tt.name {
				t.Fatalf("Name = %q, want %q", attr.Name.Text, tt.name)
			}

			for _, tok := range visitor.InvalidTokens(file) {
				t.Errorf("unexpected invalid token %q at %s", tok.Text, tok.Pos)
			}
			if got := printer.Serialize(file); got != tt.src {
				t.Fatalf("Serialize = %q, want %q", got, tt.src)
			}
		})
	}
}
