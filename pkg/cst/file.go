package cst

import "github.com/cwbudde/gdcst/pkg/token"

// Attribute is a pre-header annotation: `@identifier(args?)` (spec.md
// §4.7), e.g. `@export`, `@export_range(0, 100)`, `@abstract`,
// `@icon("res://foo.svg")`.
type Attribute struct {
	base
	At   token.Token
	Name token.Token
	Args []*CallArg // nil when the attribute takes no argument list
}

func NewAttribute(at, name token.Token, args []*CallArg, form []Node) *Attribute {
	a := &Attribute{At: at, Name: name, Args: args}
	a.SetForm(form)
	return a
}

// ToolDecl is the bare `tool` header keyword.
type ToolDecl struct {
	base
	Tok token.Token
}

func NewToolDecl(tok token.Token, form []Node) *ToolDecl {
	n := &ToolDecl{Tok: tok}
	n.SetForm(form)
	return n
}

// ClassNameDecl is `class_name Name`. Appears at most once (spec.md §4.7).
type ClassNameDecl struct {
	base
	Tok  token.Token
	Name token.Token
}

func NewClassNameDecl(tok, name token.Token, form []Node) *ClassNameDecl {
	n := &ClassNameDecl{Tok: tok, Name: name}
	n.SetForm(form)
	return n
}

// ExtendsDecl is `extends Name` or `extends "res://path.gd"`. Appears at
// most once (spec.md §4.7); accepts either a type name or a string path.
type ExtendsDecl struct {
	base
	Tok      token.Token
	TypeName TypeNode // set when extends names a type
	Path     *token.Token // set when extends names a string path
}

func NewExtendsDecl(tok token.Token, typeName TypeNode, path *token.Token, form []Node) *ExtendsDecl {
	n := &ExtendsDecl{Tok: tok, TypeName: typeName, Path: path}
	n.SetForm(form)
	return n
}

// FileNode is the root of a parsed GDScript source file: an ordered header
// (attributes, tool, class_name, extends — spec.md §4.7) followed by an
// ordered member list.
type FileNode struct {
	base
	Header  []Node // *Attribute, *ToolDecl, *ClassNameDecl, *ExtendsDecl, in source order
	Members []Stmt
}

func NewFileNode(header []Node, members []Stmt, form []Node) *FileNode {
	n := &FileNode{Header: header, Members: members}
	n.SetForm(form)
	return n
}
