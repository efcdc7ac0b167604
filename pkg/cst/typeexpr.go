package cst

import "github.com/cwbudde/gdcst/pkg/token"

// TypeKind is the closed set of type-annotation shapes.
type TypeKind int

const (
	TypeBad TypeKind = iota
	TypeNamed
	TypeGeneric
)

// TypeNode is implemented by every type-annotation node.
type TypeNode interface {
	Node
	TypeKind() TypeKind
}

type typeBase struct {
	base
	kind TypeKind
}

func (t *typeBase) TypeKind() TypeKind { return t.kind }

// NamedType is a plain or dotted type name: Foo, Foo.Bar, int, void,
// Variant.
type NamedType struct {
	typeBase
	Name []token.Token // one element per dotted segment
}

func NewNamedType(name []token.Token, form []Node) *NamedType {
	n := &NamedType{Name: name}
	n.kind = TypeNamed
	n.SetForm(form)
	return n
}

// GenericType is a parameterized container type: Array[T], Dictionary[K, V].
type GenericType struct {
	typeBase
	Base TypeNode
	Args []TypeNode
}

func NewGenericType(base TypeNode, args []TypeNode, form []Node) *GenericType {
	n := &GenericType{Base: base, Args: args}
	n.kind = TypeGeneric
	n.SetForm(form)
	return n
}

// BadType wraps invalid tokens consumed while looking for a type name that
// never materialized.
type BadType struct {
	typeBase
}

func NewBadType(form []Node) *BadType {
	n := &BadType{}
	n.kind = TypeBad
	n.SetForm(form)
	return n
}
