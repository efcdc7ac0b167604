// Package jsonexport renders a parsed cst.Node tree as JSON, backing
// `gdcst dump` and `gdcst query` (a gjson-path lookup into the
// exported tree). Rather than a one-shot encoding/json struct marshal, the
// tree is assembled incrementally with sjson.SetRaw/sjson.Set — a closer
// match to the dynamic, per-Go-type shape of the CST's Node interface than
// a fixed set of json struct tags would give us — and queried back out
// with gjson, the same library pairing the teacher's dependency graph
// already carries (indirectly, via its own fixture tooling).
package jsonexport

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/gdcst/pkg/cst"
)

// Export renders n (and its full form, recursively) as a JSON document.
func Export(n cst.Node) (string, error) {
	return nodeJSON(n)
}

func nodeJSON(n cst.Node) (string, error) {
	if n == nil {
		return "null", nil
	}

	if leaf, ok := n.(*cst.Leaf); ok {
		js := "{}"
		var err error
		if js, err = sjson.Set(js, "leaf", true); err != nil {
			return "", err
		}
		if js, err = sjson.Set(js, "kind", leaf.Tok.Kind.String()); err != nil {
			return "", err
		}
		if js, err = sjson.Set(js, "text", leaf.Tok.Text); err != nil {
			return "", err
		}
		if js, err = sjson.Set(js, "pos.line", leaf.Tok.Pos.Line); err != nil {
			return "", err
		}
		if js, err = sjson.Set(js, "pos.column", leaf.Tok.Pos.Column); err != nil {
			return "", err
		}
		if leaf.Invalid() {
			if js, err = sjson.Set(js, "invalid", true); err != nil {
				return "", err
			}
		}
		return js, nil
	}

	js := "{}"
	var err error
	if js, err = sjson.Set(js, "type", fmt.Sprintf("%T", n)); err != nil {
		return "", err
	}
	if js, err = sjson.SetRaw(js, "form", "[]"); err != nil {
		return "", err
	}
	for _, child := range n.Form() {
		childJSON, err := nodeJSON(child)
		if err != nil {
			return "", err
		}
		if js, err = sjson.SetRaw(js, "form.-1", childJSON); err != nil {
			return "", err
		}
	}
	return js, nil
}

// Query runs a gjson path expression against an exported document, e.g.
// "form.2.type" or "form.#(type==\"*cst.ClassNameDecl\")".
func Query(doc, path string) gjson.Result {
	return gjson.Get(doc, path)
}
