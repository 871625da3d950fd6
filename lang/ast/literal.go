package ast

import (
	"encoding/json"
	"fmt"
)

// Literal is the tagged union of literal values the language supports: a
// field element (encoded as a signed 32-bit integer in the source) or a
// boolean. Use FieldLiteral/BoolLiteral to construct one; inspect Type before
// reading FieldVal/BoolVal.
type Literal struct {
	Type     Type
	FieldVal int32
	BoolVal  bool
}

// FieldLiteral constructs a Field literal.
func FieldLiteral(n int32) Literal { return Literal{Type: Field, FieldVal: n} }

// BoolLiteral constructs a Boolean literal.
func BoolLiteral(b bool) Literal { return Literal{Type: Boolean, BoolVal: b} }

func (l Literal) String() string {
	switch l.Type {
	case Field:
		return fmt.Sprintf("%d", l.FieldVal)
	case Boolean:
		return fmt.Sprintf("%t", l.BoolVal)
	default:
		return "<invalid literal>"
	}
}

type jsonLiteral struct {
	Type  string `json:"type"`
	Field int32  `json:"field,omitempty"`
	Bool  bool   `json:"bool,omitempty"`
}

// MarshalJSON implements a tagged-union encoding for Literal, standing in for
// the original Rust source's #[derive(Serialize)] on its Literal enum (Go has
// no derive macros, so sum types round-trip through an explicit tag field).
func (l Literal) MarshalJSON() ([]byte, error) {
	switch l.Type {
	case Field:
		return json.Marshal(jsonLiteral{Type: "field", Field: l.FieldVal})
	case Boolean:
		return json.Marshal(jsonLiteral{Type: "bool", Bool: l.BoolVal})
	default:
		return nil, fmt.Errorf("ast: cannot marshal literal with invalid type %d", uint8(l.Type))
	}
}

func (l *Literal) UnmarshalJSON(data []byte) error {
	var jl jsonLiteral
	if err := json.Unmarshal(data, &jl); err != nil {
		return err
	}
	switch jl.Type {
	case "field":
		*l = FieldLiteral(jl.Field)
	case "bool":
		*l = BoolLiteral(jl.Bool)
	default:
		return fmt.Errorf("ast: unknown literal type %q", jl.Type)
	}
	return nil
}
