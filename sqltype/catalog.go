package sqltype

import (
	"github.com/mstgnz/sqlengine/sqltype/codec"
	"github.com/mstgnz/sqlengine/sqltype/constraint"
)

// ConstraintOf returns the Constraint for a SqlType. It is defined only
// for SmallInt, Integer, BigInt, Char, and VarChar; every other Kind
// returns ErrUnsupportedType, a system-level "not yet implemented"
// signal that must never be surfaced to a SQL client as a query error.
func ConstraintOf(t SqlType) (constraint.Constraint, error) {
	switch t.Kind {
	case SmallInt:
		return constraint.Int{Width: constraint.WidthSmallInt}, nil
	case Integer:
		return constraint.Int{Width: constraint.WidthInteger}, nil
	case BigInt:
		return constraint.Int{Width: constraint.WidthBigInt}, nil
	case Char, VarChar:
		return constraint.Str{N: t.Length}, nil
	default:
		return nil, &ErrUnsupportedType{Type: t}
	}
}

// CodecOf returns the Codec for a SqlType, under the same partiality as
// ConstraintOf: every SqlType with a Constraint has a Codec, and vice
// versa.
func CodecOf(t SqlType) (codec.Codec, error) {
	switch t.Kind {
	case SmallInt:
		return codec.Int{Bytes: 2}, nil
	case Integer:
		return codec.Int{Bytes: 4}, nil
	case BigInt:
		return codec.Int{Bytes: 8}, nil
	case Char, VarChar:
		return codec.Str{}, nil
	default:
		return nil, &ErrUnsupportedType{Type: t}
	}
}
