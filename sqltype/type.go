// Package sqltype defines the catalog of SQL column types, the mapping
// from each to its wire-protocol identifier, and the constructors for
// the per-type constraint and codec implementations.
package sqltype

import (
	"fmt"

	"github.com/mstgnz/sqlengine/internal/wiretype"
)

// Kind identifies a SQL column type. It is the closed set the rest of
// the engine switches over; SqlType pairs a Kind with the declared
// length for the variants that carry one.
type Kind int

const (
	Bool Kind = iota
	Char
	VarChar
	Decimal
	SmallInt
	Integer
	BigInt
	Real
	DoublePrecision
	Time
	TimeWithTimeZone
	Timestamp
	TimestampWithTimeZone
	Date
	Interval
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "BOOL"
	case Char:
		return "CHAR"
	case VarChar:
		return "VARCHAR"
	case Decimal:
		return "DECIMAL"
	case SmallInt:
		return "SMALLINT"
	case Integer:
		return "INTEGER"
	case BigInt:
		return "BIGINT"
	case Real:
		return "REAL"
	case DoublePrecision:
		return "DOUBLE PRECISION"
	case Time:
		return "TIME"
	case TimeWithTimeZone:
		return "TIME WITH TIME ZONE"
	case Timestamp:
		return "TIMESTAMP"
	case TimestampWithTimeZone:
		return "TIMESTAMP WITH TIME ZONE"
	case Date:
		return "DATE"
	case Interval:
		return "INTERVAL"
	default:
		return "UNKNOWN"
	}
}

// SqlType is a value-typed, structurally-comparable tag for a column's
// declared SQL type. Length is the declared column width in characters;
// it is meaningful only for Char and VarChar and is zero otherwise.
type SqlType struct {
	Kind   Kind
	Length int
}

func (t SqlType) String() string {
	if t.Kind == Char || t.Kind == VarChar {
		return fmt.Sprintf("%s(%d)", t.Kind, t.Length)
	}
	return t.Kind.String()
}

// NewChar and NewVarChar are convenience constructors carrying a
// declared length; every other SqlType is just SqlType{Kind: k}.
func NewChar(length int) SqlType    { return SqlType{Kind: Char, Length: length} }
func NewVarChar(length int) SqlType { return SqlType{Kind: VarChar, Length: length} }

// WireType is the client-protocol type identifier. It carries no
// length parameter; it is obtained from a SqlType by ToWireType.
type WireType int

const (
	WireBool WireType = iota
	WireChar
	WireVarChar
	WireDecimal
	WireSmallInt
	WireInteger
	WireBigInt
	WireReal
	WireDoublePrecision
	WireTime
	WireTimeWithTimeZone
	WireTimestamp
	WireTimestampWithTimeZone
	WireDate
	WireInterval
)

func (w WireType) String() string {
	return wiretype.Name(int(w))
}

// ToWireType maps every SqlType to its WireType. It is total: every
// Kind has an arm, and length parameters are dropped.
func ToWireType(t SqlType) WireType {
	switch t.Kind {
	case Bool:
		return WireBool
	case Char:
		return WireChar
	case VarChar:
		return WireVarChar
	case Decimal:
		return WireDecimal
	case SmallInt:
		return WireSmallInt
	case Integer:
		return WireInteger
	case BigInt:
		return WireBigInt
	case Real:
		return WireReal
	case DoublePrecision:
		return WireDoublePrecision
	case Time:
		return WireTime
	case TimeWithTimeZone:
		return WireTimeWithTimeZone
	case Timestamp:
		return WireTimestamp
	case TimestampWithTimeZone:
		return WireTimestampWithTimeZone
	case Date:
		return WireDate
	case Interval:
		return WireInterval
	default:
		panic(fmt.Sprintf("sqltype: ToWireType: unhandled kind %v", t.Kind))
	}
}

// ErrUnsupportedType is a system-level, programmer-visible signal that
// ConstraintOf or CodecOf was called with a SqlType the catalog does
// not yet implement. It is never translated into a QueryError.
type ErrUnsupportedType struct {
	Type SqlType
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("sqltype: unsupported type %s", e.Type)
}
