package sqltype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWireType_Total(t *testing.T) {
	tests := []struct {
		in   SqlType
		want WireType
	}{
		{SqlType{Kind: Bool}, WireBool},
		{NewChar(10), WireChar},
		{NewVarChar(10), WireVarChar},
		{SqlType{Kind: Decimal}, WireDecimal},
		{SqlType{Kind: SmallInt}, WireSmallInt},
		{SqlType{Kind: Integer}, WireInteger},
		{SqlType{Kind: BigInt}, WireBigInt},
		{SqlType{Kind: Real}, WireReal},
		{SqlType{Kind: DoublePrecision}, WireDoublePrecision},
		{SqlType{Kind: Time}, WireTime},
		{SqlType{Kind: TimeWithTimeZone}, WireTimeWithTimeZone},
		{SqlType{Kind: Timestamp}, WireTimestamp},
		{SqlType{Kind: TimestampWithTimeZone}, WireTimestampWithTimeZone},
		{SqlType{Kind: Date}, WireDate},
		{SqlType{Kind: Interval}, WireInterval},
	}

	assert.Len(t, tests, 15, "every SqlType variant must be exercised")

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToWireType(tt.in))
	}
}

func TestConstraintOf_Supported(t *testing.T) {
	for _, ty := range []SqlType{
		{Kind: SmallInt}, {Kind: Integer}, {Kind: BigInt}, NewChar(5), NewVarChar(5),
	} {
		c, err := ConstraintOf(ty)
		assert.NoError(t, err)
		assert.NotNil(t, c)
	}
}

func TestConstraintOf_Unsupported(t *testing.T) {
	_, err := ConstraintOf(SqlType{Kind: Decimal})
	var unsupported *ErrUnsupportedType
	assert.True(t, errors.As(err, &unsupported))
}

func TestCodecOf_SupportedMatchesConstraintOf(t *testing.T) {
	supported := []SqlType{
		{Kind: SmallInt}, {Kind: Integer}, {Kind: BigInt}, NewChar(5), NewVarChar(5),
	}
	unsupported := []SqlType{
		{Kind: Bool}, {Kind: Decimal}, {Kind: Real}, {Kind: DoublePrecision},
		{Kind: Time}, {Kind: TimeWithTimeZone}, {Kind: Timestamp},
		{Kind: TimestampWithTimeZone}, {Kind: Date}, {Kind: Interval},
	}

	for _, ty := range supported {
		_, cErr := ConstraintOf(ty)
		_, dErr := CodecOf(ty)
		assert.NoError(t, cErr)
		assert.NoError(t, dErr)
	}

	for _, ty := range unsupported {
		_, cErr := ConstraintOf(ty)
		_, dErr := CodecOf(ty)
		assert.Error(t, cErr)
		assert.Error(t, dErr)
	}
}
