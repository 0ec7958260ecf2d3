package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"100", 100},
		{"0.5", 0.5},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-5", -5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.input), "input %q", tt.input)
	}
}

func TestQuoteSimpleMode(t *testing.T) {
	b := Quote("100", ModeSimple, DefaultFees())
	assert.Equal(t, 100.0, b.Amount)
	assert.Equal(t, 0.003, b.NetworkFee)
	assert.Equal(t, 0.0, b.PlatformFee)
	assert.Equal(t, 100.003, b.Total)
}

func TestQuoteFullMode(t *testing.T) {
	b := Quote("100", ModeFull, DefaultFees())
	assert.Equal(t, 100.0, b.Amount)
	assert.Equal(t, 0.003, b.NetworkFee)
	assert.Equal(t, 2.00, b.PlatformFee)
	assert.Equal(t, 102.003, b.Total)
}

func TestQuoteEmptyInput(t *testing.T) {
	b := Quote("", ModeFull, DefaultFees())
	assert.Equal(t, 0.0, b.Amount)
	assert.Equal(t, 0.0, b.PlatformFee)
	assert.Equal(t, 0.003, b.Total)

	b = Quote("not-a-number", ModeSimple, DefaultFees())
	assert.Equal(t, 0.0, b.Amount)
	assert.Equal(t, 0.003, b.Total)
}

func TestQuoteMonotonic(t *testing.T) {
	// 费用参数固定时，金额增大 total 严格增大
	inputs := []string{"1", "10", "99.5", "100", "1000"}
	for _, mode := range []Mode{ModeSimple, ModeFull} {
		prev := Quote("0.5", mode, DefaultFees()).Total
		for _, in := range inputs {
			cur := Quote(in, mode, DefaultFees()).Total
			assert.Greater(t, cur, prev, "mode %s input %s", mode, in)
			prev = cur
		}
	}
}

func TestQuoteCustomFees(t *testing.T) {
	fees := Fees{NetworkFee: 0.01, PlatformFeeRate: 0.05}
	b := Quote("200", ModeFull, fees)
	assert.Equal(t, 10.0, b.PlatformFee)
	assert.Equal(t, 210.01, b.Total)
}

func TestCanSubmit(t *testing.T) {
	assert.True(t, CanSubmit("1"))
	assert.True(t, CanSubmit("0.001"))
	assert.False(t, CanSubmit("0"))
	assert.False(t, CanSubmit(""))
	assert.False(t, CanSubmit("-10"))
	assert.False(t, CanSubmit("abc"))
}
