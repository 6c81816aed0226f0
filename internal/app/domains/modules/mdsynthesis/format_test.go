package mdsynthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTonnage(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0t"},
		{850, "850t"},
		{999.4, "999t"},
		{1000, "1.000千吨"},
		{1250, "1.250千吨"},
		{12345.6, "12.346千吨"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTonnage(tc.in))
	}
}

func TestFormatDueHint(t *testing.T) {
	assert.Equal(t, "最紧急订单已逾期2天", FormatDueHint(-2))
	assert.Equal(t, "最紧急订单今日到期", FormatDueHint(0))
	assert.Equal(t, "最紧急订单3天后到期", FormatDueHint(3))
}
