package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lingges29/mypark/internal/domain"
)

func TestRedeemablePoints(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		balance   int
		want      int
	}{
		{"exact multiple within balance", 30, 50, 30},
		{"rounded down to multiple of ten", 37, 50, 30},
		{"more than balance redeems nothing", 60, 50, 0},
		{"negative redeems nothing", -10, 50, 0},
		{"zero", 0, 50, 0},
		{"below one unit", 9, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.RedeemablePoints(tt.requested, tt.balance))
		})
	}
}

func TestDiscountForPoints(t *testing.T) {
	assert.Equal(t, 0.0, domain.DiscountForPoints(0))
	assert.Equal(t, 1.0, domain.DiscountForPoints(10))
	assert.Equal(t, 3.0, domain.DiscountForPoints(30))
}

func TestEarnedPoints(t *testing.T) {
	assert.Equal(t, 7, domain.EarnedPoints(7.0))
	assert.Equal(t, 7, domain.EarnedPoints(7.9))
	assert.Equal(t, 0, domain.EarnedPoints(0))
	assert.Equal(t, 0, domain.EarnedPoints(-1))
}
