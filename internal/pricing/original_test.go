package pricing

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolveOriginalInstallmentAmount(t *testing.T) {
	tests := []struct {
		name              string
		installmentAmount string
		installments      []Installment
		installmentCount  int
		promotion         decimal.NullDecimal
		want              string
	}{
		{
			name:              "no promotion returns the installment amount",
			installmentAmount: "62.50",
			installments:      schedule("62.50", "62.50", "62.50", "62.50"),
			installmentCount:  4,
			promotion:         decimal.NullDecimal{},
			want:              "62.50",
		},
		{
			name:              "zero promotion returns the installment amount",
			installmentAmount: "62.50",
			installments:      schedule("62.50", "62.50", "62.50", "62.50"),
			installmentCount:  4,
			promotion:         some("0"),
			want:              "62.50",
		},
		{
			name:              "promotion added back to the plan total",
			installmentAmount: "50",
			installments:      schedule("50", "50", "50", "50"),
			installmentCount:  4,
			promotion:         some("40"),
			want:              "60",
		},
		{
			name:              "fractional total rounds up to the cent",
			installmentAmount: "33.34",
			installments:      schedule("33.33", "33.34", "33.34"),
			installmentCount:  3,
			promotion:         some("0.02"),
			want:              "33.35",
		},
		{
			name:              "less than half a cent still rounds up",
			installmentAmount: "20",
			installments:      schedule("20", "20", "20"),
			installmentCount:  3,
			promotion:         some("0.01"),
			want:              "20.01",
		},
		{
			name:              "missing schedule spreads the promotion over the installment",
			installmentAmount: "25",
			installments:      nil,
			installmentCount:  3,
			promotion:         some("10"),
			want:              "28.34",
		},
		{
			name:              "empty schedule is still the detailed path",
			installmentAmount: "25",
			installments:      []Installment{},
			installmentCount:  4,
			promotion:         some("10"),
			want:              "2.5",
		},
		{
			name:              "non-positive count is left unchanged",
			installmentAmount: "25",
			installments:      schedule("25"),
			installmentCount:  0,
			promotion:         some("10"),
			want:              "25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveOriginalInstallmentAmount(dec(tt.installmentAmount), tt.installments, tt.installmentCount, tt.promotion)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("ResolveOriginalInstallmentAmount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOriginalInstallmentAmountNeverBelowDiscounted(t *testing.T) {
	amounts := []string{"0.01", "9.99", "17.33", "62.50", "104.17", "250"}
	promotions := []string{"0.01", "0.99", "5", "13.37", "40"}

	for _, amount := range amounts {
		for _, promotion := range promotions {
			for count := 1; count <= 12; count++ {
				name := fmt.Sprintf("%s_x%d_minus_%s", amount, count, promotion)
				t.Run(name, func(t *testing.T) {
					installments := make([]Installment, count)
					for i := range installments {
						installments[i] = Installment{TotalAmountIncludingFees: dec(amount)}
					}
					current := ResolveInstallmentAmount(installments, count, false)
					original := ResolveOriginalInstallmentAmount(current, installments, count, some(promotion))
					if original.LessThan(current) {
						t.Errorf("original %v is below discounted %v", original, current)
					}
					if !original.Equal(original.RoundCeil(2)) {
						t.Errorf("original %v is not in whole cents", original)
					}
					exact := dec(amount).Mul(decimal.NewFromInt(int64(count))).Add(dec(promotion)).Div(decimal.NewFromInt(int64(count)))
					if original.LessThan(exact) {
						t.Errorf("original %v rounds below exact %v", original, exact)
					}
				})
			}
		}
	}
}
