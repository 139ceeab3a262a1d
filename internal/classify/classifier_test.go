package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{
			name:   "specific card phrase wins over generic card rule",
			detail: "Card transaction of EUR 10 issued by SHOP",
			want:   "card payment",
		},
		{
			name:   "card ending in",
			detail: "Payment with card ending in 1234",
			want:   "card transaction",
		},
		{
			name:   "sent money",
			detail: "Sent money to John Smith",
			want:   "outgoing transfer",
		},
		{
			name:   "received money",
			detail: "Received money from ACME Ltd",
			want:   "incoming transfer",
		},
		{
			name:   "sct inwards",
			detail: "SCT INWARDS ref 123",
			want:   "incoming sct transfer",
		},
		{
			name:   "instant payments inwards beats bare instant payment",
			detail: "SCT instant payments inwards",
			want:   "instant payment in",
		},
		{
			name:   "cheque deposit beats bare cheque",
			detail: "Cheque 123 deposit",
			want:   "cheque deposit",
		},
		{
			name:   "bare cheque",
			detail: "Cheque 000123",
			want:   "cheque payment",
		},
		{
			name:   "wise charges is a transfer fee",
			detail: "Wise Charges for transfer",
			want:   "transfer fee",
		},
		{
			name:   "generic fee",
			detail: "Monthly maintenance fee",
			want:   "bank fee",
		},
		{
			name:   "administration fee shadowed by fee rule",
			detail: "Administration fee",
			want:   "bank fee",
		},
		{
			name:   "salary",
			detail: "SALARY SEPTEMBER",
			want:   "salary",
		},
		{
			name:   "loan repayment principal",
			detail: "Repayment of principal",
			want:   "loan principal repayment",
		},
		{
			name:   "tax",
			detail: "Payment to tax authority",
			want:   "tax payment",
		},
		{
			name:   "atm cash deposit",
			detail: "ATM branch cash machine deposit",
			want:   "atm cash deposit",
		},
		{
			name:   "24x7 bill payment",
			detail: "24x7 bill payment",
			want:   "bill payment",
		},
		{
			name:   "insurance vendor",
			detail: "MSV LIFE premium",
			want:   "insurance payment",
		},
		{
			name:   "supermarket",
			detail: "PAVI SUPERMARKET VALLETTA",
			want:   "food & retail",
		},
		{
			name:   "utility",
			detail: "ARMS electricity bill",
			want:   "utility payment",
		},
		{
			name:   "refund",
			detail: "Refund for order 9",
			want:   "refund",
		},
		{
			name:   "generic deposit is a late fallback",
			detail: "Branch deposit",
			want:   "deposit",
		},
		{
			name:   "no match",
			detail: "zzzz",
			want:   "other",
		},
		{
			name:   "empty detail",
			detail: "",
			want:   "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Type(tt.detail))
		})
	}
}

func TestTypeIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Type("CARD TRANSACTION"), Type("card transaction"))
}
