package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func TestCalculateTotals(t *testing.T) {
	t.Run("tax on subtotal", func(t *testing.T) {
		i := Invoice{
			TaxRate: dec("10"),
			LineItems: []LineItem{
				{LineTotal: dec("150.00")},
				{LineTotal: dec("100.00")},
			},
		}
		i.CalculateTotals()

		assert.Equal(t, "250.00", i.Subtotal.StringFixed(2))
		assert.Equal(t, "25.00", i.TaxAmount.StringFixed(2))
		assert.Equal(t, "275.00", i.TotalAmount.StringFixed(2))
		assert.Equal(t, "275.00", i.BalanceDue.StringFixed(2))
	})

	t.Run("discount subtracts before balance", func(t *testing.T) {
		i := Invoice{
			TaxRate:            dec("10"),
			DiscountPercentage: dec("20"),
			LineItems:          []LineItem{{LineTotal: dec("1000.00")}},
		}
		i.CalculateTotals()

		assert.Equal(t, "100.00", i.TaxAmount.StringFixed(2))
		assert.Equal(t, "200.00", i.DiscountAmount.StringFixed(2))
		assert.Equal(t, "900.00", i.TotalAmount.StringFixed(2))
	})

	t.Run("recompute picks up edited rates", func(t *testing.T) {
		i := Invoice{
			TaxRate:   dec("10"),
			LineItems: []LineItem{{LineTotal: dec("500.00")}},
		}
		i.CalculateTotals()
		assert.Equal(t, "550.00", i.TotalAmount.StringFixed(2))

		i.TaxRate = dec("20")
		i.DiscountPercentage = dec("10")
		i.CalculateTotals()

		assert.Equal(t, "100.00", i.TaxAmount.StringFixed(2))
		assert.Equal(t, "50.00", i.DiscountAmount.StringFixed(2))
		assert.Equal(t, "550.00", i.TotalAmount.StringFixed(2))
		assert.Equal(t, "550.00", i.BalanceDue.StringFixed(2))
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		i := Invoice{
			TaxRate:   dec("7.5"),
			LineItems: []LineItem{{LineTotal: dec("333.33")}},
		}
		i.CalculateTotals()
		first := i.TotalAmount
		i.CalculateTotals()
		assert.True(t, first.Equal(i.TotalAmount))
	})
}

func TestMarkAsSent(t *testing.T) {
	i := Invoice{InvoiceStatus: StatusDraft}

	assert.NoError(t, i.MarkAsSent())
	assert.Equal(t, StatusSent, i.InvoiceStatus)
	assert.NotNil(t, i.SentAt)

	assert.ErrorIs(t, i.MarkAsSent(), ErrInvoiceAlreadySent)
}

func TestRecordPayment(t *testing.T) {
	newInvoice := func() Invoice {
		i := Invoice{
			TaxRate:       dec("10"),
			InvoiceStatus: StatusSent,
			LineItems:     []LineItem{{LineTotal: dec("250.00")}},
		}
		i.CalculateTotals()
		return i
	}

	t.Run("full payment settles the invoice", func(t *testing.T) {
		i := newInvoice()
		assert.NoError(t, i.RecordPayment(dec("275.00")))

		assert.Equal(t, StatusPaid, i.InvoiceStatus)
		assert.True(t, i.BalanceDue.IsZero())
		assert.NotNil(t, i.PaidAt)
	})

	t.Run("partial payments accumulate", func(t *testing.T) {
		i := newInvoice()
		assert.NoError(t, i.RecordPayment(dec("100.00")))

		assert.Equal(t, StatusPartial, i.InvoiceStatus)
		assert.Equal(t, "175.00", i.BalanceDue.StringFixed(2))

		assert.NoError(t, i.RecordPayment(dec("175.00")))
		assert.Equal(t, StatusPaid, i.InvoiceStatus)
	})

	t.Run("overpayment still settles", func(t *testing.T) {
		i := newInvoice()
		assert.NoError(t, i.RecordPayment(dec("300.00")))

		assert.Equal(t, StatusPaid, i.InvoiceStatus)
		assert.Equal(t, "-25.00", i.BalanceDue.StringFixed(2))
	})

	t.Run("negative payment rejected", func(t *testing.T) {
		i := newInvoice()
		assert.ErrorIs(t, i.RecordPayment(dec("-5.00")), ErrNegativePayment)
	})

	t.Run("paid invoice accepts no more payments", func(t *testing.T) {
		i := newInvoice()
		assert.NoError(t, i.RecordPayment(dec("275.00")))
		assert.ErrorIs(t, i.RecordPayment(dec("1.00")), ErrInvoiceAlreadyPaid)
	})
}
