package invoice

import (
	"testing"

	"github.com/guardia-security/guardia-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceRequestValidate(t *testing.T) {
	valid := CreateInvoiceRequest{
		ClientID:    "d2b3f9a0-0000-0000-0000-000000000001",
		InvoiceDate: "2026-03-01",
		DueDate:     "2026-03-31",
		LineItems: []LineItemRequest{
			{Description: "Guard coverage, March", Quantity: "160", UnitPrice: "12.50"},
		},
	}
	assert.NoError(t, valid.Validate())

	t.Run("line items required", func(t *testing.T) {
		req := valid
		req.LineItems = nil

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "line_items")
	})

	t.Run("line item fields indexed in details", func(t *testing.T) {
		req := valid
		req.LineItems = []LineItemRequest{
			{Description: "", Quantity: "0", UnitPrice: "-1"},
		}

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		assert.Contains(t, details, "line_items[0].description")
		assert.Contains(t, details, "line_items[0].quantity")
		assert.Contains(t, details, "line_items[0].unit_price")
	})

	t.Run("tax rate over 100 rejected", func(t *testing.T) {
		rate := "101"
		req := valid
		req.TaxRate = &rate
		assert.Error(t, req.Validate())
	})
}

func TestUpdateInvoiceRequestValidate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("id required", func(t *testing.T) {
		req := UpdateInvoiceRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("partial update with valid fields", func(t *testing.T) {
		req := UpdateInvoiceRequest{
			InvoiceID:          "d2b3f9a0-0000-0000-0000-000000000003",
			DueDate:            strPtr("2026-04-15"),
			TaxRate:            strPtr("10"),
			DiscountPercentage: strPtr("5"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("bad date rejected", func(t *testing.T) {
		req := UpdateInvoiceRequest{
			InvoiceID:   "d2b3f9a0-0000-0000-0000-000000000003",
			InvoiceDate: strPtr("15/04/2026"),
		}

		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "invoice_date")
	})

	t.Run("discount over 100 rejected", func(t *testing.T) {
		req := UpdateInvoiceRequest{
			InvoiceID:          "d2b3f9a0-0000-0000-0000-000000000003",
			DiscountPercentage: strPtr("120"),
		}
		assert.Error(t, req.Validate())
	})
}

func TestRecordPaymentRequestValidate(t *testing.T) {
	req := RecordPaymentRequest{InvoiceID: "d2b3f9a0-0000-0000-0000-000000000002", Amount: "100.00"}
	assert.NoError(t, req.Validate())

	req.Amount = "-100.00"
	assert.Error(t, req.Validate())

	req.Amount = "not-a-number"
	assert.Error(t, req.Validate())
}
