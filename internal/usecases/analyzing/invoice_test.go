package analyzing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

func invoiceSnapshot() domain.SnapshotData {
	email := "ana@example.com"
	return domain.SnapshotData{
		Customers: []domain.Customer{{CustomerID: "C1", Name: "Ana", Email: &email}},
		Products:  []domain.Product{{ProductID: "P1", Name: "Widget", Price: 12.5, Cost: 5}},
		Purchases: []domain.Purchase{
			purchase("T1", "C1", "P1", 3, 12.5, day(0)),
			purchase("T2", "C9", "P1", 1, 12.5, day(1)),
			purchase("T3", "C1", "P9", 1, 12.5, day(2)),
		},
	}
}

func TestInvoice(t *testing.T) {
	invoice, err := newTestService(invoiceSnapshot()).Invoice("T1")
	require.NoError(t, err)

	assert.Equal(t, "INV-T1", invoice.InvoiceID)
	assert.Equal(t, day(0), invoice.Date)
	assert.Equal(t, "Ana", invoice.Customer.Name)
	require.NotNil(t, invoice.Customer.Email)
	assert.Equal(t, "ana@example.com", *invoice.Customer.Email)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, domain.InvoiceItem{
		ProductName: "Widget",
		ProductID:   "P1",
		Quantity:    3,
		UnitPrice:   12.5,
		TotalPrice:  37.5,
	}, invoice.Items[0])
	assert.Equal(t, 37.5, invoice.InvoiceTotal)
	assert.Equal(t, "This invoice was automatically generated by the AI Hub.", invoice.Note)
}

func TestInvoiceErrors(t *testing.T) {
	tests := []struct {
		name         string
		purchaseID   string
		expected     error
		expectedCode string
	}{
		{name: "unknown purchase", purchaseID: "T404", expected: ErrPurchaseNotFound, expectedCode: apiErrors.ErrPurchaseNotFound},
		{name: "missing customer", purchaseID: "T2", expected: ErrInvoiceReference, expectedCode: apiErrors.ErrDataInconsistency},
		{name: "missing product", purchaseID: "T3", expected: ErrInvoiceReference, expectedCode: apiErrors.ErrDataInconsistency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice, err := newTestService(invoiceSnapshot()).Invoice(tt.purchaseID)

			assert.Nil(t, invoice)
			assert.True(t, errors.Is(err, tt.expected))

			var analysisErr *AnalysisError
			require.True(t, errors.As(err, &analysisErr))
			assert.Equal(t, tt.expectedCode, analysisErr.Code)
		})
	}
}
