package analyzing

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

const invoiceNote = "This invoice was automatically generated by the AI Hub."

// Invoice é o único ponto em que uma referência quebrada vira erro: sem produto
// ou cliente não há como montar a fatura.
func (s *Service) Invoice(purchaseID string) (*domain.Invoice, error) {
	purchase, ok := s.snapshot.FindPurchase(purchaseID)
	if !ok {
		return nil, NewAnalysisError(ErrPurchaseNotFound, purchaseID)
	}

	product, productOK := s.snapshot.Product(purchase.ProductID)
	customer, customerOK := s.snapshot.Customer(purchase.CustomerID)
	if !productOK || !customerOK {
		return nil, NewAnalysisError(ErrInvoiceReference, purchaseID)
	}

	total := utils.Money(decimal.NewFromInt(int64(purchase.Quantity)).Mul(decimal.NewFromFloat(purchase.Price)))

	return &domain.Invoice{
		InvoiceID: "INV-" + purchase.PurchaseID,
		Date:      purchase.Timestamp,
		Customer: domain.InvoiceCustomer{
			Name:       customer.DisplayName(),
			CustomerID: customer.CustomerID,
			Email:      customer.Email,
		},
		Items: []domain.InvoiceItem{
			{
				ProductName: product.Name,
				ProductID:   product.ProductID,
				Quantity:    purchase.Quantity,
				UnitPrice:   purchase.Price,
				TotalPrice:  total,
			},
		},
		InvoiceTotal: total,
		Note:         invoiceNote,
	}, nil
}
