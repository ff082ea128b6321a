package analyzing

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// PurchaseRow é uma compra enriquecida com receita, custo e lucro da linha
type PurchaseRow struct {
	domain.Purchase
	Date        time.Time
	Revenue     decimal.Decimal
	CostOfGoods decimal.Decimal
	Profit      decimal.Decimal
}

// PurchaseTable é a tabela derivada de compras, construída uma única vez e somente leitura
type PurchaseTable struct {
	rows    []PurchaseRow
	minDate time.Time
	maxDate time.Time
}

// NewPurchaseTable junta o custo dos produtos a cada compra. Produto desconhecido tem custo zero.
func NewPurchaseTable(purchases []domain.Purchase, costs map[string]float64) *PurchaseTable {
	t := &PurchaseTable{rows: make([]PurchaseRow, 0, len(purchases))}

	for i, p := range purchases {
		qty := decimal.NewFromInt(int64(p.Quantity))
		revenue := qty.Mul(decimal.NewFromFloat(p.Price))
		cogs := qty.Mul(decimal.NewFromFloat(costs[p.ProductID]))

		row := PurchaseRow{
			Purchase:    p,
			Date:        p.Day(),
			Revenue:     revenue,
			CostOfGoods: cogs,
			Profit:      revenue.Sub(cogs),
		}
		t.rows = append(t.rows, row)

		if i == 0 || row.Date.Before(t.minDate) {
			t.minDate = row.Date
		}
		if i == 0 || row.Date.After(t.maxDate) {
			t.maxDate = row.Date
		}
	}

	return t
}

func (t *PurchaseTable) Len() int {
	return len(t.rows)
}

func (t *PurchaseTable) Empty() bool {
	return len(t.rows) == 0
}

func (t *PurchaseTable) Rows() []PurchaseRow {
	return slices.Clone(t.rows)
}

// MaxDate é a data mais recente da tabela; ancora todas as janelas de tempo
func (t *PurchaseTable) MaxDate() time.Time {
	return t.maxDate
}

func (t *PurchaseTable) MinDate() time.Time {
	return t.minDate
}
