package domain

import "slices"

// SnapshotData é o formato bruto do arquivo de dados
type SnapshotData struct {
	Customers []Customer `json:"customers"`
	Products  []Product  `json:"products"`
	Purchases []Purchase `json:"purchases"`
	Expenses  []Expense  `json:"expenses"`
}

// Snapshot é a fotografia imutável dos dados de negócio carregada na inicialização.
// Todos os acessores devolvem cópias; nenhum consumidor altera o estado interno.
type Snapshot struct {
	customers    []Customer
	products     []Product
	purchases    []Purchase
	expenses     []Expense
	productByID  map[string]Product
	customerByID map[string]Customer
	available    bool
}

// NewSnapshot constrói o snapshot e os índices por ID
func NewSnapshot(data SnapshotData) *Snapshot {
	s := &Snapshot{
		customers:    slices.Clone(data.Customers),
		products:     slices.Clone(data.Products),
		purchases:    slices.Clone(data.Purchases),
		expenses:     slices.Clone(data.Expenses),
		productByID:  make(map[string]Product, len(data.Products)),
		customerByID: make(map[string]Customer, len(data.Customers)),
		available:    true,
	}

	for _, p := range s.products {
		s.productByID[p.ProductID] = p
	}
	for _, c := range s.customers {
		s.customerByID[c.CustomerID] = c
	}

	return s
}

// EmptySnapshot representa o modo degradado quando o arquivo de dados não pôde ser lido
func EmptySnapshot() *Snapshot {
	s := NewSnapshot(SnapshotData{})
	s.available = false
	return s
}

// Available indica se o snapshot veio de um arquivo lido com sucesso
func (s *Snapshot) Available() bool {
	return s != nil && s.available
}

func (s *Snapshot) Customers() []Customer { return slices.Clone(s.customers) }
func (s *Snapshot) Products() []Product   { return slices.Clone(s.products) }
func (s *Snapshot) Purchases() []Purchase { return slices.Clone(s.purchases) }
func (s *Snapshot) Expenses() []Expense   { return slices.Clone(s.expenses) }

func (s *Snapshot) Product(id string) (Product, bool) {
	p, ok := s.productByID[id]
	return p, ok
}

func (s *Snapshot) Customer(id string) (Customer, bool) {
	c, ok := s.customerByID[id]
	return c, ok
}

// ProductCosts devolve o lookup de custo por produto usado na tabela derivada
func (s *Snapshot) ProductCosts() map[string]float64 {
	costs := make(map[string]float64, len(s.productByID))
	for id, p := range s.productByID {
		costs[id] = p.Cost
	}
	return costs
}

// PurchasesByCustomer devolve o histórico de compras de um cliente
func (s *Snapshot) PurchasesByCustomer(customerID string) []Purchase {
	purchases := make([]Purchase, 0)
	for _, p := range s.purchases {
		if p.CustomerID == customerID {
			purchases = append(purchases, p)
		}
	}
	return purchases
}

// FindPurchase busca uma compra pelo ID
func (s *Snapshot) FindPurchase(purchaseID string) (Purchase, bool) {
	for _, p := range s.purchases {
		if p.PurchaseID == purchaseID {
			return p, true
		}
	}
	return Purchase{}, false
}
