package domain

type Customer struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
}

// DisplayName devolve o nome do cliente ou o próprio ID quando o nome está vazio
func (c Customer) DisplayName() string {
	if c.Name == "" {
		return c.CustomerID
	}
	return c.Name
}
