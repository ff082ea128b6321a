package domain

// CompetitorRecord é um preço observado em um concorrente. Não existe chave
// estável para o produto interno, a associação é feita pelo preço mais próximo.
type CompetitorRecord struct {
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

// ScrapeResult é a resposta da coleta de preços: onde foi gravado e uma amostra
type ScrapeResult struct {
	Status  string             `json:"status"`
	SavedTo string             `json:"saved_to"`
	Sample  []CompetitorRecord `json:"sample"`
}
