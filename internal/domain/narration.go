package domain

// Narration é o texto gerado pelo provedor de linguagem. Quando Available é falso
// o texto é apenas um marcador de "narração indisponível" e o resultado numérico
// que acompanha continua válido.
type Narration struct {
	Text      string `json:"text"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}
