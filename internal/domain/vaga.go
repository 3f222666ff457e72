package domain

// Vaga é uma oferta de emprego exibida na busca do dashboard.
type Vaga struct {
	ID          string `json:"id"`
	Titulo      string `json:"title"`
	Empresa     string `json:"company"`
	Localizacao string `json:"location"`
	Tipo        string `json:"type"`
	Publicada   string `json:"posted"`
	Descricao   string `json:"description"`
	URL         string `json:"url"`
}

// KeywordMetrica é o resultado da análise de uma palavra-chave na
// ferramenta de SEO. Os valores são estimativas geradas internamente.
type KeywordMetrica struct {
	Keyword      string `json:"keyword"`
	Volume       int    `json:"volume"`
	Dificuldade  string `json:"difficulty"`
	CPC          string `json:"cpc"`
	Concorrencia string `json:"competition"`
}
