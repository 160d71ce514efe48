package domain

// Crumb é um item do breadcrumb. Path vazio significa item não navegável
// (página atual, ou segmento que não pôde ser resolvido).
type Crumb struct {
	Label string `json:"label"`
	Level Level  `json:"level"`
	Path  string `json:"path,omitempty"`
}

// Navigable informa se o item pode ser clicado
func (c Crumb) Navigable() bool {
	return c.Path != ""
}
