package domain

// Geo é a entrega de um criativo em uma DMA (folha da hierarquia)
type Geo struct {
	ID          string `json:"id"`
	CreativeID  string `json:"creative_id"`
	DMACode     int    `json:"dma_code"`
	DMAName     string `json:"dma_name"`
	Impressions int64  `json:"impressions"`
}

func (g *Geo) EntityID() string { return g.ID }
func (g *Geo) ParentID() string { return g.CreativeID }
func (g *Geo) Label() string    { return g.DMAName }
func (g *Geo) Level() Level     { return LevelGeo }
