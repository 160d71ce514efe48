package domain

type CreativeFormat string

const (
	CreativeFormatCTV     CreativeFormat = "CTV"
	CreativeFormatDisplay CreativeFormat = "Display"
)

// Creative é uma peça veiculada em um deal. As métricas variam com o formato:
// CTV possui VTR e CompletionRate, Display possui CTR.
type Creative struct {
	ID             string         `json:"id"`
	DealID         string         `json:"deal_id"`
	Name           string         `json:"name"`
	Format         CreativeFormat `json:"format"`
	Size           string         `json:"size,omitempty"`
	Impressions    int64          `json:"impressions"`
	Spend          float64        `json:"spend"`
	VTR            *float64       `json:"vtr,omitempty"`
	CompletionRate *float64       `json:"completion_rate,omitempty"`
	CTR            *float64       `json:"ctr,omitempty"`
}

func (c *Creative) EntityID() string { return c.ID }
func (c *Creative) ParentID() string { return c.DealID }
func (c *Creative) Label() string    { return c.Name }
func (c *Creative) Level() Level     { return LevelCreative }

// IsVideo informa se o criativo é de vídeo (CTV)
func (c *Creative) IsVideo() bool {
	return c.Format == CreativeFormatCTV
}
