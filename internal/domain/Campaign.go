package domain

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
)

// Campaign pertence a um cliente. Spent nunca excede Budget.
type Campaign struct {
	ID        string         `json:"id"`
	ClientID  string         `json:"client_id"`
	Name      string         `json:"name"`
	Objective string         `json:"objective"`
	Status    CampaignStatus `json:"status"`
	Budget    float64        `json:"budget"`
	Spent     float64        `json:"spent"`
	Pacing    float64        `json:"pacing"` // porcentagem do orçamento esperado já entregue
	Metrics   Metrics        `json:"metrics"`
}

func (c *Campaign) EntityID() string { return c.ID }
func (c *Campaign) ParentID() string { return c.ClientID }
func (c *Campaign) Label() string    { return c.Name }
func (c *Campaign) Level() Level     { return LevelCampaign }

// Remaining retorna o orçamento ainda disponível
func (c *Campaign) Remaining() float64 {
	return c.Budget - c.Spent
}
