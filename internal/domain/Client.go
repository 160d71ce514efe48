package domain

// Client é um anunciante atendido pela agência
type Client struct {
	ID       string  `json:"id"`
	AgencyID string  `json:"agency_id"`
	Name     string  `json:"name"`
	Vertical string  `json:"vertical"`
	Metrics  Metrics `json:"metrics"`
}

func (c *Client) EntityID() string { return c.ID }
func (c *Client) ParentID() string { return c.AgencyID }
func (c *Client) Label() string    { return c.Name }
func (c *Client) Level() Level     { return LevelClient }
