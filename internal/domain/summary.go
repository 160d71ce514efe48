package domain

// ClientSummary é a linha de um cliente no resumo executivo
type ClientSummary struct {
	ClientID  string  `json:"client_id"`
	Name      string  `json:"name"`
	Vertical  string  `json:"vertical"`
	Campaigns int     `json:"campaigns"`
	Metrics   Metrics `json:"metrics"`
	CTR       float64 `json:"ctr"`
	ROAS      float64 `json:"roas"`
}

// CampaignPacing é a linha de acompanhamento de entrega de uma campanha
type CampaignPacing struct {
	CampaignID string  `json:"campaign_id"`
	ClientID   string  `json:"client_id"`
	Name       string  `json:"name"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Pacing     float64 `json:"pacing"`
	Path       string  `json:"path"`
}

// ExecutiveSummary é a visão consolidada da agência
type ExecutiveSummary struct {
	Agency    Agency           `json:"agency"`
	Totals    Metrics          `json:"totals"`
	CTR       float64          `json:"ctr"`
	ROAS      float64          `json:"roas"`
	KPIs      []KPI            `json:"kpis"`
	Clients   []ClientSummary  `json:"clients"`
	Campaigns []CampaignPacing `json:"campaigns"`
}
