package domain

// PropensityWindowDays são as janelas fixas de propensão, nesta ordem
var PropensityWindowDays = [4]int{10, 30, 60, 90}

// PropensityWindow representa a propensão de conversão da audiência em uma janela de dias
type PropensityWindow struct {
	Days  int     `json:"days"`
	Score float64 `json:"score"`
	Reach int64   `json:"reach"`
}

// AdGroup pertence a uma campanha
type AdGroup struct {
	ID                string              `json:"id"`
	CampaignID        string              `json:"campaign_id"`
	Name              string              `json:"name"`
	Audience          string              `json:"audience"`
	AudienceSize      int64               `json:"audience_size"`
	PropensityWindows [4]PropensityWindow `json:"propensity_windows"`
	Metrics           Metrics             `json:"metrics"`
}

func (a *AdGroup) EntityID() string { return a.ID }
func (a *AdGroup) ParentID() string { return a.CampaignID }
func (a *AdGroup) Label() string    { return a.Name }
func (a *AdGroup) Level() Level     { return LevelAdGroup }
