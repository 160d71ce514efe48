package domain

// Package é um pacote de mídia comprado para um ad group
type Package struct {
	ID          string  `json:"id"`
	AdGroupID   string  `json:"ad_group_id"`
	Name        string  `json:"name"`
	Publisher   string  `json:"publisher"`
	CPM         float64 `json:"cpm"`
	Impressions int64   `json:"impressions"`
	Spend       float64 `json:"spend"`
}

func (p *Package) EntityID() string { return p.ID }
func (p *Package) ParentID() string { return p.AdGroupID }
func (p *Package) Label() string    { return p.Name }
func (p *Package) Level() Level     { return LevelPackage }
