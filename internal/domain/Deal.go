package domain

type DealType string

const (
	DealTypePMP        DealType = "PMP"
	DealTypeGuaranteed DealType = "PG"
	DealTypeOpen       DealType = "OPEN"
)

// Deal é um acordo de compra dentro de um pacote
type Deal struct {
	ID                string   `json:"id"`
	PackageID         string   `json:"package_id"`
	Name              string   `json:"name"`
	Type              DealType `json:"type"`
	CPM               float64  `json:"cpm"`
	ImpressionsBought int64    `json:"impressions_bought"`
}

func (d *Deal) EntityID() string { return d.ID }
func (d *Deal) ParentID() string { return d.PackageID }
func (d *Deal) Label() string    { return d.Name }
func (d *Deal) Level() Level     { return LevelDeal }
