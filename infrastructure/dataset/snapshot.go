package dataset

import (
	"github.com/vfg2006/agency-dashboard/internal/domain"
)

// Snapshot contém as entidades de domínio prontas para indexação. Cada
// registro guarda apenas a chave do pai direto.
type Snapshot struct {
	Agency    domain.Agency
	Clients   []*domain.Client
	Campaigns []*domain.Campaign
	AdGroups  []*domain.AdGroup
	Packages  []*domain.Package
	Deals     []*domain.Deal
	Creatives []*domain.Creative
	Geos      []*domain.Geo
}

// Count retorna o total de registros por nível
func (s *Snapshot) Count() map[domain.Level]int {
	return map[domain.Level]int{
		domain.LevelClient:   len(s.Clients),
		domain.LevelCampaign: len(s.Campaigns),
		domain.LevelAdGroup:  len(s.AdGroups),
		domain.LevelPackage:  len(s.Packages),
		domain.LevelDeal:     len(s.Deals),
		domain.LevelCreative: len(s.Creatives),
		domain.LevelGeo:      len(s.Geos),
	}
}

// Records retorna o total por nome de nível, usado no healthcheck e na CLI
func (s *Snapshot) Records() map[string]int {
	out := make(map[string]int, len(domain.Levels()))
	for level, n := range s.Count() {
		out[level.String()] = n
	}
	return out
}

// Build valida o snapshot bruto e o converte em entidades de domínio.
// Os ids desnormalizados são descartados depois da validação.
func Build(raw *Raw) (*Snapshot, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	s := &Snapshot{
		Agency:    raw.Agency,
		Clients:   make([]*domain.Client, 0, len(raw.Clients)),
		Campaigns: make([]*domain.Campaign, 0, len(raw.Campaigns)),
		AdGroups:  make([]*domain.AdGroup, 0, len(raw.AdGroups)),
		Packages:  make([]*domain.Package, 0, len(raw.Packages)),
		Deals:     make([]*domain.Deal, 0, len(raw.Deals)),
		Creatives: make([]*domain.Creative, 0, len(raw.Creatives)),
		Geos:      make([]*domain.Geo, 0, len(raw.Geos)),
	}

	for _, c := range raw.Clients {
		s.Clients = append(s.Clients, &domain.Client{
			ID:       c.ID,
			AgencyID: raw.Agency.ID,
			Name:     c.Name,
			Vertical: c.Vertical,
			Metrics:  c.Metrics,
		})
	}

	for _, c := range raw.Campaigns {
		s.Campaigns = append(s.Campaigns, &domain.Campaign{
			ID:        c.ID,
			ClientID:  c.ClientID,
			Name:      c.Name,
			Objective: c.Objective,
			Status:    domain.CampaignStatus(c.Status),
			Budget:    c.Budget,
			Spent:     c.Spent,
			Pacing:    c.Pacing,
			Metrics:   c.Metrics,
		})
	}

	for _, a := range raw.AdGroups {
		adGroup := &domain.AdGroup{
			ID:           a.ID,
			CampaignID:   a.CampaignID,
			Name:         a.Name,
			Audience:     a.Audience,
			AudienceSize: a.AudienceSize,
			Metrics:      a.Metrics,
		}
		for i, window := range a.PropensityWindows {
			adGroup.PropensityWindows[i] = domain.PropensityWindow{
				Days:  window.Days,
				Score: window.Score,
				Reach: window.Reach,
			}
		}
		s.AdGroups = append(s.AdGroups, adGroup)
	}

	for _, p := range raw.Packages {
		s.Packages = append(s.Packages, &domain.Package{
			ID:          p.ID,
			AdGroupID:   p.AdGroupID,
			Name:        p.Name,
			Publisher:   p.Publisher,
			CPM:         p.CPM,
			Impressions: p.Impressions,
			Spend:       p.Spend,
		})
	}

	for _, d := range raw.Deals {
		s.Deals = append(s.Deals, &domain.Deal{
			ID:                d.ID,
			PackageID:         d.PackageID,
			Name:              d.Name,
			Type:              domain.DealType(d.Type),
			CPM:               d.CPM,
			ImpressionsBought: d.ImpressionsBought,
		})
	}

	for _, c := range raw.Creatives {
		s.Creatives = append(s.Creatives, &domain.Creative{
			ID:             c.ID,
			DealID:         c.DealID,
			Name:           c.Name,
			Format:         domain.CreativeFormat(c.Format),
			Size:           c.Size,
			Impressions:    c.Impressions,
			Spend:          c.Spend,
			VTR:            c.VTR,
			CompletionRate: c.CompletionRate,
			CTR:            c.CTR,
		})
	}

	for _, g := range raw.Geos {
		s.Geos = append(s.Geos, &domain.Geo{
			ID:          g.ID,
			CreativeID:  g.CreativeID,
			DMACode:     g.DMACode,
			DMAName:     g.DMAName,
			Impressions: g.Impressions,
		})
	}

	return s, nil
}
