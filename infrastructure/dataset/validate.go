package dataset

import (
	"fmt"
	"strings"

	"github.com/vfg2006/agency-dashboard/internal/domain"
)

// Regras de integridade verificadas no carregamento
const (
	RuleDuplicateID       = "duplicate_id"
	RuleMissingParent     = "missing_parent"
	RuleAncestorMismatch  = "ancestor_mismatch"
	RuleOverspent         = "spent_exceeds_budget"
	RulePropensityWindows = "propensity_windows"
	RuleCreativeMetrics   = "creative_metrics"
	RuleGeoImpressions    = "geo_impressions_exceed_creative"
	RuleMissingID         = "missing_id"
)

// Violation descreve um defeito de dados
type Violation struct {
	Collection string
	ID         string
	Rule       string
	Detail     string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s[%s] %s: %s", v.Collection, v.ID, v.Rule, v.Detail)
}

// IntegrityError agrega todas as violações encontradas
type IntegrityError struct {
	Violations []Violation
}

func (e *IntegrityError) Error() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, v.String())
	}
	return fmt.Sprintf("dataset: %d integrity violation(s): %s", len(e.Violations), strings.Join(lines, "; "))
}

// Has informa se alguma violação da regra foi encontrada
func (e *IntegrityError) Has(rule string) bool {
	for _, v := range e.Violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

type validator struct {
	violations []Violation
}

func (v *validator) add(collection, id, rule, format string, args ...any) {
	v.violations = append(v.violations, Violation{
		Collection: collection,
		ID:         id,
		Rule:       rule,
		Detail:     fmt.Sprintf(format, args...),
	})
}

// byID indexa uma coleção bruta registrando ids repetidos ou vazios
func byID[T any](v *validator, collection string, items []T, idOf func(T) string) map[string]T {
	out := make(map[string]T, len(items))
	for _, item := range items {
		id := idOf(item)
		if id == "" {
			v.add(collection, id, RuleMissingID, "record without id")
			continue
		}
		if _, exists := out[id]; exists {
			v.add(collection, id, RuleDuplicateID, "id appears more than once")
			continue
		}
		out[id] = item
	}
	return out
}

// Validate confere a integridade referencial do snapshot bruto. Os ids
// desnormalizados de cada filho precisam coincidir com os obtidos subindo
// pela cadeia de pais a partir da chave do pai direto.
func Validate(raw *Raw) error {
	v := &validator{}

	clients := byID(v, "clients", raw.Clients, func(c RawClient) string { return c.ID })
	campaigns := byID(v, "campaigns", raw.Campaigns, func(c RawCampaign) string { return c.ID })
	adGroups := byID(v, "adGroups", raw.AdGroups, func(a RawAdGroup) string { return a.ID })
	packages := byID(v, "packages", raw.Packages, func(p RawPackage) string { return p.ID })
	deals := byID(v, "deals", raw.Deals, func(d RawDeal) string { return d.ID })
	creatives := byID(v, "creatives", raw.Creatives, func(c RawCreative) string { return c.ID })
	byID(v, "geos", raw.Geos, func(g RawGeo) string { return g.ID })

	for _, c := range raw.Campaigns {
		if _, ok := clients[c.ClientID]; !ok {
			v.add("campaigns", c.ID, RuleMissingParent, "client %q not found", c.ClientID)
		}
		if c.Spent > c.Budget {
			v.add("campaigns", c.ID, RuleOverspent, "spent %.2f > budget %.2f", c.Spent, c.Budget)
		}
	}

	for _, a := range raw.AdGroups {
		campaign, ok := campaigns[a.CampaignID]
		if !ok {
			v.add("adGroups", a.ID, RuleMissingParent, "campaign %q not found", a.CampaignID)
		} else if a.ClientID != campaign.ClientID {
			v.add("adGroups", a.ID, RuleAncestorMismatch, "clientId %q != campaign.clientId %q", a.ClientID, campaign.ClientID)
		}
		validateWindows(v, a)
	}

	for _, p := range raw.Packages {
		adGroup, ok := adGroups[p.AdGroupID]
		if !ok {
			v.add("packages", p.ID, RuleMissingParent, "ad group %q not found", p.AdGroupID)
			continue
		}
		if p.CampaignID != adGroup.CampaignID {
			v.add("packages", p.ID, RuleAncestorMismatch, "campaignId %q != adGroup.campaignId %q", p.CampaignID, adGroup.CampaignID)
		}
		if campaign, ok := campaigns[adGroup.CampaignID]; ok && p.ClientID != campaign.ClientID {
			v.add("packages", p.ID, RuleAncestorMismatch, "clientId %q != campaign.clientId %q", p.ClientID, campaign.ClientID)
		}
	}

	for _, d := range raw.Deals {
		if _, ok := packages[d.PackageID]; !ok {
			v.add("deals", d.ID, RuleMissingParent, "package %q not found", d.PackageID)
		}
	}

	for _, c := range raw.Creatives {
		if _, ok := deals[c.DealID]; !ok {
			v.add("creatives", c.ID, RuleMissingParent, "deal %q not found", c.DealID)
		}
		validateCreativeMetrics(v, c)
	}

	geoImpressions := make(map[string]int64)
	for _, g := range raw.Geos {
		creative, ok := creatives[g.CreativeID]
		if !ok {
			v.add("geos", g.ID, RuleMissingParent, "creative %q not found", g.CreativeID)
			continue
		}
		geoImpressions[g.CreativeID] += g.Impressions

		clientID, ok := clientOfCreative(creative, deals, packages, adGroups, campaigns)
		if ok && g.ClientID != clientID {
			v.add("geos", g.ID, RuleAncestorMismatch, "clientId %q != walked clientId %q", g.ClientID, clientID)
		}
	}

	for _, c := range raw.Creatives {
		if total := geoImpressions[c.ID]; total > c.Impressions {
			v.add("creatives", c.ID, RuleGeoImpressions, "geo impressions %d > creative impressions %d", total, c.Impressions)
		}
	}

	if len(v.violations) > 0 {
		return &IntegrityError{Violations: v.violations}
	}
	return nil
}

func validateWindows(v *validator, a RawAdGroup) {
	if len(a.PropensityWindows) != len(domain.PropensityWindowDays) {
		v.add("adGroups", a.ID, RulePropensityWindows, "expected %d windows, got %d", len(domain.PropensityWindowDays), len(a.PropensityWindows))
		return
	}
	for i, window := range a.PropensityWindows {
		if window.Days != domain.PropensityWindowDays[i] {
			v.add("adGroups", a.ID, RulePropensityWindows, "window %d covers %d days, expected %d", i, window.Days, domain.PropensityWindowDays[i])
		}
	}
}

func validateCreativeMetrics(v *validator, c RawCreative) {
	switch domain.CreativeFormat(c.Format) {
	case domain.CreativeFormatCTV:
		if c.VTR == nil || c.CompletionRate == nil {
			v.add("creatives", c.ID, RuleCreativeMetrics, "CTV creative requires vtr and completionRate")
		}
		if c.CTR != nil {
			v.add("creatives", c.ID, RuleCreativeMetrics, "CTV creative must not carry ctr")
		}
	case domain.CreativeFormatDisplay:
		if c.CTR == nil {
			v.add("creatives", c.ID, RuleCreativeMetrics, "Display creative requires ctr")
		}
		if c.VTR != nil || c.CompletionRate != nil {
			v.add("creatives", c.ID, RuleCreativeMetrics, "Display creative must not carry vtr or completionRate")
		}
	default:
		v.add("creatives", c.ID, RuleCreativeMetrics, "unknown format %q", c.Format)
	}
}

// clientOfCreative sobe deal -> package -> ad group -> campaign
func clientOfCreative(
	creative RawCreative,
	deals map[string]RawDeal,
	packages map[string]RawPackage,
	adGroups map[string]RawAdGroup,
	campaigns map[string]RawCampaign,
) (string, bool) {
	deal, ok := deals[creative.DealID]
	if !ok {
		return "", false
	}
	pkg, ok := packages[deal.PackageID]
	if !ok {
		return "", false
	}
	adGroup, ok := adGroups[pkg.AdGroupID]
	if !ok {
		return "", false
	}
	campaign, ok := campaigns[adGroup.CampaignID]
	if !ok {
		return "", false
	}
	return campaign.ClientID, true
}
