package viewing

import (
	"fmt"

	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/pkg/drilltable"
	"github.com/vfg2006/agency-dashboard/pkg/utils"
)

// KPIDescriptor descreve um indicador do cabeçalho de um nível
type KPIDescriptor struct {
	Key   string
	Label string
	Value func(e domain.Entity) string
}

// LevelSpec parametriza a exibição de um nível: subtítulo e KPIs do próprio
// registro, colunas da tabela de filhos e a mensagem de tabela vazia.
type LevelSpec struct {
	Level        domain.Level
	Subtitle     func(e domain.Entity) string
	KPIs         []KPIDescriptor
	Columns      []drilltable.Column[domain.Entity]
	EmptyMessage string
}

// as converte uma função tipada para o contrato de Entity
func as[T domain.Entity, V any](fn func(T) V) func(domain.Entity) V {
	return func(e domain.Entity) V {
		return fn(e.(T))
	}
}

func kpi[T domain.Entity](key, label string, fn func(T) string) KPIDescriptor {
	return KPIDescriptor{Key: key, Label: label, Value: as(fn)}
}

func column[T domain.Entity](key, label string, fn func(T) any, render func(any) string) drilltable.Column[domain.Entity] {
	c := drilltable.Column[domain.Entity]{Key: key, Label: label, Value: as(fn)}
	if render != nil {
		c.Render = func(value any, _ domain.Entity) string { return render(value) }
	}
	return c
}

func currency(v any) string { return utils.FormatCurrency(v.(float64)) }
func integer(v any) string  { return utils.FormatInt(v.(int64)) }
func percent(v any) string  { return utils.FormatPercent(v.(float64)) }
func precise(v any) string  { return utils.FormatPrecisePercent(v.(float64)) }
func ratio(v any) string    { return utils.FormatRatio(v.(float64)) }

func optionalPercent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return utils.FormatPercent(*v)
}

// metricColumns são as colunas de desempenho comuns a clientes, campanhas e ad groups
func metricColumns[T domain.Entity](metricsOf func(T) domain.Metrics) []drilltable.Column[domain.Entity] {
	return []drilltable.Column[domain.Entity]{
		column("spend", "Spend", func(e T) any { return metricsOf(e).Spend }, currency),
		column("impressions", "Impressions", func(e T) any { return metricsOf(e).Impressions }, integer),
		column("ctr", "CTR", func(e T) any { return metricsOf(e).CTR() }, precise),
		column("roas", "ROAS", func(e T) any { return metricsOf(e).ROAS() }, ratio),
	}
}

func metricKPIs[T domain.Entity](metricsOf func(T) domain.Metrics) []KPIDescriptor {
	return []KPIDescriptor{
		kpi("spend", "Spend", func(e T) string { return utils.FormatCurrency(metricsOf(e).Spend) }),
		kpi("impressions", "Impressions", func(e T) string { return utils.FormatCompact(metricsOf(e).Impressions) }),
		kpi("ctr", "CTR", func(e T) string { return utils.FormatPrecisePercent(metricsOf(e).CTR()) }),
		kpi("conversions", "Conversions", func(e T) string { return utils.FormatInt(metricsOf(e).Conversions) }),
		kpi("roas", "ROAS", func(e T) string { return utils.FormatRatio(metricsOf(e).ROAS()) }),
	}
}

func propensityKPIs() []KPIDescriptor {
	out := make([]KPIDescriptor, 0, len(domain.PropensityWindowDays))
	for i, days := range domain.PropensityWindowDays {
		out = append(out, kpi(fmt.Sprintf("propensity_%dd", days), fmt.Sprintf("Propensity %dd", days),
			func(a *domain.AdGroup) string {
				w := a.PropensityWindows[i]
				return fmt.Sprintf("%.0f%% · %s", w.Score*100, utils.FormatCompact(w.Reach))
			}))
	}
	return out
}

// DefaultSpecs retorna a especificação de cada nível. A chave é o nível do
// registro exibido; as colunas descrevem os filhos dele.
func DefaultSpecs() map[domain.Level]*LevelSpec {
	return map[domain.Level]*LevelSpec{
		domain.LevelManager: {
			Level: domain.LevelManager,
			Columns: append([]drilltable.Column[domain.Entity]{
				column("name", "Client", func(c *domain.Client) any { return c.Name }, nil),
				column("vertical", "Vertical", func(c *domain.Client) any { return c.Vertical }, nil),
			}, metricColumns(func(c *domain.Client) domain.Metrics { return c.Metrics })...),
			EmptyMessage: "No clients",
		},
		domain.LevelClient: {
			Level:    domain.LevelClient,
			Subtitle: as(func(c *domain.Client) string { return c.Vertical }),
			KPIs:     metricKPIs(func(c *domain.Client) domain.Metrics { return c.Metrics }),
			Columns: []drilltable.Column[domain.Entity]{
				column("name", "Campaign", func(c *domain.Campaign) any { return c.Name }, nil),
				column("status", "Status", func(c *domain.Campaign) any { return c.Status }, nil),
				column("budget", "Budget", func(c *domain.Campaign) any { return c.Budget }, currency),
				column("spent", "Spent", func(c *domain.Campaign) any { return c.Spent }, currency),
				column("pacing", "Pacing", func(c *domain.Campaign) any { return c.Pacing }, percent),
				column("roas", "ROAS", func(c *domain.Campaign) any { return c.Metrics.ROAS() }, ratio),
			},
			EmptyMessage: "No campaigns for this client",
		},
		domain.LevelCampaign: {
			Level: domain.LevelCampaign,
			Subtitle: as(func(c *domain.Campaign) string {
				return fmt.Sprintf("%s · %s", c.Objective, c.Status)
			}),
			KPIs: []KPIDescriptor{
				kpi("budget", "Budget", func(c *domain.Campaign) string { return utils.FormatCurrency(c.Budget) }),
				kpi("spent", "Spent", func(c *domain.Campaign) string { return utils.FormatCurrency(c.Spent) }),
				kpi("remaining", "Remaining", func(c *domain.Campaign) string { return utils.FormatCurrency(c.Remaining()) }),
				kpi("pacing", "Pacing", func(c *domain.Campaign) string { return utils.FormatPercent(c.Pacing) }),
				kpi("roas", "ROAS", func(c *domain.Campaign) string { return utils.FormatRatio(c.Metrics.ROAS()) }),
			},
			Columns: append([]drilltable.Column[domain.Entity]{
				column("name", "Ad Group", func(a *domain.AdGroup) any { return a.Name }, nil),
				column("audience", "Audience", func(a *domain.AdGroup) any { return a.Audience }, nil),
				column("audience_size", "Audience Size", func(a *domain.AdGroup) any { return a.AudienceSize }, integer),
			}, metricColumns(func(a *domain.AdGroup) domain.Metrics { return a.Metrics })...),
			EmptyMessage: "No ad groups for this campaign",
		},
		domain.LevelAdGroup: {
			Level:    domain.LevelAdGroup,
			Subtitle: as(func(a *domain.AdGroup) string { return a.Audience }),
			KPIs: append([]KPIDescriptor{
				kpi("audience_size", "Audience Size", func(a *domain.AdGroup) string { return utils.FormatCompact(a.AudienceSize) }),
				kpi("spend", "Spend", func(a *domain.AdGroup) string { return utils.FormatCurrency(a.Metrics.Spend) }),
				kpi("ctr", "CTR", func(a *domain.AdGroup) string { return utils.FormatPrecisePercent(a.Metrics.CTR()) }),
			}, propensityKPIs()...),
			Columns: []drilltable.Column[domain.Entity]{
				column("name", "Package", func(p *domain.Package) any { return p.Name }, nil),
				column("publisher", "Publisher", func(p *domain.Package) any { return p.Publisher }, nil),
				column("cpm", "CPM", func(p *domain.Package) any { return p.CPM }, currency),
				column("impressions", "Impressions", func(p *domain.Package) any { return p.Impressions }, integer),
				column("spend", "Spend", func(p *domain.Package) any { return p.Spend }, currency),
			},
			EmptyMessage: "No packages for this ad group",
		},
		domain.LevelPackage: {
			Level:    domain.LevelPackage,
			Subtitle: as(func(p *domain.Package) string { return p.Publisher }),
			KPIs: []KPIDescriptor{
				kpi("cpm", "CPM", func(p *domain.Package) string { return utils.FormatCurrency(p.CPM) }),
				kpi("impressions", "Impressions", func(p *domain.Package) string { return utils.FormatCompact(p.Impressions) }),
				kpi("spend", "Spend", func(p *domain.Package) string { return utils.FormatCurrency(p.Spend) }),
			},
			Columns: []drilltable.Column[domain.Entity]{
				column("name", "Deal", func(d *domain.Deal) any { return d.Name }, nil),
				column("type", "Type", func(d *domain.Deal) any { return d.Type }, nil),
				column("cpm", "CPM", func(d *domain.Deal) any { return d.CPM }, currency),
				column("impressions_bought", "Impressions Bought", func(d *domain.Deal) any { return d.ImpressionsBought }, integer),
			},
			EmptyMessage: "No deals for this package",
		},
		domain.LevelDeal: {
			Level:    domain.LevelDeal,
			Subtitle: as(func(d *domain.Deal) string { return string(d.Type) }),
			KPIs: []KPIDescriptor{
				kpi("type", "Deal Type", func(d *domain.Deal) string { return string(d.Type) }),
				kpi("cpm", "CPM", func(d *domain.Deal) string { return utils.FormatCurrency(d.CPM) }),
				kpi("impressions_bought", "Impressions Bought", func(d *domain.Deal) string { return utils.FormatCompact(d.ImpressionsBought) }),
			},
			Columns: []drilltable.Column[domain.Entity]{
				column("name", "Creative", func(c *domain.Creative) any { return c.Name }, nil),
				column("format", "Format", func(c *domain.Creative) any { return c.Format }, nil),
				column("impressions", "Impressions", func(c *domain.Creative) any { return c.Impressions }, integer),
				column("spend", "Spend", func(c *domain.Creative) any { return c.Spend }, currency),
				{
					Key:   "performance",
					Label: "Performance",
					Render: func(_ any, row domain.Entity) string {
						c := row.(*domain.Creative)
						if c.IsVideo() {
							return fmt.Sprintf("VTR %s", optionalPercent(c.VTR))
						}
						if c.CTR == nil {
							return "CTR n/a"
						}
						return fmt.Sprintf("CTR %s", utils.FormatPrecisePercent(*c.CTR))
					},
				},
			},
			EmptyMessage: "No creatives for this deal",
		},
		domain.LevelCreative: {
			Level: domain.LevelCreative,
			Subtitle: as(func(c *domain.Creative) string {
				if c.Size != "" {
					return fmt.Sprintf("%s · %s", c.Format, c.Size)
				}
				return string(c.Format)
			}),
			Columns: []drilltable.Column[domain.Entity]{
				column("dma", "DMA", func(g *domain.Geo) any { return g.DMAName }, nil),
				column("dma_code", "DMA Code", func(g *domain.Geo) any { return g.DMACode }, nil),
				column("impressions", "Impressions", func(g *domain.Geo) any { return g.Impressions }, integer),
			},
			EmptyMessage: "No geo delivery for this creative",
		},
		domain.LevelGeo: {
			Level:    domain.LevelGeo,
			Subtitle: as(func(g *domain.Geo) string { return fmt.Sprintf("DMA %d", g.DMACode) }),
			KPIs: []KPIDescriptor{
				kpi("dma_code", "DMA Code", func(g *domain.Geo) string { return fmt.Sprint(g.DMACode) }),
				kpi("impressions", "Impressions", func(g *domain.Geo) string { return utils.FormatInt(g.Impressions) }),
			},
		},
	}
}

// creativeKPIs dependem do formato, por isso não são fixos na especificação
func creativeKPIs(c *domain.Creative) []domain.KPI {
	kpis := []domain.KPI{
		{Key: "format", Label: "Format", Value: string(c.Format)},
		{Key: "impressions", Label: "Impressions", Value: utils.FormatCompact(c.Impressions)},
		{Key: "spend", Label: "Spend", Value: utils.FormatCurrency(c.Spend)},
	}
	if c.IsVideo() {
		return append(kpis,
			domain.KPI{Key: "vtr", Label: "VTR", Value: optionalPercent(c.VTR)},
			domain.KPI{Key: "completion_rate", Label: "Completion Rate", Value: optionalPercent(c.CompletionRate)},
		)
	}
	ctr := "n/a"
	if c.CTR != nil {
		ctr = utils.FormatPrecisePercent(*c.CTR)
	}
	return append(kpis, domain.KPI{Key: "ctr", Label: "CTR", Value: ctr})
}
