// Package viewing monta a visão de um nível da hierarquia e o resumo executivo.
package viewing

import (
	"fmt"

	"github.com/vfg2006/agency-dashboard/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/navigating"
	"github.com/vfg2006/agency-dashboard/internal/usecases/resolving"
	"github.com/vfg2006/agency-dashboard/pkg/drilltable"
	"github.com/vfg2006/agency-dashboard/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/viewer_mock.go -package=mocks

// Viewer é consumido pela camada de renderização (HTTP e CLI)
type Viewer interface {
	// Level monta a visão do caminho. Um caminho inválido não é erro: a visão
	// volta com NotFound e apenas o breadcrumb preenchido.
	Level(path domain.Path) (*domain.LevelView, error)

	// Summary retorna o resumo executivo da agência
	Summary() *domain.ExecutiveSummary
}

type Service struct {
	repo      repository.HierarchyRepository
	resolver  resolving.Resolver
	specs     map[domain.Level]*LevelSpec
	rootLabel string
}

// NewService cria o serviço de visões. rootLabel vazio usa o nome da agência.
func NewService(repo repository.HierarchyRepository, resolver resolving.Resolver, rootLabel string) *Service {
	return &Service{
		repo:      repo,
		resolver:  resolver,
		specs:     DefaultSpecs(),
		rootLabel: rootLabel,
	}
}

func (s *Service) RootLabel() string {
	if s.rootLabel != "" {
		return s.rootLabel
	}
	return s.repo.Agency().Name
}

func (s *Service) Level(path domain.Path) (*domain.LevelView, error) {
	return s.LevelOf(s.resolver.Resolve(path))
}

// LevelOf monta a visão de uma resolução já calculada
func (s *Service) LevelOf(resolution *resolving.Resolution) (*domain.LevelView, error) {
	view := &domain.LevelView{
		Path:        resolution.Path.URL(),
		Depth:       resolution.Depth(),
		Breadcrumbs: navigating.Breadcrumbs(resolution, s.RootLabel()),
	}

	if up, ok := navigating.UpPath(resolution); ok {
		view.Up = up.URL()
	}

	if !resolution.Valid() {
		view.NotFound = true
		view.InvalidAt = resolution.InvalidAt
		return view, nil
	}

	level := resolution.Path.Level()
	spec, ok := s.specs[level]
	if !ok {
		return nil, fmt.Errorf("viewing: no spec for level %s", level)
	}

	view.Level = level.String()
	if current := resolution.Current(); current != nil {
		view.Title = current.Label()
		if spec.Subtitle != nil {
			view.Subtitle = spec.Subtitle(current)
		}
		view.KPIs = s.kpis(spec, current)
	} else {
		view.Title = s.RootLabel()
		view.Subtitle = "Manager"
		view.KPIs = s.agencyKPIs()
	}

	if resolution.IsLeaf() {
		return view, nil
	}

	table, err := s.ChildTable(resolution, nil).View()
	if err != nil {
		return nil, err
	}
	view.ChildLevel = resolution.ChildLevel.String()
	view.Table = table

	return view, nil
}

// ChildTable monta a tabela de filhos da resolução. onActivate recebe o
// registro completo da linha ativada. Retorna nil na folha ou em caminho inválido.
func (s *Service) ChildTable(resolution *resolving.Resolution, onActivate func(domain.Entity) error) *drilltable.Table[domain.Entity] {
	if !resolution.Valid() || resolution.IsLeaf() {
		return nil
	}
	spec := s.specs[resolution.Path.Level()]
	return &drilltable.Table[domain.Entity]{
		Columns:      spec.Columns,
		Rows:         resolution.Children,
		RowID:        func(e domain.Entity) string { return e.EntityID() },
		Href:         func(e domain.Entity) string { return resolution.Path.Append(e.EntityID()).URL() },
		OnActivate:   onActivate,
		EmptyMessage: spec.EmptyMessage,
	}
}

func (s *Service) kpis(spec *LevelSpec, current domain.Entity) []domain.KPI {
	if creative, ok := current.(*domain.Creative); ok {
		return creativeKPIs(creative)
	}
	kpis := make([]domain.KPI, 0, len(spec.KPIs))
	for _, d := range spec.KPIs {
		kpis = append(kpis, domain.KPI{Key: d.Key, Label: d.Label, Value: d.Value(current)})
	}
	return kpis
}

func (s *Service) totals() domain.Metrics {
	totals := domain.Metrics{}
	for _, c := range s.repo.Clients() {
		totals = totals.Add(c.Metrics)
	}
	return totals
}

func (s *Service) agencyKPIs() []domain.KPI {
	totals := s.totals()
	return []domain.KPI{
		{Key: "clients", Label: "Clients", Value: utils.FormatInt(int64(s.repo.Count(domain.LevelClient)))},
		{Key: "campaigns", Label: "Campaigns", Value: utils.FormatInt(int64(s.repo.Count(domain.LevelCampaign)))},
		{Key: "spend", Label: "Spend", Value: utils.FormatCurrency(totals.Spend)},
		{Key: "impressions", Label: "Impressions", Value: utils.FormatCompact(totals.Impressions)},
		{Key: "ctr", Label: "CTR", Value: utils.FormatPrecisePercent(totals.CTR())},
		{Key: "roas", Label: "ROAS", Value: utils.FormatRatio(totals.ROAS())},
	}
}

func (s *Service) Summary() *domain.ExecutiveSummary {
	totals := s.totals()
	summary := &domain.ExecutiveSummary{
		Agency:    s.repo.Agency(),
		Totals:    totals,
		CTR:       utils.RoundWithTwoDecimalPlace(totals.CTR()),
		ROAS:      utils.RoundWithTwoDecimalPlace(totals.ROAS()),
		KPIs:      s.agencyKPIs(),
		Clients:   make([]domain.ClientSummary, 0, s.repo.Count(domain.LevelClient)),
		Campaigns: make([]domain.CampaignPacing, 0, s.repo.Count(domain.LevelCampaign)),
	}

	for _, c := range s.repo.Clients() {
		summary.Clients = append(summary.Clients, domain.ClientSummary{
			ClientID:  c.ID,
			Name:      c.Name,
			Vertical:  c.Vertical,
			Campaigns: len(s.repo.CampaignsOf(c.ID)),
			Metrics:   c.Metrics,
			CTR:       utils.RoundWithTwoDecimalPlace(c.Metrics.CTR()),
			ROAS:      utils.RoundWithTwoDecimalPlace(c.Metrics.ROAS()),
		})
	}

	for _, c := range s.repo.Campaigns() {
		summary.Campaigns = append(summary.Campaigns, domain.CampaignPacing{
			CampaignID: c.ID,
			ClientID:   c.ClientID,
			Name:       c.Name,
			Budget:     c.Budget,
			Spent:      c.Spent,
			Pacing:     c.Pacing,
			Path:       domain.Path{c.ClientID, c.ID}.URL(),
		})
	}

	return summary
}
