package domain

import "github.com/vfg2006/agency-dashboard/pkg/drilltable"

// KPI é um indicador já formatado para exibição
type KPI struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// LevelView é tudo o que a camada de renderização consome para exibir um nível:
// a entidade do próprio nível, os ancestrais (via breadcrumb) e a tabela de filhos.
// Quando NotFound é verdadeiro apenas Breadcrumbs é preenchido.
type LevelView struct {
	Path        string           `json:"path"`
	Depth       int              `json:"depth"`
	Level       string           `json:"level"`
	Title       string           `json:"title,omitempty"`
	Subtitle    string           `json:"subtitle,omitempty"`
	Breadcrumbs []Crumb          `json:"breadcrumbs"`
	Up          string           `json:"up,omitempty"`
	KPIs        []KPI            `json:"kpis,omitempty"`
	ChildLevel  string           `json:"child_level,omitempty"`
	Table       *drilltable.View `json:"table,omitempty"`
	NotFound    bool             `json:"not_found"`
	InvalidAt   int              `json:"invalid_at,omitempty"`
}
