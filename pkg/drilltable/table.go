// Package drilltable implementa uma tabela genérica, independente de nível,
// cujas linhas descem um nível da hierarquia quando ativadas.
package drilltable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultEmptyMessage é exibida quando a tabela não possui linhas
const DefaultEmptyMessage = "No records"

var (
	ErrDuplicateColumn = errors.New("drilltable: duplicate column key")
	ErrMissingKey      = errors.New("drilltable: column key is required")
	ErrRowNotFound     = errors.New("drilltable: row not found")
	ErrNotActivatable  = errors.New("drilltable: table has no activation callback")
)

// Column descreve uma coluna. Value extrai o valor da célula a partir da linha;
// Render, quando presente, transforma (valor, linha completa) no conteúdo exibido.
type Column[R any] struct {
	Key    string
	Label  string
	Width  string
	Value  func(row R) any
	Render func(value any, row R) string
}

// Table é a configuração de uma tabela: colunas, linhas e callbacks.
// RowID fornece a identidade estável da linha; sem ela (ou com id vazio)
// a posição da linha é usada.
type Table[R any] struct {
	Columns      []Column[R]
	Rows         []R
	RowID        func(row R) string
	Href         func(row R) string
	OnActivate   func(row R) error
	EmptyMessage string
}

// HeaderCell é uma coluna já resolvida para exibição
type HeaderCell struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Width string `json:"width"`
}

// Cell é o conteúdo exibido de uma célula
type Cell struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// RowView é uma linha interativa
type RowView struct {
	Key   string `json:"key"`
	Cells []Cell `json:"cells"`
	Href  string `json:"href,omitempty"`
}

// View é a saída renderizável da tabela. Empty e Rows são mutuamente exclusivos.
type View struct {
	Columns      []HeaderCell `json:"columns"`
	Rows         []RowView    `json:"rows"`
	Empty        bool         `json:"empty"`
	EmptyMessage string       `json:"empty_message,omitempty"`
}

// Validate verifica as chaves das colunas
func (t *Table[R]) Validate() error {
	seen := make(map[string]struct{}, len(t.Columns))
	for i, column := range t.Columns {
		if column.Key == "" {
			return fmt.Errorf("%w: column %d", ErrMissingKey, i)
		}
		if _, exists := seen[column.Key]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, column.Key)
		}
		seen[column.Key] = struct{}{}
	}
	return nil
}

// View monta o cabeçalho e uma linha por registro, ou o estado vazio
func (t *Table[R]) View() (*View, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	view := &View{
		Columns: t.header(),
		Rows:    make([]RowView, 0, len(t.Rows)),
	}

	if len(t.Rows) == 0 {
		view.Empty = true
		view.EmptyMessage = t.EmptyMessage
		if view.EmptyMessage == "" {
			view.EmptyMessage = DefaultEmptyMessage
		}
		return view, nil
	}

	for i, row := range t.Rows {
		rowView := RowView{
			Key:   t.rowKey(i, row),
			Cells: make([]Cell, 0, len(t.Columns)),
		}
		if t.Href != nil {
			rowView.Href = t.Href(row)
		}
		for _, column := range t.Columns {
			rowView.Cells = append(rowView.Cells, Cell{
				Key:  column.Key,
				Text: renderCell(column, row),
			})
		}
		view.Rows = append(view.Rows, rowView)
	}

	return view, nil
}

// Activate invoca o callback de ativação com a linha completa identificada por
// key. Ids reais têm precedência; chaves posicionais ("#n") só alcançam linhas
// sem RowID.
func (t *Table[R]) Activate(key string) error {
	if t.OnActivate == nil {
		return ErrNotActivatable
	}
	for _, row := range t.Rows {
		if id := t.rowID(row); id != "" && id == key {
			return t.OnActivate(row)
		}
	}
	if index, ok := positionOf(key); ok && index < len(t.Rows) && t.rowID(t.Rows[index]) == "" {
		return t.OnActivate(t.Rows[index])
	}
	return fmt.Errorf("%w: %s", ErrRowNotFound, key)
}

// ActivateAt invoca o callback de ativação com a linha na posição index
func (t *Table[R]) ActivateAt(index int) error {
	if t.OnActivate == nil {
		return ErrNotActivatable
	}
	if index < 0 || index >= len(t.Rows) {
		return fmt.Errorf("%w: index %d", ErrRowNotFound, index)
	}
	return t.OnActivate(t.Rows[index])
}

func (t *Table[R]) header() []HeaderCell {
	cells := make([]HeaderCell, 0, len(t.Columns))
	share := equalShare(len(t.Columns))
	for _, column := range t.Columns {
		width := column.Width
		if width == "" {
			width = share
		}
		cells = append(cells, HeaderCell{Key: column.Key, Label: column.Label, Width: width})
	}
	return cells
}

// PositionPrefix marca as chaves derivadas da posição da linha
const PositionPrefix = "#"

func (t *Table[R]) rowID(row R) string {
	if t.RowID == nil {
		return ""
	}
	return t.RowID(row)
}

func (t *Table[R]) rowKey(index int, row R) string {
	if id := t.rowID(row); id != "" {
		return id
	}
	return PositionPrefix + strconv.Itoa(index)
}

func positionOf(key string) (int, bool) {
	raw, ok := strings.CutPrefix(key, PositionPrefix)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

func renderCell[R any](column Column[R], row R) string {
	var value any
	if column.Value != nil {
		value = column.Value(row)
	}
	if column.Render != nil {
		return column.Render(value, row)
	}
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// equalShare divide 100% igualmente entre n colunas
func equalShare(n int) string {
	if n == 0 {
		return ""
	}
	share := strconv.FormatFloat(100/float64(n), 'f', 2, 64)
	share = strings.TrimRight(strings.TrimRight(share, "0"), ".")
	return share + "%"
}
