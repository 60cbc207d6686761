package pipeline

import (
	"errors"
	"strings"

	"crm_pipeline/internal/domain/entities"
)

var ErrInvalidViewMode = errors.New("invalid view mode")

// ViewMode is the projection shown to the user. Any mode may follow any other.
type ViewMode string

const (
	ViewModeKanban ViewMode = "kanban"
	ViewModeTable  ViewMode = "table"
	ViewModeSplit  ViewMode = "split"
)

const DefaultViewMode = ViewModeSplit

func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return DefaultViewMode, nil
	case ViewModeKanban, ViewModeTable, ViewModeSplit:
		return m, nil
	}
	return "", ErrInvalidViewMode
}

// GroupByStage partitions items by stage. Every stage of the funnel is a key,
// empty stages map to an empty slice. Items of unknown stages are dropped.
func GroupByStage(items []entities.PipelineItem) map[entities.Stage][]entities.PipelineItem {
	groups := make(map[entities.Stage][]entities.PipelineItem, len(entities.Stages))
	for _, def := range entities.Stages {
		groups[def.ID] = []entities.PipelineItem{}
	}
	for _, item := range items {
		if g, ok := groups[item.Stage]; ok {
			groups[item.Stage] = append(g, item)
		}
	}
	return groups
}

// StageColumn is one kanban column.
type StageColumn struct {
	Stage      entities.StageDefinition
	Items      []entities.PipelineItem
	TotalValue float64
}

// KanbanColumns returns one column per stage in funnel order.
func KanbanColumns(items []entities.PipelineItem) []StageColumn {
	groups := GroupByStage(items)
	cols := make([]StageColumn, 0, len(entities.Stages))
	for _, def := range entities.Stages {
		col := StageColumn{Stage: def, Items: groups[def.ID]}
		for _, item := range col.Items {
			col.TotalValue += item.TotalAmount
		}
		cols = append(cols, col)
	}
	return cols
}

// TableRow is an item with its 1-based position in the table.
type TableRow struct {
	Index int
	Item  entities.PipelineItem
}

func TableRows(items []entities.PipelineItem) []TableRow {
	rows := make([]TableRow, len(items))
	for i, item := range items {
		rows[i] = TableRow{Index: i + 1, Item: item}
	}
	return rows
}

// Selection identifies the item open in the split view detail pane.
type Selection struct {
	Type entities.SourceType
	ID   string
}

func (s Selection) Key() string {
	return entities.ItemKey(s.Type, s.ID)
}

// SplitView is the master list plus the resolved detail item.
//
// Selected is nil when nothing is selected or when the selection is no
// longer part of Items; Cleared reports the latter.
type SplitView struct {
	Items    []entities.PipelineItem
	Selected *entities.PipelineItem
	Cleared  bool
}

// Split resolves sel against items.
func Split(items []entities.PipelineItem, sel *Selection) SplitView {
	view := SplitView{Items: items}
	if sel == nil {
		return view
	}
	key := sel.Key()
	for i := range items {
		if items[i].Key() == key {
			selected := items[i]
			view.Selected = &selected
			return view
		}
	}
	view.Cleared = true
	return view
}
