package request

import (
	"errors"
	"strings"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/domain/pipeline"
)

var (
	ErrInvalidSelection = errors.New("selected_type and selected_id must be sent together")
	ErrInvalidItemType  = errors.New("invalid selected_type")
)

// PipelineQuery is the query string accepted by every pipeline read route.
//
// Toggle names a column header the user clicked; it is applied on top of
// Sort/Direction the way the table header does it (same column flips the
// direction, another column starts descending).
type PipelineQuery struct {
	Query     string `form:"q"`
	Stage     string `form:"stage"`
	Sort      string `form:"sort"`
	Direction string `form:"direction"`
	Toggle    string `form:"toggle"`
}

func (q PipelineQuery) ToFilters() (pipeline.Filters, error) {
	stage, err := pipeline.ParseStageFilter(q.Stage)
	if err != nil {
		return pipeline.Filters{}, err
	}
	field, err := pipeline.ParseSortField(q.Sort)
	if err != nil {
		return pipeline.Filters{}, err
	}
	dir, err := pipeline.ParseSortDirection(q.Direction)
	if err != nil {
		return pipeline.Filters{}, err
	}

	sort := pipeline.SortState{Field: field, Direction: dir}
	if strings.TrimSpace(q.Toggle) != "" {
		clicked, err := pipeline.ParseSortField(q.Toggle)
		if err != nil {
			return pipeline.Filters{}, err
		}
		sort = sort.Toggle(clicked)
	}

	return pipeline.Filters{
		Query:         q.Query,
		Stage:         stage,
		SortField:     sort.Field,
		SortDirection: sort.Direction,
	}, nil
}

// ViewQuery selects the projection of the combined view route.
type ViewQuery struct {
	PipelineQuery
	View string `form:"view"`
	SelectionQuery
}

func (q ViewQuery) ToViewMode() (pipeline.ViewMode, error) {
	return pipeline.ParseViewMode(q.View)
}

// SelectionQuery identifies the item open in the split view detail pane.
type SelectionQuery struct {
	SelectedType string `form:"selected_type"`
	SelectedID   string `form:"selected_id"`
}

// ToSelection returns nil when nothing is selected.
func (q SelectionQuery) ToSelection() (*pipeline.Selection, error) {
	t := strings.ToLower(strings.TrimSpace(q.SelectedType))
	id := strings.TrimSpace(q.SelectedID)
	if t == "" && id == "" {
		return nil, nil
	}
	if t == "" || id == "" {
		return nil, ErrInvalidSelection
	}
	st := entities.SourceType(t)
	if !st.IsValid() {
		return nil, ErrInvalidItemType
	}
	return &pipeline.Selection{Type: st, ID: id}, nil
}

// SplitQuery is the query string of the split view route.
type SplitQuery struct {
	PipelineQuery
	SelectionQuery
}
