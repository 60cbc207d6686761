package response

import (
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/domain/pipeline"
	"crm_pipeline/internal/usecase"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// label renders a lowercase identifier for display. Casers keep state, so
// one is built per call.
func label(s string) string {
	return cases.Title(language.English).String(s)
}

type PipelineItemResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	TypeLabel     string    `json:"type_label"`
	Number        string    `json:"number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	CreatedAt     time.Time `json:"created_at"`
	Stage         string    `json:"stage"`
	StageName     string    `json:"stage_name"`
	Probability   float64   `json:"probability"`
	QuoteID       string    `json:"quote_id,omitempty"`
}

func FromPipelineItem(p entities.PipelineItem) PipelineItemResponse {
	def, _ := p.Stage.Definition()
	return PipelineItemResponse{
		ID:            p.ID,
		Type:          string(p.Type),
		TypeLabel:     label(string(p.Type)),
		Number:        p.Number,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		TotalAmount:   p.TotalAmount,
		Status:        p.Status,
		StatusLabel:   label(p.Status),
		CreatedAt:     p.CreatedAt,
		Stage:         string(p.Stage),
		StageName:     def.Name,
		Probability:   p.Probability,
		QuoteID:       p.QuoteID,
	}
}

func FromPipelineItems(items []entities.PipelineItem) []PipelineItemResponse {
	out := make([]PipelineItemResponse, len(items))
	for i, it := range items {
		out[i] = FromPipelineItem(it)
	}
	return out
}

type PipelineItemsResponse struct {
	Items   []PipelineItemResponse  `json:"items"`
	Metrics ForecastMetricsResponse `json:"metrics"`
}

func FromPipelineItemsWithMetrics(items []entities.PipelineItem) PipelineItemsResponse {
	return PipelineItemsResponse{
		Items:   FromPipelineItems(items),
		Metrics: FromForecastMetrics(pipeline.Metrics(items)),
	}
}

type ForecastMetricsResponse struct {
	ItemCount     int     `json:"item_count"`
	TotalValue    float64 `json:"total_value"`
	WeightedValue float64 `json:"weighted_value"`
}

func FromForecastMetrics(m pipeline.ForecastMetrics) ForecastMetricsResponse {
	return ForecastMetricsResponse{
		ItemCount:     m.ItemCount,
		TotalValue:    m.TotalValue,
		WeightedValue: m.WeightedValue,
	}
}

type StageResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

func FromStageDefinition(d entities.StageDefinition) StageResponse {
	return StageResponse{ID: string(d.ID), Name: d.Name, Probability: d.Probability}
}

func FromStageDefinitions(defs []entities.StageDefinition) []StageResponse {
	out := make([]StageResponse, len(defs))
	for i, d := range defs {
		out[i] = FromStageDefinition(d)
	}
	return out
}

// FromStageGroups keys every stage of the funnel, empty ones included.
func FromStageGroups(groups map[entities.Stage][]entities.PipelineItem) map[string][]PipelineItemResponse {
	out := make(map[string][]PipelineItemResponse, len(entities.Stages))
	for _, def := range entities.Stages {
		out[string(def.ID)] = FromPipelineItems(groups[def.ID])
	}
	return out
}

type KanbanColumnResponse struct {
	Stage      StageResponse          `json:"stage"`
	ItemCount  int                    `json:"item_count"`
	TotalValue float64                `json:"total_value"`
	Items      []PipelineItemResponse `json:"items"`
}

func FromKanbanColumns(cols []pipeline.StageColumn) []KanbanColumnResponse {
	out := make([]KanbanColumnResponse, len(cols))
	for i, c := range cols {
		out[i] = KanbanColumnResponse{
			Stage:      FromStageDefinition(c.Stage),
			ItemCount:  len(c.Items),
			TotalValue: c.TotalValue,
			Items:      FromPipelineItems(c.Items),
		}
	}
	return out
}

type SortResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type TableRowResponse struct {
	Index int                  `json:"index"`
	Item  PipelineItemResponse `json:"item"`
}

type TableResponse struct {
	Sort SortResponse       `json:"sort"`
	Rows []TableRowResponse `json:"rows"`
}

func FromTable(rows []pipeline.TableRow, f pipeline.Filters) TableResponse {
	f = f.Normalized()
	out := TableResponse{
		Sort: SortResponse{Field: string(f.SortField), Direction: string(f.SortDirection)},
		Rows: make([]TableRowResponse, len(rows)),
	}
	for i, r := range rows {
		out.Rows[i] = TableRowResponse{Index: r.Index, Item: FromPipelineItem(r.Item)}
	}
	return out
}

type SplitViewResponse struct {
	Items            []PipelineItemResponse `json:"items"`
	Selected         *PipelineItemResponse  `json:"selected"`
	SelectionCleared bool                   `json:"selection_cleared"`
}

func FromSplitView(v pipeline.SplitView) SplitViewResponse {
	out := SplitViewResponse{
		Items:            FromPipelineItems(v.Items),
		SelectionCleared: v.Cleared,
	}
	if v.Selected != nil {
		sel := FromPipelineItem(*v.Selected)
		out.Selected = &sel
	}
	return out
}

type PipelineStatusResponse struct {
	OrganizationID  string    `json:"organization_id"`
	Origin          string    `json:"origin"`
	Revision        uint64    `json:"revision"`
	ItemCount       int       `json:"item_count"`
	QuotesLoaded    bool      `json:"quotes_loaded"`
	InvoicesLoaded  bool      `json:"invoices_loaded"`
	CustomersLoaded bool      `json:"customers_loaded"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromPipelineStatus(s usecase.PipelineStatus) PipelineStatusResponse {
	return PipelineStatusResponse{
		OrganizationID:  s.OrganizationID,
		Origin:          string(s.Origin),
		Revision:        s.Revision,
		ItemCount:       s.ItemCount,
		QuotesLoaded:    s.QuotesLoaded,
		InvoicesLoaded:  s.InvoicesLoaded,
		CustomersLoaded: s.CustomersLoaded,
		UpdatedAt:       s.UpdatedAt,
	}
}
