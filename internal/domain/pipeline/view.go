package pipeline

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"

	"crm_pipeline/internal/domain/entities"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StageFilterAll disables the stage filter.
const StageFilterAll = "all"

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidStageFilter   = errors.New("invalid stage filter")
)

type SortField string

const (
	SortByCustomer    SortField = "customer"
	SortByAmount      SortField = "amount"
	SortByStage       SortField = "stage"
	SortByProbability SortField = "probability"
	SortByDate        SortField = "date"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return SortByDate, nil
	case SortByCustomer, SortByAmount, SortByStage, SortByProbability, SortByDate:
		return f, nil
	}
	return "", ErrInvalidSortField
}

func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return SortDesc, nil
	case SortAsc, SortDesc:
		return d, nil
	}
	return "", ErrInvalidSortDirection
}

// ParseStageFilter accepts a stage id or "all". Blank means "all".
func ParseStageFilter(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == StageFilterAll {
		return StageFilterAll, nil
	}
	if !entities.Stage(s).IsValid() {
		return "", ErrInvalidStageFilter
	}
	return s, nil
}

// SortState is the active sort column and direction.
type SortState struct {
	Field     SortField
	Direction SortDirection
}

func DefaultSortState() SortState {
	return SortState{Field: SortByDate, Direction: SortDesc}
}

// Toggle selects field. Selecting the active field flips the direction, a
// new field starts descending.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == SortAsc {
			return SortState{Field: field, Direction: SortDesc}
		}
		return SortState{Field: field, Direction: SortAsc}
	}
	return SortState{Field: field, Direction: SortDesc}
}

// Filters are the user controlled view parameters.
type Filters struct {
	Query         string
	Stage         string
	SortField     SortField
	SortDirection SortDirection
}

func DefaultFilters() Filters {
	s := DefaultSortState()
	return Filters{Stage: StageFilterAll, SortField: s.Field, SortDirection: s.Direction}
}

// Normalized fills zero values with the defaults.
func (f Filters) Normalized() Filters {
	d := DefaultFilters()
	if f.Stage == "" {
		f.Stage = d.Stage
	}
	if f.SortField == "" {
		f.SortField = d.SortField
	}
	if f.SortDirection == "" {
		f.SortDirection = d.SortDirection
	}
	return f
}

// CacheKey identifies the output of View for a fixed input collection.
// Queries differing only by case share a key since matching ignores case.
func (f Filters) CacheKey() string {
	f = f.Normalized()
	return strings.Join([]string{
		strconv.Quote(strings.ToLower(f.Query)),
		f.Stage,
		string(f.SortField),
		string(f.SortDirection),
	}, "|")
}

// View filters and sorts items. The input slice is left untouched.
func View(items []entities.PipelineItem, f Filters) []entities.PipelineItem {
	f = f.Normalized()
	out := Filter(items, f.Query, f.Stage)
	Sort(out, f.SortField, f.SortDirection)
	return out
}

// Filter returns the items matching query and stage in their input order.
func Filter(items []entities.PipelineItem, query, stage string) []entities.PipelineItem {
	q := strings.ToLower(query)
	out := make([]entities.PipelineItem, 0, len(items))
	for _, item := range items {
		if !matchesQuery(item, q) {
			continue
		}
		if stage != "" && stage != StageFilterAll && string(item.Stage) != stage {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item entities.PipelineItem, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.CustomerName), lowerQuery) ||
		strings.Contains(strings.ToLower(item.Number), lowerQuery)
}

// Sort orders items in place. Equal elements keep their relative order in
// both directions.
func Sort(items []entities.PipelineItem, field SortField, dir SortDirection) {
	compare := comparator(field)
	slices.SortStableFunc(items, func(a, b entities.PipelineItem) int {
		c := compare(a, b)
		if dir == SortAsc {
			return c
		}
		return -c
	})
}

func comparator(field SortField) func(a, b entities.PipelineItem) int {
	switch field {
	case SortByCustomer:
		// Collators keep scratch buffers, one per sort.
		col := collate.New(language.English)
		return func(a, b entities.PipelineItem) int {
			return col.CompareString(a.CustomerName, b.CustomerName)
		}
	case SortByAmount:
		return func(a, b entities.PipelineItem) int {
			return cmp.Compare(a.TotalAmount, b.TotalAmount)
		}
	case SortByStage:
		return func(a, b entities.PipelineItem) int {
			return strings.Compare(string(a.Stage), string(b.Stage))
		}
	case SortByProbability:
		return func(a, b entities.PipelineItem) int {
			return cmp.Compare(a.Probability, b.Probability)
		}
	default:
		return func(a, b entities.PipelineItem) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
}
