package pipeline

import (
	"testing"

	"crm_pipeline/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByStage(t *testing.T) {
	items := []entities.PipelineItem{
		item(entities.SourceTypeQuote, "1", "QT-1", "A", 10, entities.StageProposal, day(5)),
		item(entities.SourceTypeInvoice, "2", "INV-2", "B", 20, entities.StageNegotiation, day(4)),
		item(entities.SourceTypeInvoice, "3", "INV-3", "C", 30, entities.StageWon, day(3)),
		item(entities.SourceTypeQuote, "4", "QT-4", "D", 40, entities.StageProposal, day(2)),
		item(entities.SourceTypeQuote, "5", "QT-5", "E", 50, entities.StageLead, day(1)),
	}

	groups := GroupByStage(items)

	require.Len(t, groups, len(entities.Stages))
	assert.Equal(t, []string{"quote:1", "quote:4"}, keys(groups[entities.StageProposal]))
	assert.Len(t, groups[entities.StageLead], 1)
	assert.Len(t, groups[entities.StageNegotiation], 1)
	assert.Len(t, groups[entities.StageWon], 1)

	for _, s := range []entities.Stage{entities.StageQualified, entities.StageLost} {
		g, ok := groups[s]
		assert.Truef(t, ok, "%s must be present", s)
		assert.NotNil(t, g)
		assert.Empty(t, g)
	}
}

func TestGroupByStage_DropsUnknownStage(t *testing.T) {
	groups := GroupByStage([]entities.PipelineItem{{ID: "x", Stage: "closing"}})
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Zero(t, total)
}

func TestKanbanColumns(t *testing.T) {
	cols := KanbanColumns(sampleItems())

	require.Len(t, cols, 6)
	for i, def := range entities.Stages {
		assert.Equal(t, def, cols[i].Stage)
	}
	assert.Equal(t, 2000.0, cols[3].TotalValue)
	assert.Equal(t, 2000.0, cols[2].TotalValue)
	assert.Empty(t, cols[0].Items)
}

func TestTableRows(t *testing.T) {
	rows := TableRows(View(sampleItems(), Filters{SortField: SortByAmount, SortDirection: SortAsc}))

	require.Len(t, rows, 5)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "q3", rows[0].Item.ID)
	assert.Equal(t, 5, rows[4].Index)
	assert.Empty(t, TableRows(nil))
}

func TestSplit(t *testing.T) {
	items := sampleItems()

	t.Run("no selection", func(t *testing.T) {
		v := Split(items, nil)
		assert.Nil(t, v.Selected)
		assert.False(t, v.Cleared)
		assert.Len(t, v.Items, 5)
	})

	t.Run("selection resolved by type and id", func(t *testing.T) {
		v := Split(items, &Selection{Type: entities.SourceTypeInvoice, ID: "i1"})
		require.NotNil(t, v.Selected)
		assert.Equal(t, "acme", v.Selected.CustomerName)
	})

	t.Run("same id other type does not match", func(t *testing.T) {
		v := Split(items, &Selection{Type: entities.SourceTypeQuote, ID: "i1"})
		assert.Nil(t, v.Selected)
		assert.True(t, v.Cleared)
	})

	t.Run("filtered out selection is cleared", func(t *testing.T) {
		filtered := View(items, Filters{Stage: "won"})
		v := Split(filtered, &Selection{Type: entities.SourceTypeQuote, ID: "q1"})
		assert.Nil(t, v.Selected)
		assert.True(t, v.Cleared)
	})
}

func TestParseViewMode(t *testing.T) {
	m, err := ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, ViewModeSplit, m)

	for _, s := range []string{"kanban", "TABLE", "split"} {
		_, err := ParseViewMode(s)
		assert.NoError(t, err)
	}

	_, err = ParseViewMode("grid")
	assert.ErrorIs(t, err, ErrInvalidViewMode)
}
