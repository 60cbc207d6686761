package pipeline

import (
	"testing"

	"crm_pipeline/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Quotes(t *testing.T) {
	tests := []struct {
		status string
		want   entities.Stage
		ok     bool
	}{
		{"draft", entities.StageProposal, true},
		{"sent", entities.StageProposal, true},
		{"viewed", entities.StageProposal, true},
		{"accepted", "", false},
		{"declined", "", false},
		{"expired", "", false},
		{"converted", "", false},
		{"paid", "", false},
		{"", "", false},
		{"SENT", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			c, ok := Classify(entities.SourceTypeQuote, tt.status)
			require.Equal(t, tt.ok, ok)
			if !ok {
				assert.Equal(t, Classification{}, c)
				return
			}
			assert.Equal(t, tt.want, c.Stage)
			assert.Equal(t, 0.5, c.Probability)
		})
	}
}

func TestClassify_Invoices(t *testing.T) {
	tests := []struct {
		status string
		want   entities.Stage
		p      float64
		ok     bool
	}{
		{"draft", entities.StageNegotiation, 0.75, true},
		{"sent", entities.StageNegotiation, 0.75, true},
		{"viewed", entities.StageNegotiation, 0.75, true},
		{"paid", entities.StageWon, 1.0, true},
		{"partial", "", 0, false},
		{"overdue", "", 0, false},
		{"cancelled", "", 0, false},
		{"refunded", "", 0, false},
		{"accepted", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			c, ok := Classify(entities.SourceTypeInvoice, tt.status)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, c.Stage)
			assert.Equal(t, tt.p, c.Probability)
		})
	}
}

func TestClassify_OnlyReachableStages(t *testing.T) {
	statuses := []string{
		"draft", "sent", "viewed", "accepted", "declined", "expired", "converted",
		"paid", "partial", "overdue", "cancelled", "refunded", "archived", "",
	}
	allowed := map[entities.SourceType]map[entities.Stage]bool{
		entities.SourceTypeQuote:   {entities.StageProposal: true},
		entities.SourceTypeInvoice: {entities.StageNegotiation: true, entities.StageWon: true},
	}

	for typ, stages := range allowed {
		for _, s := range statuses {
			c, ok := Classify(typ, s)
			if !ok {
				continue
			}
			assert.Truef(t, stages[c.Stage], "%s/%s classified as %s", typ, s, c.Stage)
			assert.Equal(t, c.Stage.Probability(), c.Probability)
		}
	}
}

func TestClassify_UnknownSourceType(t *testing.T) {
	_, ok := Classify(entities.SourceType("order"), "sent")
	assert.False(t, ok)
}
