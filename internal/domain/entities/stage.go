package entities

// Stage is a position in the sales funnel.
type Stage string

const (
	StageLead        Stage = "lead"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// StageDefinition binds a stage to its display name and win probability.
type StageDefinition struct {
	ID          Stage   `json:"id"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

// Stages is the funnel in display order. Lead, qualified and lost are not
// assigned by any classification rule yet but stay part of the funnel.
var Stages = []StageDefinition{
	{ID: StageLead, Name: "Lead", Probability: 0.10},
	{ID: StageQualified, Name: "Qualified", Probability: 0.25},
	{ID: StageProposal, Name: "Proposal", Probability: 0.50},
	{ID: StageNegotiation, Name: "Negotiation", Probability: 0.75},
	{ID: StageWon, Name: "Won", Probability: 1.00},
	{ID: StageLost, Name: "Lost", Probability: 0.00},
}

// Definition returns the table entry for s.
func (s Stage) Definition() (StageDefinition, bool) {
	for _, def := range Stages {
		if def.ID == s {
			return def, true
		}
	}
	return StageDefinition{}, false
}

func (s Stage) IsValid() bool {
	_, ok := s.Definition()
	return ok
}

// Probability returns the win probability of s, 0 for unknown stages.
func (s Stage) Probability() float64 {
	def, _ := s.Definition()
	return def.Probability
}
