package gamification

// Progress is a student's accumulated gamification state. It is an explicit
// record threaded through every engine call; the engine itself holds no state.
// Points and the achievement set only ever grow.
type Progress struct {
	Points             int
	Level              int
	Achievements       []Achievement
	QuestionsReviewed  int
	ProfessorQuestions int
	GoalsCompleted     int
	LastAccessDate     string // YYYY-MM-DD
}

// Achievement is an unlocked badge.
type Achievement struct {
	Name        string
	Emoji       string
	Description string
	Points      int
}

// Has reports whether the badge with the given name is already unlocked.
func (p *Progress) Has(name string) bool {
	for _, a := range p.Achievements {
		if a.Name == name {
			return true
		}
	}
	return false
}

// ErrorRow is one incorrectly answered question from the snapshot.
type ErrorRow struct {
	QuestionNumber int
	Content        string
}

// Snapshot is a read-only summary of a student's latest performance,
// produced once per dataset load and never mutated by the engine.
type Snapshot struct {
	CorrectPortuguese  int
	CorrectMathematics int
	PortugueseErrors   []ErrorRow
	MathematicsErrors  []ErrorRow
}

// TotalErrors counts error rows across both subjects.
func (s Snapshot) TotalErrors() int {
	return len(s.PortugueseErrors) + len(s.MathematicsErrors)
}
