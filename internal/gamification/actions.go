package gamification

// ActionKind enumerates every point-earning user action. The set is closed:
// point values and counters are exhaustive switches so a new kind is a
// compile-time visible change.
type ActionKind string

const (
	ActionDailyAccess       ActionKind = "daily_access"
	ActionQuestionReview    ActionKind = "question_review"
	ActionProfessorQuestion ActionKind = "professor_question"
	ActionGoalCompletion    ActionKind = "goal_completion"
	ActionTutorInteraction  ActionKind = "tutor_interaction"
	ActionTabCompletion     ActionKind = "tab_completion"
	ActionAchievement       ActionKind = "achievement"
)

// Points returns the fixed reward for an action. Unknown kinds are worth 0,
// which makes Apply a no-op for them.
func (k ActionKind) Points() int {
	switch k {
	case ActionDailyAccess:
		return 2
	case ActionQuestionReview:
		return 5
	case ActionProfessorQuestion:
		return 8
	case ActionGoalCompletion:
		return 15
	case ActionTutorInteraction:
		return 3
	case ActionTabCompletion:
		return 20
	case ActionAchievement:
		return 10
	default:
		return 0
	}
}

// Valid reports whether k is one of the known action kinds.
func (k ActionKind) Valid() bool {
	return k.Points() > 0
}
