package gamification

// pointsPerLevel: the level is always derived from points, never stored
// independently.
const pointsPerLevel = 50

// LevelFor computes the level for a point total.
func LevelFor(points int) int {
	return points/pointsPerLevel + 1
}

// Apply adds the action's fixed point value to the record, recomputes the
// level, and bumps the matching counter for kinds that have one. Unknown
// kinds are a no-op. Returns the points awarded.
func Apply(p *Progress, kind ActionKind) int {
	points := kind.Points()
	if points == 0 {
		return 0
	}

	p.Points += points
	p.Level = LevelFor(p.Points)

	switch kind {
	case ActionQuestionReview:
		p.QuestionsReviewed++
	case ActionProfessorQuestion:
		p.ProfessorQuestions++
	case ActionGoalCompletion:
		p.GoalsCompleted++
	}

	return points
}

// Evaluate runs the rule table against the snapshot and unlocks every
// matching achievement not yet present on the record, awarding its points.
// Unlocking is idempotent: already-present badges are skipped silently, so a
// second call with the same snapshot returns nothing.
func Evaluate(p *Progress, s Snapshot) []Achievement {
	var unlocked []Achievement
	for _, rule := range matchingRules(s) {
		if p.Has(rule.Name) {
			continue
		}
		a := Achievement{
			Name:        rule.Name,
			Emoji:       rule.Emoji,
			Description: rule.Description,
			Points:      PointsFor(rule.Name),
		}
		p.Achievements = append(p.Achievements, a)
		p.Points += a.Points
		p.Level = LevelFor(p.Points)
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// DailyBonus applies the daily-access action at most once per calendar day.
// today is a YYYY-MM-DD date string. Returns true when the bonus was granted.
func DailyBonus(p *Progress, today string) bool {
	if p.LastAccessDate == today {
		return false
	}
	Apply(p, ActionDailyAccess)
	p.LastAccessDate = today
	return true
}
