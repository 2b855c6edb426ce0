package gamification

// Widget is the dashboard progression card: level, points and progress
// toward the next level, precomputed so the frontend only renders.
type Widget struct {
	Level            int           `json:"level"`
	LevelColor       string        `json:"levelColor"`
	Points           int           `json:"points"`
	PointsToNext     int           `json:"pointsToNext"`
	ProgressPercent  int           `json:"progressPercent"`
	AchievementCount int           `json:"achievementCount"`
	ActionsPerformed int           `json:"actionsPerformed"`
	Achievements     []Achievement `json:"achievements"`
}

var levelColors = map[int]string{
	1: "#4f46e5", // blue
	2: "#8b5cf6", // purple
	3: "#d946ef", // magenta
	4: "#ec4899", // pink
	5: "#f43f5e", // red
}

// LevelColor returns the accent color for a level; levels above 5 reuse the
// top color.
func LevelColor(level int) string {
	if level > 5 {
		level = 5
	}
	if c, ok := levelColors[level]; ok {
		return c
	}
	return levelColors[1]
}

// BuildWidget derives the progression card from a progress record.
func BuildWidget(p *Progress) Widget {
	floor := (p.Level - 1) * pointsPerLevel
	ceil := p.Level * pointsPerLevel

	percent := 100
	if ceil > floor {
		percent = (p.Points - floor) * 100 / (ceil - floor)
		if percent > 100 {
			percent = 100
		}
	}

	return Widget{
		Level:            p.Level,
		LevelColor:       LevelColor(p.Level),
		Points:           p.Points,
		PointsToNext:     ceil - p.Points,
		ProgressPercent:  percent,
		AchievementCount: len(p.Achievements),
		ActionsPerformed: p.ProfessorQuestions + p.QuestionsReviewed,
		Achievements:     p.Achievements,
	}
}
