package gamification

// Rule is an achievement predicate over a performance snapshot.
type Rule struct {
	Name        string
	Emoji       string
	Description string
	Matches     func(Snapshot) bool
}

// ruleGroups holds the fixed rule table. Within each group the rules are
// ordered highest tier first and at most one fires; groups are independent.
var ruleGroups = [][]Rule{
	// Portuguese correctness tiers
	{
		{"King of Portuguese", "👑", "18/18 correct in Portuguese",
			func(s Snapshot) bool { return s.CorrectPortuguese >= 18 }},
		{"Portuguese Master", "🎯", "15+ correct in Portuguese",
			func(s Snapshot) bool { return s.CorrectPortuguese >= 15 }},
		{"Portuguese Aspirant", "📚", "12+ correct in Portuguese",
			func(s Snapshot) bool { return s.CorrectPortuguese >= 12 }},
	},
	// Mathematics correctness tiers
	{
		{"King of Mathematics", "👑", "18/18 correct in Mathematics",
			func(s Snapshot) bool { return s.CorrectMathematics >= 18 }},
		{"Mathematics Master", "🧮", "15+ correct in Mathematics",
			func(s Snapshot) bool { return s.CorrectMathematics >= 15 }},
		{"Mathematics Aspirant", "📐", "12+ correct in Mathematics",
			func(s Snapshot) bool { return s.CorrectMathematics >= 12 }},
	},
	// Review-load tiers over total errors
	{
		{"Perfection!", "🌟", "No errors in any question",
			func(s Snapshot) bool { return s.TotalErrors() == 0 }},
		{"Focus on Weaknesses", "💪", "Reviewing errors with determination",
			func(s Snapshot) bool { return s.TotalErrors() <= 3 }},
		{"In Progress", "📖", "Reviewing questions to improve",
			func(s Snapshot) bool { return s.TotalErrors() <= 8 }},
	},
	// Balance rule, independent of the tier groups
	{
		{"Perfect Balance", "⚖️", "Good performance in both subjects",
			func(s Snapshot) bool { return s.CorrectPortuguese >= 10 && s.CorrectMathematics >= 10 }},
	},
}

var achievementPoints = map[string]int{
	"King of Portuguese":   50,
	"Portuguese Master":    30,
	"Portuguese Aspirant":  15,
	"King of Mathematics":  50,
	"Mathematics Master":   30,
	"Mathematics Aspirant": 15,
	"Perfection!":          100,
	"Focus on Weaknesses":  40,
	"In Progress":          20,
	"Perfect Balance":      25,
}

// defaultAchievementPoints is awarded for any badge missing from the table.
const defaultAchievementPoints = 10

// PointsFor returns the fixed reward for unlocking the named achievement.
func PointsFor(name string) int {
	if p, ok := achievementPoints[name]; ok {
		return p
	}
	return defaultAchievementPoints
}

// matchingRules evaluates the rule table against a snapshot: the highest
// satisfied tier per group, in table order.
func matchingRules(s Snapshot) []Rule {
	var matched []Rule
	for _, group := range ruleGroups {
		for _, rule := range group {
			if rule.Matches(s) {
				matched = append(matched, rule)
				break
			}
		}
	}
	return matched
}
