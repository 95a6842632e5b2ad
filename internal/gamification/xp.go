package gamification

// Flat XP for each correct answer during a quiz adventure.
const QuestionXP = 5

// Completion bonus granted when an attempt clears the accuracy gate.
const (
	CompletionBonusXP      = 25
	CompletionBonusCredits = 1
	CompletionBonusCoins   = 5
)

// GateThreshold is the accuracy percentage required to pass a quiz and
// advance to the next chapter part.
const GateThreshold = 80.0

// MasteryThreshold is the accuracy percentage at which a chapter counts as
// mastered in progress analytics.
const MasteryThreshold = 70.0

type rankCutoff struct {
	XP   int
	Name string
}

// Ranks in ascending XP order; the highest cutoff at or below the learner's
// XP wins.
var ranks = []rankCutoff{
	{0, "Rookie"},
	{100, "Apprentice"},
	{300, "Scholar"},
	{700, "Mentor"},
	{1200, "Master"},
	{2000, "Grandmaster"},
}

// levelXP is the cumulative XP needed to hold each level, level 1 first.
var levelXP = []int{0, 100, 250, 450, 700, 1000, 1400, 1850, 2350, 2900, 3500, 4200}

type badgeCutoff struct {
	Quizzes int
	Name    string
}

// Badge ladder in descending order of lifetime quiz count.
var badges = []badgeCutoff{
	{100, "Diamond Master"},
	{50, "Diamond"},
	{30, "Gold"},
	{20, "Silver"},
	{10, "Bronze"},
	{5, "Rising Star"},
}

// Rank returns the highest rank whose cutoff is at or below xp.
func Rank(xp int) string {
	name := ranks[0].Name
	for _, r := range ranks {
		if xp >= r.XP {
			name = r.Name
		}
	}
	return name
}

// Level counts the cumulative thresholds not exceeding xp, capped at the
// table length.
func Level(xp int) int {
	level := 1
	for i, cumulative := range levelXP {
		if xp >= cumulative {
			level = i + 1
		}
	}
	if level > len(levelXP) {
		level = len(levelXP)
	}
	return level
}

// Badge returns the badge for a lifetime quiz count, defaulting to Novice.
func Badge(quizCount int) string {
	for _, b := range badges {
		if quizCount >= b.Quizzes {
			return b.Name
		}
	}
	return "Novice"
}
