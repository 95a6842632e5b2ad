package gamification

import "testing"

func TestRank(t *testing.T) {
	tests := []struct {
		xp   int
		want string
	}{
		{0, "Rookie"},
		{99, "Rookie"},
		{100, "Apprentice"},
		{299, "Apprentice"},
		{300, "Scholar"},
		{700, "Mentor"},
		{1199, "Mentor"},
		{1200, "Master"},
		{2000, "Grandmaster"},
		{99999, "Grandmaster"},
	}
	for _, tt := range tests {
		if got := Rank(tt.xp); got != tt.want {
			t.Errorf("Rank(%d) = %q, want %q", tt.xp, got, tt.want)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{450, 4},
		{4199, 11},
		{4200, 12},
		{99999, 12},
	}
	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		quizzes int
		want    string
	}{
		{0, "Novice"},
		{4, "Novice"},
		{5, "Rising Star"},
		{9, "Rising Star"},
		{10, "Bronze"},
		{20, "Silver"},
		{30, "Gold"},
		{50, "Diamond"},
		{99, "Diamond"},
		{100, "Diamond Master"},
		{500, "Diamond Master"},
	}
	for _, tt := range tests {
		if got := Badge(tt.quizzes); got != tt.want {
			t.Errorf("Badge(%d) = %q, want %q", tt.quizzes, got, tt.want)
		}
	}
}
