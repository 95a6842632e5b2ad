package syllabus

import "testing"

func TestHasChapter(t *testing.T) {
	tests := []struct {
		class, subject, chapter string
		want                    bool
	}{
		{"10", "Physics", "Electricity", true},
		{"6", "Maths", "Fractions and Decimals", true},
		{"12", "Biology", "Evolution", true},
		{"10", "Physics", "Quantum Mechanics", false},
		{"10", "History", "Electricity", false},
		{"13", "Physics", "Electricity", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		if got := HasChapter(tt.class, tt.subject, tt.chapter); got != tt.want {
			t.Errorf("HasChapter(%q, %q, %q) = %v, want %v", tt.class, tt.subject, tt.chapter, got, tt.want)
		}
	}
}

func TestValidPart(t *testing.T) {
	for part, want := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		if got := ValidPart(part); got != want {
			t.Errorf("ValidPart(%d) = %v, want %v", part, got, want)
		}
	}
}

func TestTable_EveryClassHasSubjects(t *testing.T) {
	for class, subjects := range Table {
		if len(subjects) == 0 {
			t.Errorf("class %s has no subjects", class)
		}
		for subject, chapters := range subjects {
			if len(chapters) == 0 {
				t.Errorf("class %s subject %s has no chapters", class, subject)
			}
		}
	}
}
