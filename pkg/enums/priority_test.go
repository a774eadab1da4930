package enums

import "testing"

func TestPriorityRank(t *testing.T) {
	if UnrankedPriority != len(validPriorities) {
		t.Fatalf("unranked priority %d must follow the %d known priorities", UnrankedPriority, len(validPriorities))
	}
	cases := map[Priority]int{
		PriorityHigh:   0,
		PriorityMedium: 1,
		PriorityLow:    2,
		"Urgent":       UnrankedPriority,
		"high":         UnrankedPriority,
		"":             UnrankedPriority,
	}
	for p, want := range cases {
		if got := p.Rank(); got != want {
			t.Fatalf("%q: expected rank %d got %d", p, want, got)
		}
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("Medium")
	if err != nil || p != PriorityMedium || !p.IsValid() {
		t.Fatalf("unexpected result %q %v", p, err)
	}
	if _, err := ParsePriority("Someday"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}
