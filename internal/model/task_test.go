package model

import "testing"

func TestParseTaskStatus(t *testing.T) {
	for _, raw := range []string{"todo", "in_progress", "done"} {
		s, err := ParseTaskStatus(raw)
		if err != nil {
			t.Errorf("ParseTaskStatus(%q): %v", raw, err)
		}
		if string(s) != raw {
			t.Errorf("ParseTaskStatus(%q) = %q", raw, s)
		}
	}

	for _, raw := range []string{"", "TODO", "open", "in-progress"} {
		if _, err := ParseTaskStatus(raw); err == nil {
			t.Errorf("ParseTaskStatus(%q): expected error", raw)
		}
	}
}

func TestParseTaskPriority(t *testing.T) {
	for _, raw := range []string{"low", "medium", "high", "urgent"} {
		p, err := ParseTaskPriority(raw)
		if err != nil {
			t.Errorf("ParseTaskPriority(%q): %v", raw, err)
		}
		if string(p) != raw {
			t.Errorf("ParseTaskPriority(%q) = %q", raw, p)
		}
	}

	for _, raw := range []string{"", "critical", "HIGH"} {
		if _, err := ParseTaskPriority(raw); err == nil {
			t.Errorf("ParseTaskPriority(%q): expected error", raw)
		}
	}
}

func TestPriorityOrder(t *testing.T) {
	order := []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	for i := 1; i < len(order); i++ {
		lower, higher := order[i-1], order[i]
		if !lower.Less(higher) {
			t.Errorf("expected %s < %s", lower, higher)
		}
		if higher.Less(lower) {
			t.Errorf("did not expect %s < %s", higher, lower)
		}
		if lower.Rank() >= higher.Rank() {
			t.Errorf("rank(%s)=%d not below rank(%s)=%d", lower, lower.Rank(), higher, higher.Rank())
		}
	}
	if PriorityHigh.Less(PriorityHigh) {
		t.Error("priority compared less than itself")
	}
}

func TestDefaults(t *testing.T) {
	if DefaultStatus != StatusTodo {
		t.Errorf("default status = %s", DefaultStatus)
	}
	if DefaultPriority != PriorityMedium {
		t.Errorf("default priority = %s", DefaultPriority)
	}
}
