package entity

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{in: "Urgent", want: PriorityUrgent, ok: true},
		{in: "high", want: PriorityHigh, ok: true},
		{in: "MEDIUM", want: PriorityMedium, ok: true},
		{in: " low ", want: PriorityLow, ok: true},
		{in: "", want: PriorityLow, ok: true},
		{in: "critical", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParsePriority(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow} {
		if !p.IsValid() {
			t.Fatalf("expected %v to be valid", p)
		}
	}

	if Priority("Critical").IsValid() {
		t.Fatal("unknown priority must not be valid")
	}
}

func TestTaskListFilterOffset(t *testing.T) {
	if got := (TaskListFilter{Size: 20, Page: 1}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := (TaskListFilter{Size: 20, Page: 3}).Offset(); got != 40 {
		t.Fatalf("expected offset 40, got %d", got)
	}
	if got := (TaskListFilter{Size: 20, Page: 0}).Offset(); got != 0 {
		t.Fatalf("expected offset 0 for unset page, got %d", got)
	}
}
