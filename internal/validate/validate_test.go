package validate

import (
	"testing"

	"task-manager/internal/model"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Купить молоко", true},
		{"  x  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}
	for _, tt := range tests {
		if got := Title(tt.input); got != tt.want {
			t.Errorf("Title(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDueDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"25.12.2024", true},
		{"01.01.2000", true},
		{"2024-12-25", false},
		{"32.01.2024", false},
		{"завтра", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := DueDate(tt.input); got != tt.want {
			t.Errorf("DueDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPriorityAndCategory(t *testing.T) {
	if !Priority(model.PriorityUrgent) {
		t.Error("urgent should be valid")
	}
	if Priority(model.Priority("Важный 🔵")) {
		t.Error("unknown priority should be invalid")
	}
	if !Category(model.CategoryShopping) {
		t.Error("shopping should be valid")
	}
	if Category(model.Category("Хобби")) {
		t.Error("unknown category should be invalid")
	}
}

func TestMenuChoice(t *testing.T) {
	tests := []struct {
		input  string
		min    int
		max    int
		want   int
		wantOK bool
	}{
		{"1", 1, 8, 1, true},
		{" 8 ", 1, 8, 8, true},
		{"9", 1, 8, 0, false},
		{"0", 1, 8, 0, false},
		{"abc", 1, 8, 0, false},
		{"", 1, 8, 0, false},
	}
	for _, tt := range tests {
		got, ok := MenuChoice(tt.input, tt.min, tt.max)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("MenuChoice(%q, %d, %d) = (%d, %v), want (%d, %v)",
				tt.input, tt.min, tt.max, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTaskID(t *testing.T) {
	tests := []struct {
		input  string
		want   uint
		wantOK bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"три", 0, false},
	}
	for _, tt := range tests {
		got, ok := TaskID(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("TaskID(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
