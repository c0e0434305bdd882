package markup

import "testing"

func TestApplyReplacements(t *testing.T) {
	rules := []Replacement{
		{From: "{{char}}", To: "Yuzu"},
		{From: "  ", To: "ignored"},
		{From: "", To: "ignored"},
		{From: "a.c", To: "X"},
	}

	got := ApplyReplacements("{{char}} met {{char}} at abc and a.c", rules)
	want := "Yuzu met Yuzu at abc and X"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyReplacementsIdempotent(t *testing.T) {
	rules := []Replacement{{From: "cat", To: "dog"}}

	once := ApplyReplacements("cat and cat", rules)
	twice := ApplyReplacements(once, rules)
	if once != twice {
		t.Errorf("second pass changed text: %q -> %q", once, twice)
	}
}

func TestApplyReplacementsOrder(t *testing.T) {
	rules := []Replacement{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	}
	if got := ApplyReplacements("a", rules); got != "c" {
		t.Errorf("rules should chain in order, got %q", got)
	}
}
