package ingest

import (
	"strings"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer(nil)

	tokens := tok.Tokenize("The Election, the BUDGET -- and a strike!")
	want := []string{"the", "election", "the", "budget", "and", "strike"}

	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeStopwords(t *testing.T) {
	tok := NewTokenizer([]string{"the", "And"})

	tokens := tok.Tokenize("The election and the budget")
	want := []string{"election", "budget"}

	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
}

func TestTokenizeNumericFilter(t *testing.T) {
	tok := NewTokenizer(nil)

	tokens := tok.Tokenize("2024 budget utf-8 1-2-3")
	want := []string{"budget", "utf-8"}

	if len(tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestCounts(t *testing.T) {
	tok := NewTokenizer([]string{"the"})

	counts := tok.Counts("the budget, the budget, the strike")
	if counts["budget"] != 2 {
		t.Errorf("counts[budget] = %d, want 2", counts["budget"])
	}
	if counts["strike"] != 1 {
		t.Errorf("counts[strike] = %d, want 1", counts["strike"])
	}
	if _, ok := counts["the"]; ok {
		t.Error("stopword leaked into counts")
	}
}

func TestAddRemoveStopword(t *testing.T) {
	tok := NewTokenizer(nil)
	tok.AddStopword("Budget")

	if got := tok.Tokenize("budget strike"); len(got) != 1 || got[0] != "strike" {
		t.Errorf("tokens = %v, want [strike]", got)
	}

	tok.RemoveStopword("budget")
	if got := tok.Tokenize("budget strike"); len(got) != 2 {
		t.Errorf("tokens = %v after removal, want 2 tokens", got)
	}
}

func TestDocValidate(t *testing.T) {
	doc := Doc{ID: "times-01", Body: "Some content"}
	if err := doc.Validate(); err != nil {
		t.Errorf("valid doc failed validation: %v", err)
	}

	if err := (&Doc{Body: "content"}).Validate(); err == nil {
		t.Error("doc without ID should fail validation")
	}
	if err := (&Doc{ID: "x"}).Validate(); err == nil {
		t.Error("doc without body should fail validation")
	}
}

func TestStripHTML(t *testing.T) {
	in := `<html><head><style>p{color:red}</style></head><body><p>Budget <b>vote</b> today.</p><script>alert(1)</script></body></html>`
	got := StripHTML(in)

	for _, want := range []string{"Budget", "vote", "today."} {
		if !strings.Contains(got, want) {
			t.Errorf("StripHTML output %q missing %q", got, want)
		}
	}
	for _, banned := range []string{"alert", "color"} {
		if strings.Contains(got, banned) {
			t.Errorf("StripHTML output %q leaked %q", got, banned)
		}
	}
}
