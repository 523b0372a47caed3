package output

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/kcmine/internal/links"
	"github.com/blackwell-systems/kcmine/internal/mining"
	"github.com/blackwell-systems/kcmine/internal/store"
)

func TestRenderRuleTable(t *testing.T) {
	rules := []mining.ScoredRule{
		{Rule: mining.Rule{Antecedent: "algebra", Consequent: "fractions"}, Probability: 0.97},
		{Rule: mining.Rule{Antecedent: "decimals", Consequent: "fractions"}, Probability: 0.91},
	}

	out := RenderRuleTable(rules)

	for _, want := range []string{"Antecedent", "algebra", "fractions", "0.9700", "0.9100"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderRuleTable() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRuleTable_Empty(t *testing.T) {
	out := RenderRuleTable(nil)
	if !strings.Contains(out, "No rules") {
		t.Errorf("RenderRuleTable(nil) = %q, want a no-rules message", out)
	}
}

func TestRenderRankTable_NumbersRows(t *testing.T) {
	rules := []mining.ScoredRule{
		{Rule: mining.Rule{Antecedent: "a", Consequent: "b"}, Probability: 1},
		{Rule: mining.Rule{Antecedent: "b", Consequent: "a"}, Probability: 0.5},
	}

	out := RenderRankTable(rules)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header + separator + 2 rows.
	if len(lines) != 4 {
		t.Fatalf("RenderRankTable() produced %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "1") || !strings.HasPrefix(lines[3], "2") {
		t.Errorf("RenderRankTable() rows not rank-numbered:\n%s", out)
	}
}

func TestRenderLinkTable(t *testing.T) {
	found := []links.Link{
		{Prereq: "fractions", Dependent: "algebra", Forward: 0.97, Backward: 0.93},
	}

	out := RenderLinkTable(found)
	for _, want := range []string{"Prerequisite", "fractions", "algebra", "0.9700", "0.9300"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderLinkTable() missing %q:\n%s", want, out)
		}
	}

	if empty := RenderLinkTable(nil); !strings.Contains(empty, "No prerequisite links") {
		t.Errorf("RenderLinkTable(nil) = %q, want a no-links message", empty)
	}
}

func TestRenderRunTable(t *testing.T) {
	runs := []*store.Run{
		{
			ID:          3,
			CreatedAt:   time.Now().Add(-2 * time.Hour),
			Kind:        store.KindMine,
			DatasetPath: "/data/mastery.csv",
			MinSupport:  20,
			MinConf:     0.8,
			MinProb:     0.9,
		},
	}

	out := RenderRunTable(runs)
	for _, want := range []string{"mine", "mastery.csv", "20", "0.80", "0.90"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderRunTable() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	rules := []mining.ScoredRule{
		{Rule: mining.Rule{Antecedent: "a", Consequent: "b"}, Probability: 1},
		{Rule: mining.Rule{Antecedent: "b", Consequent: "a"}, Probability: 0},
	}

	out := RenderSummary(rules)
	for _, want := range []string{"2 rules", "mean 0.5000", "median 0.5000", "range [0.0000, 1.0000]"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSummary() missing %q: %s", want, out)
		}
	}

	if empty := RenderSummary(nil); !strings.Contains(empty, "no rules") {
		t.Errorf("RenderSummary(nil) = %q, want a no-rules message", empty)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q, want unchanged", got)
	}
	got := truncate("a-very-long-identifier", 10)
	if len([]rune(got)) != 10 {
		t.Errorf("truncate() = %q, want 10 runes", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncate() = %q, want … suffix", got)
	}
}

func TestProbBar(t *testing.T) {
	if got := probBar(1, 4); got != "████" {
		t.Errorf("probBar(1, 4) = %q, want full bar", got)
	}
	if got := probBar(0, 4); got != "░░░░" {
		t.Errorf("probBar(0, 4) = %q, want empty bar", got)
	}
	if got := probBar(0.5, 4); got != "██░░" {
		t.Errorf("probBar(0.5, 4) = %q, want half bar", got)
	}
}
