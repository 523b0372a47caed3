// Package output provides terminal output utilities for kcmine.
//
// It renders tables for mined rules, rankings, prerequisite links, and
// stored runs, plus a progress bar for long mining passes. Tables use
// ASCII layout with ANSI color codes; color is suppressed when stdout
// is not a TTY or NO_COLOR is set.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/kcmine/internal/links"
	"github.com/blackwell-systems/kcmine/internal/mining"
	"github.com/blackwell-systems/kcmine/internal/store"
)

// ANSI color codes for probability display.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is
// not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is
// enabled, otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// probColor picks a color for a rule probability: green for near
// certain, yellow for strong, gray otherwise.
func probColor(p float64) string {
	switch {
	case p >= 0.95:
		return colorGreen
	case p >= 0.8:
		return colorYellow
	default:
		return colorGray
	}
}

// RenderRuleTable renders the rules kept by a mining pass, in miner
// output order.
func RenderRuleTable(rules []mining.ScoredRule) string {
	if len(rules) == 0 {
		return "No rules met the probability threshold.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-20s %-20s %s\n", "Antecedent", "Consequent", "P(rule)"))
	sb.WriteString(strings.Repeat("─", 52))
	sb.WriteString("\n")

	for _, r := range rules {
		prob := fmt.Sprintf("%.4f", r.Probability)
		sb.WriteString(fmt.Sprintf("%-20s %-20s %s\n",
			truncate(r.Antecedent, 20),
			truncate(r.Consequent, 20),
			colorize(probColor(r.Probability), prob)))
	}

	return sb.String()
}

// RenderRankTable renders ranked rules with their rank position and a
// probability bar. Expects rules pre-sorted by the ranker.
func RenderRankTable(rules []mining.ScoredRule) string {
	if len(rules) == 0 {
		return "No rules to rank.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-20s %-20s %-8s %s\n",
		"Rank", "Antecedent", "Consequent", "P(rule)", ""))
	sb.WriteString(strings.Repeat("─", 70))
	sb.WriteString("\n")

	for i, r := range rules {
		prob := fmt.Sprintf("%.4f", r.Probability)
		sb.WriteString(fmt.Sprintf("%-5d %-20s %-20s %-8s %s\n",
			i+1,
			truncate(r.Antecedent, 20),
			truncate(r.Consequent, 20),
			colorize(probColor(r.Probability), prob),
			probBar(r.Probability, 12)))
	}

	return sb.String()
}

// RenderLinkTable renders discovered prerequisite links.
func RenderLinkTable(found []links.Link) string {
	if len(found) == 0 {
		return "No prerequisite links discovered.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-20s %-20s %-10s %s\n",
		"Prerequisite", "Dependent", "P(fwd)", "P(bwd)"))
	sb.WriteString(strings.Repeat("─", 62))
	sb.WriteString("\n")

	for _, l := range found {
		sb.WriteString(fmt.Sprintf("%-20s %-20s %-10s %s\n",
			truncate(l.Prereq, 20),
			truncate(l.Dependent, 20),
			fmt.Sprintf("%.4f", l.Forward),
			fmt.Sprintf("%.4f", l.Backward)))
	}

	return sb.String()
}

// RenderRunTable renders stored runs, newest first as returned by the
// store.
func RenderRunTable(runs []*store.Run) string {
	if len(runs) == 0 {
		return "No runs recorded.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-13s %-6s %-28s %-8s %-8s %s\n",
		"ID", "When", "Kind", "Dataset", "minsup", "minconf", "minprob"))
	sb.WriteString(strings.Repeat("─", 84))
	sb.WriteString("\n")

	for _, r := range runs {
		sb.WriteString(fmt.Sprintf("%-5d %-13s %-6s %-28s %-8d %-8.2f %.2f\n",
			r.ID,
			formatRelativeTime(r.CreatedAt),
			r.Kind,
			truncate(r.DatasetPath, 28),
			r.MinSupport,
			r.MinConf,
			r.MinProb))
	}

	return sb.String()
}

// probBar draws a fixed-width bar proportional to p.
func probBar(p float64, width int) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	filled := int(p*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// truncate shortens a string to max characters, adding "…" if cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

// formatRelativeTime formats a timestamp as a short relative age.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
