// Package scores contains score aggregation and reporting.
package scores

import (
	"context"
	"fmt"
	"time"

	"github.com/verte-zerg/tuimole/internal/model"
	"github.com/verte-zerg/tuimole/internal/store"
)

// Report aggregates round history for display.
type Report struct {
	Bests  []model.BestEntry
	Rounds []model.RoundRecord

	TotalRounds  int
	TotalScore   int
	AverageScore float64
	BestInRange  int
}

// BuildReport loads bests and filtered round history from the store.
func BuildReport(ctx context.Context, st *store.Store, filter model.RoundFilter) (Report, error) {
	bests, err := st.ListBests(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load high scores: %w", err)
	}
	rounds, err := st.ListRounds(ctx, filter)
	if err != nil {
		return Report{}, fmt.Errorf("failed to load rounds: %w", err)
	}
	report := Report{Bests: bests, Rounds: rounds, TotalRounds: len(rounds)}
	for _, r := range rounds {
		report.TotalScore += r.Score
		if r.Score > report.BestInRange {
			report.BestInRange = r.Score
		}
	}
	if report.TotalRounds > 0 {
		report.AverageScore = float64(report.TotalScore) / float64(report.TotalRounds)
	}
	return report, nil
}

// ScoreSeries extracts the per-round scores, oldest first, for plotting.
func (r Report) ScoreSeries() []int {
	series := make([]int, len(r.Rounds))
	for i, round := range r.Rounds {
		series[i] = round.Score
	}
	return series
}

// FormatRound renders one history line.
func FormatRound(rec model.RoundRecord) string {
	label := rec.Key
	if rec.Mode == model.ModeSilver {
		label = fmt.Sprintf("silver (lvl %d)", rec.Level)
	}
	return fmt.Sprintf("%s  %-16s %3d pts  %ds",
		rec.PlayedAt.Local().Format("2006-01-02 15:04"),
		label,
		rec.Score,
		int(rec.Duration/time.Second))
}

// FormatBests renders the high-score summary lines, one per key.
func FormatBests(bests []model.BestEntry) []string {
	lines := make([]string, 0, len(bests))
	for _, b := range bests {
		lines = append(lines, fmt.Sprintf("%-8s %4d  (%s)",
			b.Key, b.Score, b.AchievedAt.Local().Format("2006-01-02")))
	}
	return lines
}

// Summary renders the aggregate counters as one line.
func (r Report) Summary() string {
	if r.TotalRounds == 0 {
		return "No rounds recorded yet."
	}
	return fmt.Sprintf("Rounds %d  ·  Best %d  ·  Avg %.1f",
		r.TotalRounds, r.BestInRange, r.AverageScore)
}
