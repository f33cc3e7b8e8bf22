package scores

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/tuimole/internal/model"
	"github.com/verte-zerg/tuimole/internal/store"
)

func seedStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tuimole.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	scores := []int{2, 8, 5}
	for i, score := range scores {
		_, err := st.InsertRound(ctx, model.RoundRecord{
			PlayedAt: base.Add(time.Duration(i) * time.Hour),
			Mode:     model.ModeClassic,
			Key:      "medium",
			Score:    score,
			Duration: 30 * time.Second,
			Level:    1,
		})
		if err != nil {
			t.Fatalf("InsertRound: %v", err)
		}
	}
	if err := st.SetBest(ctx, "medium", 8, base); err != nil {
		t.Fatalf("SetBest: %v", err)
	}
	return st
}

func TestBuildReportAggregates(t *testing.T) {
	st := seedStore(t)
	report, err := BuildReport(context.Background(), st, model.RoundFilter{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.TotalRounds != 3 {
		t.Fatalf("total rounds = %d, want 3", report.TotalRounds)
	}
	if report.BestInRange != 8 {
		t.Fatalf("best = %d, want 8", report.BestInRange)
	}
	if report.AverageScore != 5.0 {
		t.Fatalf("average = %v, want 5.0", report.AverageScore)
	}
	if len(report.Bests) != 1 || report.Bests[0].Score != 8 {
		t.Fatalf("bests = %+v", report.Bests)
	}
	series := report.ScoreSeries()
	if len(series) != 3 || series[0] != 2 || series[2] != 5 {
		t.Fatalf("series = %v", series)
	}
}

func TestSummaryEmpty(t *testing.T) {
	var report Report
	if got := report.Summary(); got != "No rounds recorded yet." {
		t.Fatalf("summary = %q", got)
	}
}
