package perf

import (
	"testing"
	"time"
)

// TestCollector_RecordAndSnapshot verifies basic aggregation.
func TestCollector_RecordAndSnapshot(t *testing.T) {
	c := NewCollector(16)
	now := time.Now()

	c.Record(Entry{Kind: KindRequest, Path: "GET /api/professeurs", DurationMs: 10, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /api/professeurs", DurationMs: 30, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Path: "SELECT professor", DurationMs: 5, Timestamp: now})

	snap := c.Snapshot(now.Add(-time.Minute), 5)
	if snap.TotalRecorded != 3 {
		t.Fatalf("TotalRecorded = %d, want 3", snap.TotalRecorded)
	}
	if len(snap.SlowestPaths) != 1 {
		t.Fatalf("SlowestPaths = %v, want one path", snap.SlowestPaths)
	}
	p := snap.SlowestPaths[0]
	if p.Count != 2 || p.AvgMs != 20 || p.MaxMs != 30 {
		t.Fatalf("PathStat = %+v", p)
	}
	if len(snap.SlowestQueries) != 1 || snap.SlowestQueries[0].Path != "SELECT professor" {
		t.Fatalf("SlowestQueries = %v", snap.SlowestQueries)
	}
}

// TestCollector_RingOverwrite verifies old entries are overwritten when full.
func TestCollector_RingOverwrite(t *testing.T) {
	c := NewCollector(2)
	now := time.Now()
	for i := 0; i < 5; i++ {
		c.Record(Entry{Kind: KindRequest, Path: "GET /", DurationMs: float64(i), Timestamp: now})
	}
	snap := c.Snapshot(now.Add(-time.Minute), 5)
	if snap.TotalRecorded != 5 {
		t.Fatalf("TotalRecorded = %d, want 5", snap.TotalRecorded)
	}
	// Only the last two entries survive in the ring.
	if snap.SlowestPaths[0].Count != 2 {
		t.Fatalf("Count = %d, want 2", snap.SlowestPaths[0].Count)
	}
}

// TestCollector_SinceFilter verifies the window bound.
func TestCollector_SinceFilter(t *testing.T) {
	c := NewCollector(8)
	old := time.Now().Add(-time.Hour)
	c.Record(Entry{Kind: KindRequest, Path: "GET /", DurationMs: 1, Timestamp: old})
	snap := c.Snapshot(time.Now().Add(-time.Minute), 5)
	if len(snap.SlowestPaths) != 0 {
		t.Fatalf("SlowestPaths = %v, want empty outside window", snap.SlowestPaths)
	}
}

// TestPercentile covers interpolation edges.
func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	if got := percentile(sorted, 50); got != 2.5 {
		t.Fatalf("percentile(50) = %v, want 2.5", got)
	}
	if got := percentile(sorted, 100); got != 4 {
		t.Fatalf("percentile(100) = %v, want 4", got)
	}
	if got := percentile(nil, 50); got != 0 {
		t.Fatalf("percentile(empty) = %v, want 0", got)
	}
}
