package picasso

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestBuildTimeBuckets(t *testing.T) {
	buckets := BuildTimeBuckets(BedtimeWindow{Bedtime: 22, GetUpTime: 6}, 1)
	if len(buckets) != 17 {
		t.Fatalf("期望 17 个刻度，实际 %d", len(buckets))
	}
	if buckets[0].Hour != 6 || buckets[16].Hour != 22 {
		t.Errorf("刻度范围错误: %v ~ %v", buckets[0].Hour, buckets[16].Hour)
	}
	if buckets[16].Weight != 0 || buckets[0].Weight != 1 {
		t.Error("最后一个刻度权重应为 0，其余为 1")
	}

	half := BuildTimeBuckets(BedtimeWindow{Bedtime: 22, GetUpTime: 6}, 0.5)
	if len(half) != 33 {
		t.Errorf("半小时粒度期望 33 个刻度，实际 %d", len(half))
	}
}

func TestPercentage_FullDay(t *testing.T) {
	buckets := BuildTimeBuckets(FullDayWindow, 1)
	cases := []struct {
		minutes float64
		want    float64
	}{
		{-60, 0},
		{0, 0},
		{30, 100.0 / 24},
		{12 * 60, 50},
		{24 * 60, 100},
		{26 * 60, 100},
	}
	for _, c := range cases {
		if got := Percentage(c.minutes, buckets); !almostEqual(got, c.want) {
			t.Errorf("Percentage(%v) = %v，期望 %v", c.minutes, got, c.want)
		}
	}
}

func TestPercentage_Weighted(t *testing.T) {
	buckets := []TimeBucket{{Hour: 6, Weight: 1}, {Hour: 7, Weight: 2}, {Hour: 8, Weight: 1}, {Hour: 9, Weight: 0}}
	if got := Percentage(7.5*60, buckets); !almostEqual(got, 75) {
		t.Errorf("期望 75，实际 %v", got)
	}
}

func TestPercentage_ZeroWeights(t *testing.T) {
	buckets := []TimeBucket{{Hour: 6, Weight: 0}, {Hour: 7, Weight: 0}}
	if got := Percentage(400, buckets); got != 0 {
		t.Errorf("总权重为 0 时期望 0，实际 %v", got)
	}
	if got := Percentage(400, nil); got != 0 {
		t.Errorf("空刻度期望 0，实际 %v", got)
	}
}

func TestPercentage_Monotonic(t *testing.T) {
	windows := []BedtimeWindow{FullDayWindow, {Bedtime: 22, GetUpTime: 6}, {Bedtime: 25.5, GetUpTime: 7.25}}
	for _, w := range windows {
		for _, bucket := range []float64{0.25, 1, 3} {
			buckets := BuildTimeBuckets(w, bucket)
			prev := -1.0
			for m := -180.0; m <= 30*60; m += 7 {
				p := Percentage(m, buckets)
				if p < prev {
					t.Fatalf("窗口 %+v 粒度 %v: Percentage(%v)=%v 小于前值 %v", w, bucket, m, p, prev)
				}
				if p < 0 || p > 100 {
					t.Fatalf("Percentage 超出范围: %v", p)
				}
				prev = p
			}
		}
	}
}

func TestFilterEntriesByDay(t *testing.T) {
	buckets := BuildTimeBuckets(BedtimeWindow{Bedtime: 22, GetUpTime: 6}, 1)
	entries := []ScheduleEntry{
		{ID: "ends-at-day-start", StartOffset: 1700, EndOffset: 1800},
		{ID: "spans-day-start", StartOffset: 1700, EndOffset: 1900},
		{ID: "inside", StartOffset: 1440 + 480, EndOffset: 1440 + 600},
		{ID: "starts-at-day-end", StartOffset: 2760, EndOffset: 2820},
		{ID: "previous-day", StartOffset: 480, EndOffset: 600},
	}

	got := FilterEntriesByDay(entries, 1, buckets)
	ids := make(map[string]bool)
	for _, e := range got {
		ids[e.ID] = true
	}
	if len(got) != 2 || !ids["spans-day-start"] || !ids["inside"] {
		t.Errorf("过滤结果错误: %v", ids)
	}

	if len(FilterEntriesByDay(entries, 1, nil)) != 0 {
		t.Error("无刻度时不应返回条目")
	}
}

func TestGeometry(t *testing.T) {
	buckets := BuildTimeBuckets(BedtimeWindow{Bedtime: 22, GetUpTime: 6}, 1)
	e := ScheduleEntry{ID: "x", StartOffset: 1440 + 480, EndOffset: 1440 + 600, Left: 0.25, Width: 0.5}

	g := Geometry(e, 1, buckets)
	want := EntryGeometry{Top: 12.5, Bottom: 75, Left: 25, Right: 25}
	if !almostEqual(g.Top, want.Top) || !almostEqual(g.Bottom, want.Bottom) ||
		!almostEqual(g.Left, want.Left) || !almostEqual(g.Right, want.Right) {
		t.Errorf("期望 %+v，实际 %+v", want, g)
	}
}

// left+width 超过 1 时不做修正，right 为负
func TestGeometry_WidthNotClamped(t *testing.T) {
	buckets := BuildTimeBuckets(FullDayWindow, 1)
	e := ScheduleEntry{ID: "wide", StartOffset: 60, EndOffset: 120, Left: 0.6, Width: 0.6}
	if g := Geometry(e, 0, buckets); !almostEqual(g.Right, -20) {
		t.Errorf("期望 right=-20，实际 %v", g.Right)
	}
}
