package picasso

import (
	"sort"
	"time"
)

// ── 时间算术 ──────────────────────────────────────────────
//
// 夜间窗口会跨越午夜，直接在 [0,24) 上找空档需要处理环绕。
// 这里把每个边界再复制一份 +24h，得到一条 48 小时的虚拟时间轴（Timeline），
// 午夜之后的时刻在虚拟轴上表现为 24~48 的值，空档检测退化为线性扫描。
// ─────────────────────────────────────────────────────────────

// BoundaryKind 边界类型
type BoundaryKind int

const (
	BoundaryStart BoundaryKind = iota
	BoundaryEnd
)

// Boundary 虚拟时间轴上的一个条目边界
type Boundary struct {
	Hours float64
	Kind  BoundaryKind
}

// Gap 两个相邻边界之间没有任何边界的区间
type Gap struct {
	Start    float64
	End      float64
	Duration float64
}

// TimeSpan 条目的绝对起止时间
type TimeSpan struct {
	Start time.Time
	End   time.Time
}

// Timeline 48 小时虚拟时间轴，边界按小时升序
type Timeline struct {
	bounds []Boundary
}

// HoursOfDay 将时间转换为 UTC 当日小时数，范围 [0,24)，精度到分钟
func HoursOfDay(t time.Time) float64 {
	u := t.UTC()
	return float64(u.Hour()) + float64(u.Minute())/60
}

// HoursSince 距 origin 的小时数（不做环绕）
func HoursSince(origin, t time.Time) float64 {
	return t.Sub(origin).Hours()
}

// SpansOf 根据时间段开始时间计算条目的绝对起止时间
func SpansOf(periodStart time.Time, entries []ScheduleEntry) []TimeSpan {
	spans := make([]TimeSpan, 0, len(entries))
	for _, e := range entries {
		spans = append(spans, TimeSpan{Start: e.StartAt(periodStart), End: e.EndAt(periodStart)})
	}
	return spans
}

// NewTimeline 构建虚拟时间轴：每个起止边界各出现两次（h 与 h+24）
func NewTimeline(spans []TimeSpan) Timeline {
	bounds := make([]Boundary, 0, len(spans)*4)
	for _, s := range spans {
		start := HoursOfDay(s.Start)
		end := HoursOfDay(s.End)
		bounds = append(bounds,
			Boundary{Hours: start, Kind: BoundaryStart},
			Boundary{Hours: end, Kind: BoundaryEnd},
			Boundary{Hours: start + 24, Kind: BoundaryStart},
			Boundary{Hours: end + 24, Kind: BoundaryEnd},
		)
	}
	sort.SliceStable(bounds, func(i, j int) bool {
		return bounds[i].Hours < bounds[j].Hours
	})
	return Timeline{bounds: bounds}
}

// Bounds 返回排序后的边界副本
func (tl Timeline) Bounds() []Boundary {
	out := make([]Boundary, len(tl.bounds))
	copy(out, tl.bounds)
	return out
}

// Gaps 相邻边界构成的空档，零长度区间被忽略
func (tl Timeline) Gaps() []Gap {
	var gaps []Gap
	for i := 1; i < len(tl.bounds); i++ {
		prev, cur := tl.bounds[i-1].Hours, tl.bounds[i].Hours
		d := cur - prev
		if floatEquals(d, 0) {
			continue
		}
		gaps = append(gaps, Gap{Start: prev, End: cur, Duration: d})
	}
	return gaps
}

// HasBoundaryAt 虚拟轴上是否存在指定类型、位于 hours 的边界
func (tl Timeline) HasBoundaryAt(kind BoundaryKind, hours float64) bool {
	for _, b := range tl.bounds {
		if b.Kind == kind && floatEquals(b.Hours, hours) {
			return true
		}
	}
	return false
}

// sameUTCDate 两个时刻是否落在同一 UTC 日期
func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
