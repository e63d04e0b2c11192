package picasso

import (
	"math"
	"time"
)

const (
	// nightBandStart/nightBandEnd 虚拟时间轴上的夜间带 [24,30]，即次日 00:00~06:00
	nightBandStart = 24.0
	nightBandEnd   = 30.0

	// unconstrainedGetUpTime 第一天没有约束时允许的最晚起床时间（次日 12:00）
	unconstrainedGetUpTime = 36.0
	// unconstrainedBedtime 最后一天没有约束时允许的最早就寝时间
	unconstrainedBedtime = 0.0
)

// BedtimeWindow 夜间可折叠窗口
//
// Bedtime 为就寝时刻（可大于 24，表示过了午夜），GetUpTime 为起床时刻（当日小时）。
type BedtimeWindow struct {
	Bedtime   float64 `json:"bedtime"`
	GetUpTime float64 `json:"get_up_time"`
}

// FullDayWindow 不折叠任何时间的默认窗口
var FullDayWindow = BedtimeWindow{Bedtime: 24, GetUpTime: 0}

// CalculateBedtime 找出夜间最长的、没有任何条目开始或结束的区间，
// 该区间可视为营地统一的"就寝时间"，在 picasso 上安全地隐藏。
//
// firstDay/lastDay 为展示范围的第一天和最后一天：第一天最早开始的条目
// 不能被划到前一天，最后一天最晚结束的条目不能被划到后一天，否则会不可见。
// bucketHours 为量化粒度（小时），≤0 时按 1 小时处理。
//
// 找不到合格空档时返回 ok=false，调用方应回退到 FullDayWindow。
func CalculateBedtime(spans []TimeSpan, firstDay, lastDay time.Time, bucketHours float64) (BedtimeWindow, bool) {
	if len(spans) == 0 {
		return FullDayWindow, true
	}
	if bucketHours <= 0 {
		bucketHours = 1
	}

	tl := NewTimeline(spans)
	earliestBedtime, latestGetUpTime := bedtimeConstraints(spans, firstDay, lastDay)

	gap, found := largestNightGap(tl.Gaps(), earliestBedtime, latestGetUpTime)
	if !found {
		return BedtimeWindow{}, false
	}

	bedtime := quantizedBedtime(gap, tl, bucketHours)
	getUpTime := quantizedGetUpTime(gap, tl, bucketHours)
	if bedtime > getUpTime+Epsilon {
		// 空档小于一个量化格，无法得到合法窗口
		return BedtimeWindow{}, false
	}

	return BedtimeWindow{Bedtime: bedtime, GetUpTime: getUpTime - 24}, true
}

// bedtimeConstraints 由展示范围首尾两天推出的约束
func bedtimeConstraints(spans []TimeSpan, firstDay, lastDay time.Time) (earliestBedtime, latestGetUpTime float64) {
	first, last := spans[0], spans[0]
	for _, s := range spans[1:] {
		if s.Start.Before(first.Start) {
			first = s
		}
		if s.End.After(last.End) {
			last = s
		}
	}

	latestGetUpTime = unconstrainedGetUpTime
	if sameUTCDate(first.Start, firstDay) {
		latestGetUpTime = HoursOfDay(first.Start) + 24
	}

	earliestBedtime = unconstrainedBedtime
	if sameUTCDate(last.End, lastDay) {
		earliestBedtime = HoursOfDay(last.End)
	}
	return earliestBedtime, latestGetUpTime
}

// largestNightGap 在约束范围内且与夜间带相交的最长空档，时长相同取靠前者
func largestNightGap(gaps []Gap, earliestBedtime, latestGetUpTime float64) (Gap, bool) {
	var best Gap
	found := false
	for _, g := range gaps {
		if g.Start < earliestBedtime-Epsilon || g.End > latestGetUpTime+Epsilon {
			continue
		}
		if g.Start > nightBandEnd+Epsilon || g.End < nightBandStart-Epsilon {
			continue
		}
		if !found || g.Duration > best.Duration+Epsilon {
			best = g
			found = true
		}
	}
	return best, found
}

func quantizedBedtime(gap Gap, tl Timeline, bucket float64) float64 {
	bedtime := math.Ceil(gap.Start/bucket-Epsilon) * bucket
	if !floatEquals(bedtime, gap.Start) {
		// 取整已经留出余量
		return bedtime
	}
	if tl.HasBoundaryAt(BoundaryStart, bedtime) {
		// 恰好有条目在就寝时刻开始，需要往后推一格
		return bedtime + bucket
	}
	return bedtime
}

func quantizedGetUpTime(gap Gap, tl Timeline, bucket float64) float64 {
	getUpTime := math.Floor(gap.End/bucket+Epsilon) * bucket
	if !floatEquals(getUpTime, gap.End) {
		return getUpTime
	}
	if tl.HasBoundaryAt(BoundaryEnd, getUpTime) {
		// 恰好有条目在起床时刻结束，需要往前提一格
		return getUpTime - bucket
	}
	return getUpTime
}
