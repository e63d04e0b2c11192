package picasso

// TimeBucket 一行时间刻度：Hour 为当日小时（可为负或超过 24），Weight 为该行的渲染权重
type TimeBucket struct {
	Hour   float64 `json:"hour"`
	Weight float64 `json:"weight"`
}

// EntryGeometry 条目在某天列中的位置，四个方向均为百分比
type EntryGeometry struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// BuildTimeBuckets 从起床时间到就寝时间按 bucketHours 生成刻度，
// 每行权重为 1，最后一个刻度只作为结束边界（权重 0）。
func BuildTimeBuckets(window BedtimeWindow, bucketHours float64) []TimeBucket {
	if bucketHours <= 0 {
		bucketHours = 1
	}
	var buckets []TimeBucket
	for i := 0; ; i++ {
		h := window.GetUpTime + float64(i)*bucketHours
		if h > window.Bedtime+Epsilon {
			break
		}
		buckets = append(buckets, TimeBucket{Hour: h, Weight: 1})
	}
	if len(buckets) > 0 {
		buckets[len(buckets)-1].Weight = 0
	}
	return buckets
}

func weightsSum(buckets []TimeBucket) float64 {
	sum := 0.0
	for _, b := range buckets {
		sum += b.Weight
	}
	return sum
}

// Percentage 当日分钟偏移在列中的纵向位置（0~100）。
//
// 找到第一个 Hour ≥ 查询小时的刻度，累加其之前所有刻度的权重，再除以总权重。
// 对固定的 buckets 单调不减。
func Percentage(minutes float64, buckets []TimeBucket) float64 {
	hours := minutes / 60
	idx := len(buckets)
	for i, b := range buckets {
		if b.Hour >= hours-Epsilon {
			idx = i
			break
		}
	}
	total := weightsSum(buckets)
	if total == 0 {
		return 0
	}
	result := weightsSum(buckets[:idx]) * 100 / total
	if result < 0 {
		return 0
	}
	if result > 100 {
		return 100
	}
	return result
}

// FilterEntriesByDay 与当天展示范围相交的条目（半开区间 [start,end)）
func FilterEntriesByDay(entries []ScheduleEntry, dayOffset int, buckets []TimeBucket) []ScheduleEntry {
	if len(buckets) == 0 {
		return []ScheduleEntry{}
	}
	dayStart := (float64(dayOffset)*24 + buckets[0].Hour) * 60
	dayEnd := (float64(dayOffset)*24 + buckets[len(buckets)-1].Hour) * 60

	result := make([]ScheduleEntry, 0)
	for _, e := range entries {
		if float64(e.StartOffset) < dayEnd && float64(e.EndOffset) > dayStart {
			result = append(result, e)
		}
	}
	return result
}

// Geometry 条目在 dayOffset 那一列中的位置
func Geometry(entry ScheduleEntry, dayOffset int, buckets []TimeBucket) EntryGeometry {
	dayMinutes := float64(dayOffset * MinutesPerDay)
	return EntryGeometry{
		Top:    Percentage(float64(entry.StartOffset)-dayMinutes, buckets),
		Bottom: 100 - Percentage(float64(entry.EndOffset)-dayMinutes, buckets),
		Left:   entry.Left * 100,
		Right:  (1 - entry.Left - entry.Width) * 100,
	}
}
