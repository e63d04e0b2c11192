package picasso

import "time"

// Options 渲染参数
type Options struct {
	MaxDaysPerPage  int
	TimeBucketHours float64
}

// Snapshot 某一时刻的时间段日程快照
type Snapshot struct {
	Period  Period
	Entries []ScheduleEntry
}

// PlacedEntry 放置到某天列中的条目
type PlacedEntry struct {
	Entry    ScheduleEntry
	Number   string
	Geometry EntryGeometry
}

// DayColumn picasso 上的一列
type DayColumn struct {
	Day       Day
	DayNumber int
	Entries   []PlacedEntry
}

// Page 打印页
type Page struct {
	Days []DayColumn
	// Window 本页折叠的夜间窗口；NightCollapsed=false 时为 FullDayWindow
	Window         BedtimeWindow
	NightCollapsed bool
	Buckets        []TimeBucket
	// Overlapping 与本页时间范围相交的条目数；为 0 时页面按全天显示
	Overlapping int
}

// Layout 整个时间段的 picasso 布局
type Layout struct {
	Pages []Page
}

// Render 计算时间段的完整布局：分页 → 每页夜间窗口 → 刻度 → 每列条目几何。
// 条目编号基于整个时间段的快照计算，与分页无关。
func Render(snap Snapshot, styles StyleRegistry, opts Options) (Layout, error) {
	numbers, err := NumberAll(snap.Period, snap.Entries, styles)
	if err != nil {
		return Layout{}, err
	}

	pages := SplitDaysIntoPages(snap.Period.Days(), opts.MaxDaysPerPage)
	layout := Layout{Pages: make([]Page, 0, len(pages))}
	for _, days := range pages {
		layout.Pages = append(layout.Pages, renderPage(snap, days, numbers, opts))
	}
	return layout, nil
}

func renderPage(snap Snapshot, days []Day, numbers map[string]string, opts Options) Page {
	first, last := days[0], days[len(days)-1]
	pageStart := first.Start
	pageEnd := last.Start.Add(24 * time.Hour)

	var spans []TimeSpan
	for _, e := range snap.Entries {
		start, end := e.StartAt(snap.Period.Start), e.EndAt(snap.Period.Start)
		if start.Before(pageEnd) && end.After(pageStart) {
			spans = append(spans, TimeSpan{Start: start, End: end})
		}
	}

	window, ok := CalculateBedtime(spans, first.Start, last.Start, opts.TimeBucketHours)
	if !ok {
		window = FullDayWindow
	}
	page := Page{
		Window:         window,
		NightCollapsed: ok && window != FullDayWindow,
		Buckets:        BuildTimeBuckets(window, opts.TimeBucketHours),
		Overlapping:    len(spans),
	}

	for _, d := range days {
		col := DayColumn{Day: d, DayNumber: snap.Period.DayNumber(d.DayOffset)}
		for _, e := range FilterEntriesByDay(snap.Entries, d.DayOffset, page.Buckets) {
			col.Entries = append(col.Entries, PlacedEntry{
				Entry:    e,
				Number:   numbers[e.ID],
				Geometry: Geometry(e, d.DayOffset, page.Buckets),
			})
		}
		page.Days = append(page.Days, col)
	}
	return page
}
