// Package picasso 营地日程网格（picasso 视图）的布局计算引擎。
//
// 引擎只做纯计算：给定某一时刻的日程快照，计算分页、夜间可折叠窗口、
// 日程条目的编号与纵向/横向百分比坐标。持久化、鉴权、绘图均不在此包内。
// 所有函数无共享可变状态，可并发调用。
package picasso

import (
	"math"
	"time"
)

const (
	// MinutesPerDay 一天的分钟数
	MinutesPerDay = 24 * 60
	// Epsilon 浮点边界比较容差
	Epsilon = 1e-9
)

// Period 时间段（营地的一期）快照
type Period struct {
	Start          time.Time // 第一天 00:00（UTC）
	FirstDayNumber int       // 第一天的展示编号（跨期连续编号）
	DurationInDays int
}

// Day 时间段内的一天
type Day struct {
	DayOffset int       // 从 0 开始
	Start     time.Time // Period.Start + DayOffset 天
}

// ScheduleEntry 日程条目快照
//
// Left/Width 为 [0,1] 的比例，left+width ≤ 1 由调用方保证，引擎不校验。
type ScheduleEntry struct {
	ID             string
	StartOffset    int // 距时间段开始的分钟数
	EndOffset      int // 必须大于 StartOffset
	Left           float64
	Width          float64
	NumberingStyle string
	ActivityID     string
	Title          string
}

// DayOffset 条目开始所在的天（向下取整，负偏移落在前一天）
func (e ScheduleEntry) DayOffset() int {
	return floorDiv(e.StartOffset, MinutesPerDay)
}

// Length 条目时长（分钟）
func (e ScheduleEntry) Length() int {
	return e.EndOffset - e.StartOffset
}

// StartAt 条目绝对开始时间
func (e ScheduleEntry) StartAt(periodStart time.Time) time.Time {
	return periodStart.Add(time.Duration(e.StartOffset) * time.Minute)
}

// EndAt 条目绝对结束时间
func (e ScheduleEntry) EndAt(periodStart time.Time) time.Time {
	return periodStart.Add(time.Duration(e.EndOffset) * time.Minute)
}

// Days 根据时间段生成全部天
func (p Period) Days() []Day {
	if p.DurationInDays <= 0 {
		return []Day{}
	}
	days := make([]Day, 0, p.DurationInDays)
	for i := 0; i < p.DurationInDays; i++ {
		days = append(days, Day{DayOffset: i, Start: p.Start.AddDate(0, 0, i)})
	}
	return days
}

// DayNumber 某个 dayOffset 对应的展示编号
func (p Period) DayNumber(dayOffset int) int {
	return p.FirstDayNumber + dayOffset
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
