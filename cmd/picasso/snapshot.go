package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tf267183/ecamp3/internal/picasso"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

var (
	ErrSnapshotPeriod = errors.New("快照缺少有效的时间段")
	ErrSnapshotEntry  = errors.New("日程条目时间无效")
)

// snapshotFile YAML 快照文件结构
//
//	period:
//	  start: "2024-07-13"
//	  days: 7
//	  first_day_number: 1
//	entries:
//	  - title: Lagerfeuer
//	    numbering_style: a
//	    start: "2024-07-13 20:00"
//	    end: "2024-07-13 22:00"
type snapshotFile struct {
	Period  periodFile  `yaml:"period"`
	Entries []entryFile `yaml:"entries"`
}

type periodFile struct {
	Start          string `yaml:"start"`
	Days           int    `yaml:"days"`
	FirstDayNumber int    `yaml:"first_day_number"`
}

// entryFile 条目时间可写成绝对时间（start/end）或分钟偏移（start_offset/end_offset），前者优先
type entryFile struct {
	ID             string  `yaml:"id"`
	Title          string  `yaml:"title"`
	NumberingStyle string  `yaml:"numbering_style"`
	Start          string  `yaml:"start"`
	End            string  `yaml:"end"`
	StartOffset    *int    `yaml:"start_offset"`
	EndOffset      *int    `yaml:"end_offset"`
	Left           float64 `yaml:"left"`
	Width          float64 `yaml:"width"`
}

// loadSnapshot 解析 YAML 快照；缺失的条目 ID 由条目序号派生，同一文件每次得到相同 ID
func loadSnapshot(r io.Reader) (picasso.Snapshot, error) {
	var file snapshotFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return picasso.Snapshot{}, fmt.Errorf("解析快照失败: %w", err)
	}

	start, err := time.ParseInLocation(dateLayout, file.Period.Start, time.UTC)
	if err != nil || file.Period.Days <= 0 {
		return picasso.Snapshot{}, ErrSnapshotPeriod
	}
	firstDay := file.Period.FirstDayNumber
	if firstDay == 0 {
		firstDay = 1
	}

	snap := picasso.Snapshot{
		Period: picasso.Period{
			Start:          start,
			FirstDayNumber: firstDay,
			DurationInDays: file.Period.Days,
		},
		Entries: make([]picasso.ScheduleEntry, 0, len(file.Entries)),
	}

	for i, ef := range file.Entries {
		startOffset, endOffset, err := ef.offsets(start)
		if err != nil {
			return picasso.Snapshot{}, fmt.Errorf("第 %d 个条目: %w", i+1, err)
		}
		id := ef.ID
		if id == "" {
			id = entryID(i)
		}
		style := ef.NumberingStyle
		if style == "" {
			style = picasso.StyleArabic
		}
		width := ef.Width
		if width == 0 {
			width = 1
		}
		snap.Entries = append(snap.Entries, picasso.ScheduleEntry{
			ID:             id,
			StartOffset:    startOffset,
			EndOffset:      endOffset,
			Left:           ef.Left,
			Width:          width,
			NumberingStyle: style,
			Title:          ef.Title,
		})
	}
	return snap, nil
}

// entryID 第 i 个条目的确定性 ID
func entryID(i int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("picasso-entry-"+strconv.Itoa(i))).String()
}

func (ef entryFile) offsets(periodStart time.Time) (int, int, error) {
	var startOffset, endOffset int
	switch {
	case ef.Start != "" && ef.End != "":
		s, err := time.ParseInLocation(dateTimeLayout, ef.Start, time.UTC)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %s", ErrSnapshotEntry, ef.Start)
		}
		e, err := time.ParseInLocation(dateTimeLayout, ef.End, time.UTC)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %s", ErrSnapshotEntry, ef.End)
		}
		startOffset = int(s.Sub(periodStart) / time.Minute)
		endOffset = int(e.Sub(periodStart) / time.Minute)
	case ef.StartOffset != nil && ef.EndOffset != nil:
		startOffset, endOffset = *ef.StartOffset, *ef.EndOffset
	default:
		return 0, 0, fmt.Errorf("%w: 缺少开始或结束时间", ErrSnapshotEntry)
	}

	if endOffset <= startOffset {
		return 0, 0, fmt.Errorf("%w: 结束时间必须晚于开始时间", ErrSnapshotEntry)
	}
	return startOffset, endOffset, nil
}
