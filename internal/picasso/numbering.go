package picasso

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnresolvableDay 条目的开始时间不落在时间段的任何一天
var ErrUnresolvableDay = errors.New("日程条目不属于时间段内的任何一天")

// ── 编号样式 ──

// NumberingStyle 把序号转换为展示字符串
type NumberingStyle func(n int) string

// StyleRegistry 编号样式标签 → 格式化函数
type StyleRegistry map[string]NumberingStyle

// 分类上可选的编号样式标签
const (
	StyleArabic     = "1"
	StyleLowerAlpha = "a"
	StyleUpperAlpha = "A"
	StyleLowerRoman = "i"
	StyleUpperRoman = "I"
)

// DefaultStyles 内置编号样式
func DefaultStyles() StyleRegistry {
	return StyleRegistry{
		StyleArabic:     strconv.Itoa,
		StyleLowerAlpha: alphaNumber,
		StyleUpperAlpha: func(n int) string { return strings.ToUpper(alphaNumber(n)) },
		StyleLowerRoman: func(n int) string { return strings.ToLower(romanNumber(n)) },
		StyleUpperRoman: romanNumber,
	}
}

// Format 按样式格式化序号，未知样式退化为阿拉伯数字
func (r StyleRegistry) Format(style string, n int) string {
	if f, ok := r[style]; ok && f != nil {
		return f(n)
	}
	return strconv.Itoa(n)
}

// alphaNumber 1→a, 26→z, 27→aa（双射 26 进制）
func alphaNumber(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b []byte
	for n > 0 {
		n--
		b = append(b, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func romanNumber(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var sb strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}

// ── 条目编号 ──

// Precedes 同一天同一编号样式内的全序：
// 开始早者在前；开始相同时 left 小者在前；再相同时结束晚（更长）者在前；最后按 ID。
func Precedes(e, entry ScheduleEntry) bool {
	if e.StartOffset != entry.StartOffset {
		return e.StartOffset < entry.StartOffset
	}
	if !floatEquals(e.Left, entry.Left) {
		return e.Left < entry.Left
	}
	if e.EndOffset != entry.EndOffset {
		return e.EndOffset > entry.EndOffset
	}
	return e.ID < entry.ID
}

// ScheduleEntryNumber 条目在当天（同一编号样式内）的序号，从 1 开始。
// all 为同一时间段的全部条目快照，可以包含 entry 自身。
func ScheduleEntryNumber(entry ScheduleEntry, all []ScheduleEntry) int {
	dayStart := entry.DayOffset() * MinutesPerDay
	n := 1
	for _, e := range all {
		if e.ID == entry.ID {
			continue
		}
		if e.StartOffset < dayStart || e.StartOffset > entry.StartOffset {
			continue
		}
		if e.NumberingStyle != entry.NumberingStyle {
			continue
		}
		if Precedes(e, entry) {
			n++
		}
	}
	return n
}

// DayNumber 条目开始所在天的展示编号
func DayNumber(period Period, entry ScheduleEntry) (int, error) {
	offset := entry.DayOffset()
	if offset < 0 || offset >= period.DurationInDays {
		return 0, fmt.Errorf("%w: start_offset=%d", ErrUnresolvableDay, entry.StartOffset)
	}
	return period.DayNumber(offset), nil
}

// Number 条目的展示编号 "{天编号}.{样式化序号}"，例如 "2.b"
func Number(period Period, entry ScheduleEntry, all []ScheduleEntry, styles StyleRegistry) (string, error) {
	dayNumber, err := DayNumber(period, entry)
	if err != nil {
		return "", err
	}
	ordinal := ScheduleEntryNumber(entry, all)
	return label(dayNumber, styles.Format(entry.NumberingStyle, ordinal)), nil
}

// NumberAll 一次性为全部条目计算编号（按天、样式分组后排序），
// 结果与逐个调用 Number 相同。返回 ID → 编号。
func NumberAll(period Period, entries []ScheduleEntry, styles StyleRegistry) (map[string]string, error) {
	type groupKey struct {
		day   int
		style string
	}
	groups := make(map[groupKey][]ScheduleEntry)
	for _, e := range entries {
		if _, err := DayNumber(period, e); err != nil {
			return nil, err
		}
		k := groupKey{day: e.DayOffset(), style: e.NumberingStyle}
		groups[k] = append(groups[k], e)
	}

	numbers := make(map[string]string, len(entries))
	for k, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return Precedes(group[i], group[j])
		})
		dayNumber := period.DayNumber(k.day)
		for i, e := range group {
			numbers[e.ID] = label(dayNumber, styles.Format(k.style, i+1))
		}
	}
	return numbers, nil
}

func label(dayNumber int, styled string) string {
	return strconv.Itoa(dayNumber) + "." + styled
}
