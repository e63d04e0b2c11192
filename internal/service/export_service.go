package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tf267183/ecamp3/config"
	"github.com/tf267183/ecamp3/internal/picasso"
	"github.com/tf267183/ecamp3/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEntries    = errors.New("该阶段暂无日程条目")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
//   - picasso 导出为 Excel (.xlsx)：每页一个 Sheet，行为时间刻度，列为天
//   - 日程导出为 iCalendar (.ics)：每个条目一个 VEVENT
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	ExportPicasso(ctx context.Context, periodID string) (*bytes.Buffer, string, error)
	ExportCalendar(ctx context.Context, periodID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.PicassoConfig
	repo   *repository.Repository
	styles picasso.StyleRegistry
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.PicassoConfig, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{
		cfg:    cfg,
		repo:   repo,
		styles: picasso.DefaultStyles(),
		logger: logger,
		now:    time.Now,
	}
}

// ═══════════════════════════════════════════════════════════
// ExportPicasso — 导出 picasso 为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "第1页" / "第2页" ...
//   - 第 1 行：营地名 + 阶段描述
//   - 第 2 行：时间 | 第N天 日期 ...
//   - 数据行：每个时间刻度一行，条目写入其覆盖的行，文本为 "编号 标题"

func (s *exportService) ExportPicasso(ctx context.Context, periodID string) (*bytes.Buffer, string, error) {
	opts := resolveOptions(s.cfg, nil)
	ps, layout, err := renderPeriod(ctx, s.repo, s.styles, s.logger, periodID, opts)
	if err != nil {
		return nil, "", err
	}
	if len(ps.entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})

	title := calendarName(ps)
	for i, page := range layout.Pages {
		sheet := fmt.Sprintf("第%d页", i+1)
		idx, err := f.NewSheet(sheet)
		if err != nil {
			s.logger.Error("创建 Sheet 失败", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		writePicassoPage(f, sheet, title, page, headerStyle, cellStyle)
	}
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("picasso_%s.xlsx", ps.period.StartDate.Format(dateLayout))
	return buf, filename, nil
}

func writePicassoPage(f *excelize.File, sheet, title string, page picasso.Page, headerStyle, cellStyle int) {
	lastCol := colName(len(page.Days))

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", lastCol, 24)

	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	f.SetCellValue(sheet, "A2", "时间")
	for i, col := range page.Days {
		f.SetCellValue(sheet, cell(colName(i+1), 2),
			fmt.Sprintf("第%d天 %s", col.DayNumber, col.Day.Start.Format(dateLayout)))
	}
	f.SetCellStyle(sheet, "A2", cell(lastCol, 2), headerStyle)

	// 最后一个刻度是结束线，不单独成行
	rows := len(page.Buckets) - 1
	for r := 0; r < rows; r++ {
		f.SetCellValue(sheet, cell("A", 3+r), formatHour(page.Buckets[r].Hour))
	}

	for i, col := range page.Days {
		texts := make(map[int][]string)
		for _, pe := range col.Entries {
			text := strings.TrimSpace(pe.Number + " " + pe.Entry.Title)
			for _, r := range coveredRows(pe.Entry, col.Day.DayOffset, page.Buckets) {
				texts[r] = append(texts[r], text)
			}
		}
		for r, list := range texts {
			f.SetCellValue(sheet, cell(colName(i+1), 3+r), strings.Join(list, "\n"))
		}
	}
	if rows > 0 {
		f.SetCellStyle(sheet, "B3", cell(lastCol, 2+rows), cellStyle)
	}
}

// coveredRows 条目覆盖的刻度行：刻度 [Hour_i, Hour_i+1) 与条目时间相交
func coveredRows(e picasso.ScheduleEntry, dayOffset int, buckets []picasso.TimeBucket) []int {
	dayStart := dayOffset * picasso.MinutesPerDay
	start := float64(e.StartOffset-dayStart) / 60
	end := float64(e.EndOffset-dayStart) / 60

	var rows []int
	for i := 0; i+1 < len(buckets); i++ {
		if buckets[i].Hour < end && buckets[i+1].Hour > start {
			rows = append(rows, i)
		}
	}
	return rows
}

// formatHour 刻度小时 → "HH:MM"，超过 24 的值回绕到次日
func formatHour(hour float64) string {
	minutes := int(math.Round(hour*60)) % picasso.MinutesPerDay
	if minutes < 0 {
		minutes += picasso.MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 导出日程为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCalendar(ctx context.Context, periodID string) (*bytes.Buffer, string, error) {
	ps, err := loadPeriodSchedule(ctx, s.repo, periodID)
	if err != nil {
		if !errors.Is(err, ErrPeriodNotFound) {
			s.logger.Error("读取阶段日程失败", zap.String("period_id", periodID), zap.Error(err))
		}
		return nil, "", err
	}
	if len(ps.entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	snap := ps.snapshot()
	numbers, err := picasso.NumberAll(snap.Period, snap.Entries, s.styles)
	if err != nil {
		s.logger.Error("条目编号失败", zap.String("period_id", periodID), zap.Error(err))
		return nil, "", ErrScheduleEntryOutOfPeriod
	}

	name := calendarName(ps)
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ecamp3//picasso//ZH")
	cal.SetName(name)
	cal.SetXWRCalName(name)
	if s.cfg.ExportTimezone != "" {
		cal.SetXWRTimezone(s.cfg.ExportTimezone)
	}

	stamp := s.now().UTC()
	for i, e := range snap.Entries {
		ev := cal.AddEvent(e.ID + "@picasso")
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.StartAt(snap.Period.Start))
		ev.SetEndAt(e.EndAt(snap.Period.Start))
		ev.SetSummary(strings.TrimSpace(numbers[e.ID] + " " + e.Title))
		if loc := entryLocation(&ps.entries[i]); loc != "" {
			ev.SetLocation(loc)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("schedule_%s.ics", ps.period.StartDate.Format(dateLayout))
	return buf, filename, nil
}

// ── 辅助函数 ──

func calendarName(ps *periodSchedule) string {
	var parts []string
	if ps.period.Camp != nil && ps.period.Camp.Name != "" {
		parts = append(parts, ps.period.Camp.Name)
	}
	if ps.period.Description != "" {
		parts = append(parts, ps.period.Description)
	}
	if len(parts) == 0 {
		return "picasso"
	}
	return strings.Join(parts, " ")
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
