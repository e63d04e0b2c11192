package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tf267183/ecamp3/config"
	"github.com/tf267183/ecamp3/internal/picasso"
	applogger "github.com/tf267183/ecamp3/pkg/logger"
)

type options struct {
	maxDaysPerPage int
	bucketHours    float64
	verbose        bool
}

func SetupCommands(out io.Writer) *cobra.Command {
	opts := &options{}

	// root command
	rootCmd := &cobra.Command{
		Use:           "picasso",
		Short:         "离线计算营地日程的 picasso 布局",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().IntVar(&opts.maxDaysPerPage, "max-days-per-page", 8, "每页最多天数")
	rootCmd.PersistentFlags().Float64Var(&opts.bucketHours, "bucket-hours", 1, "纵轴刻度（小时）")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "输出调试日志")

	// 完整布局（JSON）
	renderCmd := &cobra.Command{
		Use:   "render [snapshot.yaml]",
		Short: "输出完整的 picasso 布局 JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := renderFile(args[0], opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(toLayoutView(layout))
		},
	}

	// 分页摘要
	pagesCmd := &cobra.Command{
		Use:   "pages [snapshot.yaml]",
		Short: "列出每页的天数范围与夜间窗口",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := renderFile(args[0], opts)
			if err != nil {
				return err
			}
			writePages(cmd.OutOrStdout(), layout)
			return nil
		},
	}

	// 条目编号
	numbersCmd := &cobra.Command{
		Use:   "numbers [snapshot.yaml]",
		Short: "按开始时间列出条目编号",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(args[0])
			if err != nil {
				return err
			}
			numbers, err := picasso.NumberAll(snap.Period, snap.Entries, picasso.DefaultStyles())
			if err != nil {
				return err
			}
			writeNumbers(cmd.OutOrStdout(), snap.Entries, numbers)
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(numbersCmd)

	return rootCmd
}

func readSnapshot(path string) (picasso.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return picasso.Snapshot{}, fmt.Errorf("打开快照文件失败: %w", err)
	}
	defer f.Close()
	return loadSnapshot(f)
}

func renderFile(path string, opts *options) (picasso.Layout, error) {
	if opts.maxDaysPerPage < 1 {
		return picasso.Layout{}, fmt.Errorf("max-days-per-page 必须大于 0")
	}
	if opts.bucketHours <= 0 || opts.bucketHours > 24 {
		return picasso.Layout{}, fmt.Errorf("bucket-hours 必须在 (0, 24] 之间")
	}

	logger := zap.NewNop()
	if opts.verbose {
		l, err := applogger.NewLogger(&config.LogConfig{Level: "debug", Format: "console", OutputPaths: []string{"stderr"}})
		if err != nil {
			return picasso.Layout{}, err
		}
		logger = l
	}
	defer logger.Sync()

	snap, err := readSnapshot(path)
	if err != nil {
		return picasso.Layout{}, err
	}
	logger.Debug("快照已加载",
		zap.String("file", path),
		zap.Int("days", snap.Period.DurationInDays),
		zap.Int("entries", len(snap.Entries)),
	)

	layout, err := picasso.Render(snap, picasso.DefaultStyles(), picasso.Options{
		MaxDaysPerPage:  opts.maxDaysPerPage,
		TimeBucketHours: opts.bucketHours,
	})
	if err != nil {
		return picasso.Layout{}, err
	}
	for i, p := range layout.Pages {
		if p.Overlapping > 0 && !p.NightCollapsed {
			logger.Debug("页面无可折叠夜间窗口，显示全天", zap.Int("page", i+1))
		}
	}
	return layout, nil
}

// ── 输出 ──

type layoutView struct {
	Pages []pageView `json:"pages"`
}

type pageView struct {
	Bedtime        string               `json:"bedtime"`
	GetUpTime      string               `json:"get_up_time"`
	NightCollapsed bool                 `json:"night_collapsed"`
	TimeBuckets    []picasso.TimeBucket `json:"time_buckets"`
	Days           []dayView            `json:"days"`
}

type dayView struct {
	DayNumber int         `json:"day_number"`
	Date      string      `json:"date"`
	Entries   []entryView `json:"entries"`
}

type entryView struct {
	ID     string  `json:"id"`
	Number string  `json:"number"`
	Title  string  `json:"title"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

func toLayoutView(layout picasso.Layout) layoutView {
	view := layoutView{Pages: make([]pageView, 0, len(layout.Pages))}
	for _, p := range layout.Pages {
		pv := pageView{
			Bedtime:        clock(p.Window.Bedtime),
			GetUpTime:      clock(p.Window.GetUpTime),
			NightCollapsed: p.NightCollapsed,
			TimeBuckets:    p.Buckets,
			Days:           make([]dayView, 0, len(p.Days)),
		}
		for _, d := range p.Days {
			dv := dayView{DayNumber: d.DayNumber, Date: d.Day.Start.Format(dateLayout), Entries: []entryView{}}
			for _, pe := range d.Entries {
				dv.Entries = append(dv.Entries, entryView{
					ID:     pe.Entry.ID,
					Number: pe.Number,
					Title:  pe.Entry.Title,
					Top:    pe.Geometry.Top,
					Bottom: pe.Geometry.Bottom,
					Left:   pe.Geometry.Left,
					Right:  pe.Geometry.Right,
				})
			}
			pv.Days = append(pv.Days, dv)
		}
		view.Pages = append(view.Pages, pv)
	}
	return view
}

func writePages(w io.Writer, layout picasso.Layout) {
	for i, p := range layout.Pages {
		first, last := p.Days[0], p.Days[len(p.Days)-1]
		night := "全天"
		if p.NightCollapsed {
			night = fmt.Sprintf("就寝 %s 起床 %s", clock(p.Window.Bedtime), clock(p.Window.GetUpTime))
		}
		fmt.Fprintf(w, "第%d页\t第%d天-第%d天\t%s\t%d 个刻度\n", i+1, first.DayNumber, last.DayNumber, night, len(p.Buckets))
	}
}

func writeNumbers(w io.Writer, entries []picasso.ScheduleEntry, numbers map[string]string) {
	sorted := make([]picasso.ScheduleEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return picasso.Precedes(sorted[i], sorted[j])
	})
	for _, e := range sorted {
		fmt.Fprintf(w, "%s\t%s\n", numbers[e.ID], e.Title)
	}
}

func clock(hour float64) string {
	minutes := int(math.Round(hour*60)) % picasso.MinutesPerDay
	if minutes < 0 {
		minutes += picasso.MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
