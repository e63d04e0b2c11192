package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := SetupCommands(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadSnapshot(t *testing.T) {
	snap, err := loadSnapshot(strings.NewReader(`
period:
  start: "2024-07-13"
  days: 2
entries:
  - title: Lagerfeuer
    start: "2024-07-13 20:00"
    end: "2024-07-14 01:00"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Period.FirstDayNumber != 1 {
		t.Errorf("first day number should default to 1, got %d", snap.Period.FirstDayNumber)
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(snap.Entries))
	}
	e := snap.Entries[0]
	if e.StartOffset != 1200 || e.EndOffset != 1500 {
		t.Errorf("unexpected offsets %d-%d", e.StartOffset, e.EndOffset)
	}
	if e.ID != entryID(0) {
		t.Errorf("missing id should be derived from the entry index, got %q", e.ID)
	}
	if e.NumberingStyle != "1" || e.Width != 1 {
		t.Errorf("unexpected defaults: style=%q width=%v", e.NumberingStyle, e.Width)
	}
}

func TestLoadSnapshot_Invalid(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want error
	}{
		"缺少时间段": {
			yaml: "entries: []",
			want: ErrSnapshotPeriod,
		},
		"结束早于开始": {
			yaml: `
period: {start: "2024-07-13", days: 1}
entries:
  - {title: x, start_offset: 60, end_offset: 60}
`,
			want: ErrSnapshotEntry,
		},
		"缺少结束时间": {
			yaml: `
period: {start: "2024-07-13", days: 1}
entries:
  - {title: x, start: "2024-07-13 08:00"}
`,
			want: ErrSnapshotEntry,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadSnapshot(strings.NewReader(tc.yaml))
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNumbersCommand(t *testing.T) {
	out, err := runCommand(t, "numbers", "testdata/sola.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"1.a\tFrühsport",
		"1.b\tGeländespiel",
		"1.1\tLagerfeuer",
		"2.a\tZmorge",
	}
	got := strings.Split(strings.TrimSpace(out), "\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(got), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNumbersCommand_StableWithoutIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twins.yaml")
	content := `
period: {start: "2024-07-13", days: 1}
entries:
  - {title: A, start: "2024-07-13 10:00", end: "2024-07-13 11:00"}
  - {title: B, start: "2024-07-13 10:00", end: "2024-07-13 11:00"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	first, err := runCommand(t, "numbers", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		out, err := runCommand(t, "numbers", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != first {
			t.Fatalf("run %d: numbering changed\nfirst:\n%s\ngot:\n%s", i, first, out)
		}
	}
}

func TestPagesCommand(t *testing.T) {
	out, err := runCommand(t, "pages", "--max-days-per-page", "2", "testdata/sola.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 pages, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "第1页\t第1天-第2天") {
		t.Errorf("unexpected first page %q", lines[0])
	}
	// 第 3 天没有条目，显示全天
	if lines[1] != "第2页\t第3天-第3天\t全天\t25 个刻度" {
		t.Errorf("unexpected second page %q", lines[1])
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := runCommand(t, "render", "testdata/sola.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var view layoutView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(view.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(view.Pages))
	}
	days := view.Pages[0].Days
	if len(days) != 3 || days[0].Date != "2024-07-13" || days[2].DayNumber != 3 {
		t.Fatalf("unexpected days: %+v", days)
	}
	if len(days[0].Entries) != 3 || len(days[1].Entries) != 1 || len(days[2].Entries) != 0 {
		t.Errorf("unexpected entry distribution: %d/%d/%d",
			len(days[0].Entries), len(days[1].Entries), len(days[2].Entries))
	}
	for _, e := range days[0].Entries {
		// Bottom 为距列底部的百分比
		if e.Top < 0 || e.Bottom < 0 || e.Top >= 100-e.Bottom {
			t.Errorf("entry %s has invalid geometry %+v", e.ID, e)
		}
	}
}

func TestRenderCommand_InvalidOptions(t *testing.T) {
	if _, err := runCommand(t, "render", "--max-days-per-page", "0", "testdata/sola.yaml"); err == nil {
		t.Error("expected error for max-days-per-page=0")
	}
	if _, err := runCommand(t, "render", "--bucket-hours", "0", "testdata/sola.yaml"); err == nil {
		t.Error("expected error for bucket-hours=0")
	}
	if _, err := runCommand(t, "render", "testdata/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClock(t *testing.T) {
	cases := map[float64]string{
		0:    "00:00",
		7.5:  "07:30",
		24:   "00:00",
		25.5: "01:30",
	}
	for in, want := range cases {
		if got := clock(in); got != want {
			t.Errorf("clock(%v) = %q, want %q", in, got, want)
		}
	}
}
