package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"raytray/canvas"
	"raytray/internal/buildinfo"
	"raytray/internal/scenario"
)

func TestTracePrintsUntilLanding(t *testing.T) {
	var out bytes.Buffer
	if err := runTrace(&out, traceOptions{speed: 1, maxTicks: 1000}); err != nil {
		t.Fatalf("runTrace: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if lines[0] != "BANG!" || lines[len(lines)-1] != "BOOM!" {
		t.Fatalf("output not framed by BANG!/BOOM!:\n%s", out.String())
	}
	for _, l := range lines[1 : len(lines)-1] {
		if !strings.HasPrefix(l, "point(") {
			t.Fatalf("unexpected line %q", l)
		}
	}
}

func TestTraceGivesUp(t *testing.T) {
	var out bytes.Buffer
	err := runTrace(&out, traceOptions{speed: 1, maxTicks: 3})
	if err == nil || !strings.Contains(err.Error(), "airborne") {
		t.Fatalf("err = %v, want airborne error", err)
	}
}

func TestTraceRejectsBadOptions(t *testing.T) {
	if err := runTrace(&bytes.Buffer{}, traceOptions{speed: 0, maxTicks: 10}); err == nil {
		t.Fatalf("zero speed accepted")
	}
	if err := runTrace(&bytes.Buffer{}, traceOptions{speed: 1, maxTicks: 0}); err == nil {
		t.Fatalf("zero max-ticks accepted")
	}
}

func TestPlotterMarksPath(t *testing.T) {
	pl, err := newPlotter(scenario.Default())
	if err != nil {
		t.Fatalf("newPlotter: %v", err)
	}
	if err := pl.finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if pl.ticks < 2 {
		t.Fatalf("ticks = %d", pl.ticks)
	}
	marked := 0
	want := scenario.Default().PlotColor()
	for y := 0; y < pl.canvas.Height(); y++ {
		for x := 0; x < pl.canvas.Width(); x++ {
			got, err := pl.canvas.At(canvas.Pixel{X: x, Y: y})
			if err != nil {
				t.Fatal(err)
			}
			if got.Equal(want) {
				marked++
			}
		}
	}
	if marked == 0 || marked > pl.ticks {
		t.Fatalf("marked %d pixels over %d ticks", marked, pl.ticks)
	}
	// Once done, stepping is a no-op.
	if done, err := pl.step(); !done || err != nil {
		t.Fatalf("step after done = %v, %v", done, err)
	}
}

func TestPlotterRunsOutOfTicks(t *testing.T) {
	s := scenario.Default()
	s.MaxTicks = 2
	pl, err := newPlotter(s)
	if err != nil {
		t.Fatal(err)
	}
	if err := pl.finish(); err == nil {
		t.Fatalf("finish succeeded with the projectile still on the canvas")
	}
}

func TestDrawLabel(t *testing.T) {
	c, err := canvas.New(40, 12)
	if err != nil {
		t.Fatal(err)
	}
	if err := drawLabel(c, "HI"); err != nil {
		t.Fatalf("drawLabel: %v", err)
	}
	lit := false
	c.ScanRows(func(_ int, row []canvas.Color) {
		for _, col := range row {
			if col.Equal(canvas.White) {
				lit = true
			}
		}
	})
	if !lit {
		t.Fatalf("label drew nothing")
	}

	small, err := canvas.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := drawLabel(small, "too long"); !errors.Is(err, errLabelTooLarge) {
		t.Fatalf("err = %v, want errLabelTooLarge", err)
	}
}

func TestPlotCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := filepath.Join(dir, "shot.yaml")
	if err := os.WriteFile(scenarioPath, []byte("canvas: {width: 90, height: 60}\nspeed: 2\nlabel: ignored\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "plot.ppm")

	cmd := newRootCommand()
	cmd.SetOutput(&bytes.Buffer{})
	cmd.SetArgs([]string{"plot", "-f", scenarioPath, "-o", outPath, "--width", "120", "--label", ""})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("plot: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n120 60\n255\n") {
		t.Fatalf("unexpected header: %q", string(data[:min(len(data), 20)]))
	}
	if !strings.Contains(string(data), "255 128 128") {
		t.Fatalf("plot color missing from output")
	}
	if strings.Contains(string(data), "255 255 255") {
		t.Fatalf("label drawn although --label cleared it")
	}
}

func TestPlotCommandRejectsInvalidOverride(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOutput(&bytes.Buffer{})
	cmd.SetArgs([]string{"plot", "-o", filepath.Join(t.TempDir(), "x.ppm"), "--height", "0"})
	if err := cmd.Execute(); !errors.Is(err, scenario.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOutput(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != buildinfo.String() {
		t.Fatalf("version printed %q", got)
	}
}
