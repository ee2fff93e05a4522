// Command ggbench drives the rendering benchmark suite and reports
// per-workload frame rates.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // GPU accelerator when available, CPU fallback otherwise
	"github.com/gogpu/gg/text"
	"github.com/olekukonko/tablewriter"

	"github.com/gogpu/ggbench"
	"github.com/gogpu/ggbench/report"
	"github.com/gogpu/ggbench/workload"
)

func main() {
	var (
		width     = flag.Int("width", 1280, "main surface width")
		height    = flag.Int("height", 720, "main surface height")
		offscreen = flag.Int("offscreen", 512, "offscreen benchmark surface size")
		mode      = flag.String("mode", "frame", "measurement mode: frame or time")
		frames    = flag.Int("frames", ggbench.DefaultFramesPerTest, "frames per test in frame mode")
		window    = flag.Duration("window", ggbench.DefaultWindowDuration, "measurement window in time mode")
		passes    = flag.Int("passes", 1, "full passes over the suite (0 runs until interrupted)")
		warmup    = flag.Int("warmup", ggbench.DefaultWarmupSteps, "warm-up frames before measurement")
		list      = flag.Bool("list", false, "print the workload suite and exit")
		jsonPath  = flag.String("json", "", "write the run report to this file")
		output    = flag.String("output", "", "save the final main surface as PNG")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggbench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var discipline ggbench.Discipline
	switch *mode {
	case "frame":
		discipline = ggbench.FrameBounded
	case "time":
		discipline = ggbench.TimeBounded
	default:
		log.Fatalf("unknown mode %q (want frame or time)", *mode)
	}

	sansSrc, serifSrc := loadFonts()
	suite := workload.NewSuite(workload.Config{
		Sans:  face(sansSrc, 16),
		Serif: face(serifSrc, 16),
	})

	if *list {
		for i, w := range suite.Workloads {
			fmt.Printf("%2d  %s\n", i, w.Name())
		}
		return
	}

	reg, err := ggbench.NewRegistry(suite.Workloads...)
	if err != nil {
		log.Fatalf("registry: %v", err)
	}

	notifier := ggbench.NewChannelNotifier()
	h := ggbench.New(reg,
		ggbench.WithDiscipline(discipline),
		ggbench.WithFramesPerTest(*frames),
		ggbench.WithWindowDuration(*window),
		ggbench.WithMaxPasses(*passes),
		ggbench.WithWarmupSteps(*warmup),
		ggbench.WithWarmup(suite.Warmup...),
		ggbench.WithIndicator(suite.Indicator),
		ggbench.WithNotifier(notifier),
	)

	mainDC := gg.NewContext(*width, *height)
	offDC := gg.NewContext(*offscreen, *offscreen)
	presenter := workload.NewPresenter(mainDC, offDC, face(sansSrc, 10))

	run := report.NewRun(*mode, *offscreen, *offscreen)
	names := reg.Names()
	done := make(chan struct{})

	go func() {
		for msg := range notifier.Messages() {
			switch msg.Kind {
			case ggbench.KindResultsReady:
				if err := run.AddPass(names, msg.FPS); err != nil {
					log.Printf("report: %v", err)
				}
			case ggbench.KindTestDone:
				run.Finish()
				close(done)
			}
		}
	}()

loop:
	for {
		fr := presenter.Begin()
		st, err := h.Tick(fr)
		if err != nil {
			log.Fatalf("tick: %v", err)
		}
		presenter.End(st)
		select {
		case <-done:
			break loop
		default:
		}
	}
	notifier.Close()

	printResults(run.Final())

	if *jsonPath != "" {
		if err := writeReport(run, *jsonPath); err != nil {
			log.Fatalf("report: %v", err)
		}
		fmt.Printf("\nReport written to %s (run %s)\n", *jsonPath, run.ID)
	}
	if *output != "" {
		if err := mainDC.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}
}

func printResults(entries []report.Entry) {
	if len(entries) == 0 {
		fmt.Println("No results recorded.")
		return
	}

	best, worst := 0, 0
	for i, e := range entries {
		if e.FPS > entries[best].FPS {
			best = i
		}
		if e.FPS < entries[worst].FPS {
			worst = i
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	if err := table.Append([]string{"#", "Workload", "FPS"}); err != nil {
		log.Printf("table: %v", err)
	}
	for i, e := range entries {
		fps := fmt.Sprintf("%.2f", e.FPS)
		switch i {
		case best:
			fps = color.New(color.FgGreen, color.Bold).Sprint(fps)
		case worst:
			fps = color.New(color.FgRed, color.Bold).Sprint(fps)
		}
		if err := table.Append([]string{strconv.Itoa(e.Index), e.Name, fps}); err != nil {
			log.Printf("table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		log.Printf("table: %v", err)
	}
}

func writeReport(run *report.Run, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := run.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func face(src *text.FontSource, size float64) text.Face {
	if src == nil {
		return nil
	}
	return src.Face(size)
}

func loadFonts() (sans, serif *text.FontSource) {
	sans = openFirst([]string{
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\segoeui.ttf",
		// macOS - Supplemental fonts are TTF
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	})
	serif = openFirst([]string{
		"C:\\Windows\\Fonts\\times.ttf",
		"/System/Library/Fonts/Supplemental/Times New Roman.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
		"/usr/share/fonts/TTF/DejaVuSerif.ttf",
		"/usr/share/fonts/liberation/LiberationSerif-Regular.ttf",
	})
	if sans == nil {
		log.Println("no system font found; text workloads render geometry only")
	}
	if serif == nil {
		serif = sans
	}
	return sans, serif
}

// openFirst returns a font source for the first usable TTF path
// (TTC collections not supported).
func openFirst(candidates []string) *text.FontSource {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		source, err := text.NewFontSourceFromFile(path)
		if err != nil {
			continue
		}
		return source
	}
	return nil
}
