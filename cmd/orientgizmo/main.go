package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/ihmcroboticsdocs/euclid-core/geometry"
	"github.com/ihmcroboticsdocs/euclid-core/internal/config"
	"github.com/ihmcroboticsdocs/euclid-core/internal/gizmo"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: ./gizmo-frames)")
	background := flag.String("background", "", "Background plate (TGA, PNG or JPEG)")
	frames := flag.Int("frames", 0, "Number of frames in the sweep (default: 60)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	startYaw := flag.Float64("start-yaw", 0, "Start orientation yaw (radians)")
	startPitch := flag.Float64("start-pitch", 0, "Start orientation pitch (radians)")
	startRoll := flag.Float64("start-roll", 0, "Start orientation roll (radians)")
	endYaw := flag.Float64("end-yaw", 1.5, "End orientation yaw (radians)")
	endPitch := flag.Float64("end-pitch", 0.6, "End orientation pitch (radians)")
	endRoll := flag.Float64("end-roll", 0.3, "End orientation roll (radians)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg.Start = config.Pose{Yaw: *startYaw, Pitch: *startPitch, Roll: *startRoll}
		cfg.End = config.Pose{Yaw: *endYaw, Pitch: *endPitch, Roll: *endRoll}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:  *outputDir,
		Background: *background,
		Frames:     *frames,
		Size:       *size,
		Quality:    *quality,
		Workers:    *workers,
	})

	renderSize := cfg.RenderSize * cfg.Supersample
	bg := gizmo.SolidBackground(color.NRGBA{R: 24, G: 26, B: 32, A: 255}, renderSize)
	if cfg.Background != "" {
		loaded, err := gizmo.LoadBackground(cfg.Background, renderSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: background: %v\n", err)
		} else {
			bg = loaded
		}
	}

	start := geometry.NewQuaternionFromYawPitchRoll(cfg.Start.Yaw, cfg.Start.Pitch, cfg.Start.Roll)
	end := geometry.NewQuaternionFromYawPitchRoll(cfg.End.Yaw, cfg.End.Pitch, cfg.End.Roll)

	fmt.Println("Orientation triad sweep → WebP")
	fmt.Printf("Frames: %d, Size: %d, Workers: %d\n", cfg.Frames, cfg.RenderSize, cfg.Workers)
	fmt.Printf("Start: (%.3f, %.3f, %.3f)  End: (%.3f, %.3f, %.3f)\n",
		cfg.Start.Yaw, cfg.Start.Pitch, cfg.Start.Roll,
		cfg.End.Yaw, cfg.End.Pitch, cfg.End.Roll)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	began := time.Now()

	runCfg := gizmo.Config{
		OutputDir:   cfg.OutputDir,
		Start:       start,
		End:         end,
		Frames:      cfg.Frames,
		Background:  bg,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}

	results := gizmo.Run(runCfg)

	elapsed := time.Since(began)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errs []gizmo.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errs = append(errs, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	if len(errs) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errs) < limit {
			limit = len(errs)
		}
		for _, e := range errs[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := gizmo.WriteManifest(manifestPath, runCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
