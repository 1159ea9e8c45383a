package gizmo

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/ihmcroboticsdocs/euclid-core/geometry"
)

// Config holds all shared resources for a frame sweep.
type Config struct {
	OutputDir   string
	Start       *geometry.Quaternion
	End         *geometry.Quaternion
	Frames      int
	Background  *image.NRGBA
	RenderSize  int
	Supersample int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Success bool
	Error   string
}

// Run renders every frame of the sweep using a worker pool. Frame i carries
// the orientation slerp(start, end, i/(frames-1)).
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, frame int) Result {
	alpha := 0.0
	if cfg.Frames > 1 {
		alpha = float64(frame) / float64(cfg.Frames-1)
	}

	var q geometry.Quaternion
	q.Interpolate(cfg.Start, cfg.End, alpha)

	img := RenderTriad(&q, cfg.RenderSize, cfg.Supersample, cfg.Background)
	if cfg.Supersample > 1 {
		img = Downsample(img, cfg.RenderSize, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%04d.webp", frame))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, Success: true}
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	Alpha float64 `json:"alpha"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
	Image string  `json:"image"`
}

// WriteManifest writes manifest.json next to the frames, recording the
// interpolated yaw-pitch-roll of every frame.
func WriteManifest(path string, cfg Config) error {
	entries := make([]ManifestEntry, cfg.Frames)
	for i := range entries {
		alpha := 0.0
		if cfg.Frames > 1 {
			alpha = float64(i) / float64(cfg.Frames-1)
		}
		var q geometry.Quaternion
		q.Interpolate(cfg.Start, cfg.End, alpha)

		entries[i] = ManifestEntry{
			Frame: i,
			Alpha: alpha,
			Yaw:   q.Yaw(),
			Pitch: q.Pitch(),
			Roll:  q.Roll(),
			Image: fmt.Sprintf("%04d.webp", i),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
