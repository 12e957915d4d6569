// Command life-bench runs the simulation without a window and reports how the
// population and step time evolve.
//
// Profiling:
//
//	go run ./cmd/life-bench -profile cpu -steps 5000
//	go tool pprof -http=":8000" cpu.pprof
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"chunk-life/internal/core"
	"chunk-life/internal/sims/life"
	"chunk-life/internal/viewport"

	"github.com/pkg/profile"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate")
	report := flag.Int("report", 100, "print stats every n generations, 0 for a summary only")
	seed := flag.Int64("seed", 42, "seed for the soup pattern")
	show := flag.Bool("show", false, "print the selected chunk after the run")
	chunkX := flag.Int("chunk-x", 0, "chunk column to print with -show")
	chunkY := flag.Int("chunk-y", 0, "chunk row to print with -show")
	mode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	var overrides kvList
	flag.Var(&overrides, "set", "world option in key=value form (repeatable): w, h, chunk_w, chunk_h, pattern, origin_x, origin_y, soup_density")
	flag.Parse()

	opts := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("malformed -set %q, want key=value", kv)
		}
		opts[parts[0]] = parts[1]
	}
	cfg := life.FromMap(opts)

	sim, err := life.New(cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	view, err := viewport.New(sim.Size(), core.Size{W: cfg.ChunkWidth, H: cfg.ChunkHeight}, viewport.MissingAlive)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	switch *mode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q, want cpu or mem", *mode)
	}

	sim.Reset(*seed)
	fmt.Printf("World %dx%d, chunk %dx%d, pattern %s, %d live cells\n",
		cfg.Width, cfg.Height, cfg.ChunkWidth, cfg.ChunkHeight, cfg.Pattern, sim.AliveCount())

	start := time.Now()
	peak := sim.AliveCount()
	for gen := 1; gen <= *steps; gen++ {
		sim.Step()
		stats := sim.LastStep()
		if stats.Alive > peak {
			peak = stats.Alive
		}
		if *report > 0 && gen%*report == 0 {
			fmt.Printf("  gen %6d: alive %6d  births %5d  deaths %5d  elapsed %v\n",
				gen, stats.Alive, stats.Births, stats.Deaths, time.Since(start).Round(time.Microsecond))
		}
	}
	elapsed := time.Since(start)
	perStep := time.Duration(0)
	if *steps > 0 {
		perStep = elapsed / time.Duration(*steps)
	}
	log.Printf("ran %d generations in %v (%v per step), final alive %d, peak %d",
		*steps, elapsed.Round(time.Millisecond), perStep, sim.AliveCount(), peak)

	if *show {
		view.SetAddress(core.Coord{X: *chunkX, Y: *chunkY})
		out := bufio.NewWriter(os.Stdout)
		writeChunk(out, view, sim)
		if err := out.Flush(); err != nil {
			log.Fatal(err)
		}
	}
}

// writeChunk prints the viewport window with X for live tiles.
func writeChunk(w io.Writer, view *viewport.Viewport, src core.TileSource) {
	addr := view.Address()
	chunks := view.Chunks()
	world := view.WorldSize()
	chunk := view.ChunkSize()
	fmt.Fprintf(w, "Chunk: (%d, %d) of (%d, %d) :: WorldSize: %dx%d :: TilesVisible: %d\n",
		addr.X, addr.Y, chunks.W-1, chunks.H-1, world.W, world.H, chunk.W*chunk.H)
	row := make([]byte, chunk.W+1)
	row[chunk.W] = '\n'
	for ly := 0; ly < chunk.H; ly++ {
		for lx := 0; lx < chunk.W; lx++ {
			row[lx] = ' '
			if view.Tile(src, lx, ly) {
				row[lx] = 'X'
			}
		}
		w.Write(row)
	}
}
