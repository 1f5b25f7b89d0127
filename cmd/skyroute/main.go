// Command skyroute generates a random terrain, searches it with each
// selected strategy and prints the maps and a comparison table.
//
//	skyroute -width 10 -height 10 -seed 42 -geojson routes.json
//	skyroute -tui
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/skyroute/export"
	"github.com/katalvlaran/skyroute/generator"
	"github.com/katalvlaran/skyroute/render"
	"github.com/katalvlaran/skyroute/report"
	"github.com/katalvlaran/skyroute/search"
	"github.com/katalvlaran/skyroute/terrain"
	"github.com/katalvlaran/skyroute/view"
)

var (
	flagWidth        = flag.Int("width", 10, "grid width")
	flagHeight       = flag.Int("height", 10, "grid height")
	flagSeed         = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flagMaxElevation = flag.Int("max-elevation", generator.DefaultMaxElevation, "highest generated elevation")
	flagNoFly        = flag.Int("no-fly", generator.DefaultNoFlyZones, "number of no-fly zone draws")
	flagReachable    = flag.Bool("reachable", false, "draw the goal from cells reachable from the start")
	flagStrategies   = flag.String("strategies", search.NameAStar+","+search.NameGreedy, "comma-separated strategies to run")
	flagGeoJSON      = flag.String("geojson", "", "write terrain and paths as GeoJSON to this file")
	flagTUI          = flag.Bool("tui", false, "browse the results in an interactive terminal view")
)

// options collects the parsed flags.
type options struct {
	width, height int
	seed          int64
	maxElevation  int
	noFly         int
	reachable     bool
	strategies    []string
}

func main() {
	flag.Parse()

	o := options{
		width:        *flagWidth,
		height:       *flagHeight,
		seed:         *flagSeed,
		maxElevation: *flagMaxElevation,
		noFly:        *flagNoFly,
		reachable:    *flagReachable,
		strategies:   strings.Split(*flagStrategies, ","),
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	if o.maxElevation < 1 || o.noFly < 0 {
		log.Fatalf("[APP] [FATAL] -max-elevation must be ≥ 1 and -no-fly ≥ 0")
	}
	log.Printf("[APP] [INFO] seed %d, %dx%d grid", o.seed, o.width, o.height)

	m, runs, err := run(os.Stdout, o)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	if *flagGeoJSON != "" {
		data, err := export.Marshal(m, runs...)
		if err != nil {
			log.Fatalf("[APP] [FATAL] encode geojson: %v", err)
		}
		if err := os.WriteFile(*flagGeoJSON, data, 0o644); err != nil {
			log.Fatalf("[APP] [FATAL] write geojson: %v", err)
		}
		log.Printf("[APP] [INFO] wrote %s", *flagGeoJSON)
	}

	if *flagTUI {
		if err := browse(m, runs); err != nil {
			log.Fatalf("[APP] [FATAL] terminal view: %v", err)
		}
	}
}

// run generates the terrain, executes every strategy and writes the
// textual report to w.
func run(w io.Writer, o options) (*terrain.Map, []report.Run, error) {
	strategies := make([]search.Strategy, len(o.strategies))
	for i, name := range o.strategies {
		s, err := search.Lookup(name)
		if err != nil {
			return nil, nil, err
		}
		strategies[i] = s
	}

	genOpts := []generator.Option{
		generator.WithSeed(o.seed),
		generator.WithMaxElevation(o.maxElevation),
		generator.WithNoFlyZones(o.noFly),
	}
	if o.reachable {
		genOpts = append(genOpts, generator.WithReachableGoal())
	}
	m, err := generator.Generate(o.width, o.height, genOpts...)
	if err != nil {
		return nil, nil, err
	}

	fmt.Fprintln(w, "Terrain map:")
	if err := render.Render(w, m, nil); err != nil {
		return nil, nil, err
	}

	runs := make([]report.Run, len(strategies))
	for i, s := range strategies {
		name := o.strategies[i]
		fmt.Fprintf(w, "\nSearching with %s...\n", name)
		runs[i] = report.Run{Name: name, Result: s(m)}
		if err := report.Summary(w, runs[i]); err != nil {
			return nil, nil, err
		}
		if runs[i].Result.Found() {
			fmt.Fprintf(w, "\nMap with %s path:\n", name)
			if err := render.Render(w, m, runs[i].Result.Path); err != nil {
				return nil, nil, err
			}
		}
	}

	fmt.Fprintln(w, "\nComparison:")
	if err := report.Compare(w, runs...); err != nil {
		return nil, nil, err
	}

	return m, runs, nil
}

func browse(m *terrain.Map, runs []report.Run) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	view.Run(s, m, runs...)

	return nil
}
