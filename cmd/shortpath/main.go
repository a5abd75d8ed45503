// Command shortpath reads a connection matrix from a TOML file and prints
// the cheapest path between two of its nodes.
//
//	shortpath -config network.toml
//	shortpath -config network.toml -start 2 -end 5 -v
//
// The path is printed as space-separated node ids followed by its cost, or
// "unreachable" when no path exists.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/dijkstra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("shortpath: ")

	if err := run(os.Args[1:], os.Stdout, log.Default()); err != nil {
		log.Fatal(err)
	}
}

// run parses args, solves the configured query and writes the result to out.
// Progress is logged to logger when -v is set.
func run(args []string, out io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("shortpath", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := fs.String("config", "shortpath.toml", "Path to the configuration file")
	start := fs.Int("start", -1, "Start node id (overrides the config file)")
	end := fs.Int("end", -1, "End node id (overrides the config file)")
	verbose := fs.Bool("v", false, "Log every visit and relaxation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if *start >= 0 {
		cfg.Start = *start
	}
	if *end >= 0 {
		cfg.End = *end
	}

	g, err := cfg.Graph()
	if err != nil {
		return fmt.Errorf("%s: %w", *configFile, err)
	}

	var opts []dijkstra.Option
	if *verbose {
		opts = append(opts,
			dijkstra.WithOnVisit(func(id int, dist int64) {
				logger.Printf("visit %d dist=%d", id, dist)
			}),
			dijkstra.WithOnRelax(func(from, to int, dist int64) {
				logger.Printf("relax %d→%d dist=%d", from, to, dist)
			}),
		)
	}

	d, err := dijkstra.New(g, cfg.Start, cfg.End, opts...)
	if err != nil {
		return err
	}
	path := d.Solve()
	if *verbose {
		logger.Printf("solved %d→%d in %d steps", cfg.Start, cfg.End, d.Steps())
	}

	if len(path) == 0 {
		_, err = fmt.Fprintln(out, "unreachable")
		return err
	}
	ids := make([]string, len(path))
	for i, id := range path {
		ids[i] = strconv.Itoa(id)
	}
	_, err = fmt.Fprintf(out, "%s (cost %d)\n", strings.Join(ids, " "), d.Distance())

	return err
}
