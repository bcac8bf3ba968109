// Command draughts-engine is a thin, non-interactive driver over the
// search core: it parses a single position, optionally consults an
// opening book, runs one of the three searchers, and prints the
// result. It is not a game shell: there is no move loop, no clock, no
// opponent; spec.md Section 1 scopes this repository to the search
// core and its external interfaces, not a playable application.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/book"
	"github.com/hailam/draughts/internal/engine"
	"github.com/hailam/draughts/internal/notation"
	"github.com/hailam/draughts/internal/storage"
)

func main() {
	fen := flag.String("fen", "", `position in "C:C1,...:C1,..." notation; default is the initial position`)
	literal := flag.String("literal", "", "position as a 50-character board literal over {p,P,k,K,.}")
	searcher := flag.String("searcher", "mtd", "searcher to run: mtd, pvf, or ab")
	maxNodes := flag.Int("nodes", 0, "node budget for the search (0 uses the persisted/default setting)")
	bookPath := flag.String("book", "", "path to an opening book file")
	persist := flag.Bool("persist", true, "load persisted engine settings and record session stats across runs")
	flag.Parse()

	pos, err := loadPosition(*fen, *literal)
	if err != nil {
		log.Fatalf("[draughts-engine] %v", err)
	}

	var st *storage.Storage
	settings := storage.DefaultEngineSettings()
	if *persist {
		st, err = storage.Open()
		if err != nil {
			log.Fatalf("[draughts-engine] %v", err)
		}
		defer st.Close()

		settings, err = st.LoadSettings()
		if err != nil {
			log.Fatalf("[draughts-engine] %v", err)
		}
	}

	nodes := *maxNodes
	if nodes <= 0 {
		nodes = settings.MaxNodes
	}

	eng := engine.NewEngine(engine.Config{
		TableCapacity:    settings.TableSizeLimit,
		AspirationWindow: settings.AspirationWindow,
	})
	if *bookPath != "" {
		b, err := book.LoadFile(*bookPath)
		if err != nil {
			log.Fatalf("[draughts-engine] %v", err)
		}
		eng.SetBook(b)
		log.Printf("[draughts-engine] loaded opening book: %s positions", humanize.Comma(int64(b.Len())))
	}

	if eng.Book() != nil {
		if m, ok := eng.Book().Probe(pos.Key()); ok {
			fmt.Printf("book move: %s\n", notation.RenderMove(&m))
			return
		}
	}

	var result engine.Result
	switch *searcher {
	case "mtd":
		result = eng.SearchMTD(pos, nodes)
	case "pvf":
		result = eng.SearchPVF(pos, nodes)
	case "ab":
		result = eng.SearchAB(pos, nodes)
	default:
		log.Fatalf("[draughts-engine] unknown searcher %q (want mtd, pvf, or ab)", *searcher)
	}

	printResult(result)

	if st != nil {
		if err := st.RecordSearch(result.Nodes, result.Score, len(result.PV)); err != nil {
			log.Printf("[draughts-engine] failed to record session stats: %v", err)
		}
	}
}

// loadPosition resolves the -fen/-literal flags into a starting
// position, preferring -fen when both are given, and falling back to
// the initial position when neither is set.
func loadPosition(fen, literal string) (*board.Position, error) {
	switch {
	case fen != "":
		return notation.ParseFEN(fen)
	case literal != "":
		return notation.ParseExtended(literal)
	default:
		return board.InitialPosition(), nil
	}
}

func printResult(r engine.Result) {
	if r.Move == nil {
		fmt.Println("no move (terminal position, or no forced line for pvf)")
		return
	}

	fmt.Printf("move: %s\n", notation.RenderMove(r.Move))
	fmt.Printf("score: %d\n", r.Score)
	fmt.Printf("nodes: %s\n", humanize.Comma(int64(r.Nodes)))
	fmt.Printf("time: %s (%s)\n", r.Took.Round(0), humanize.Time(r.StartedAt))

	if len(r.PV) > 0 {
		fmt.Print("pv:")
		for i := range r.PV {
			fmt.Printf(" %s", notation.RenderMove(&r.PV[i]))
		}
		fmt.Println()
	}
}
