package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/lexsim/internal/corpusio"
	"github.com/cognicore/lexsim/pkg/lexsim"
	"github.com/cognicore/lexsim/pkg/lexsim/cluster"
	"github.com/cognicore/lexsim/pkg/lexsim/config"
	"github.com/cognicore/lexsim/pkg/lexsim/pairs"
	"github.com/cognicore/lexsim/pkg/lexsim/store"
	"github.com/cognicore/lexsim/pkg/lexsim/store/sqlite"
)

type report struct {
	RunID    string         `json:"run_id"`
	Corpus   string         `json:"corpus"`
	Units    int            `json:"units"`
	Terms    int            `json:"terms"`
	Metric   string         `json:"metric"`
	Linkage  string         `json:"linkage"`
	Mean     float64        `json:"mean"`
	Median   float64        `json:"median"`
	TopPairs []pairs.Record `json:"top_pairs"`
	Tree     *treeNode      `json:"dendrogram"`
}

type treeNode struct {
	Label    string      `json:"label,omitempty"`
	Height   float64     `json:"height"`
	Size     int         `json:"size"`
	Children []*treeNode `json:"children,omitempty"`
}

func main() {
	var (
		input   = flag.String("input", "", "Path to JSONL corpus file (required)")
		cfgPath = flag.String("config", "", "Optional: analysis config YAML")
		corpus  = flag.String("corpus", "corpus", "Corpus name for run records")
		dbPath  = flag.String("db", "", "Optional: SQLite database for run persistence")
		isHTML  = flag.Bool("html", false, "Strip HTML from document bodies")
		topK    = flag.Int("top", 10, "Number of top pairs to report")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadAnalysis(*cfgPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	ctx := context.Background()

	var st store.Store
	if *dbPath != "" {
		var err error
		if st, err = sqlite.Open(ctx, *dbPath); err != nil {
			log.Fatalf("open store: %v", err)
		}
	}

	items, err := corpusio.LoadFromJSONL(*input)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	engine := lexsim.New(lexsim.Options{Store: st, Config: cfg})
	defer engine.Close()

	res, err := engine.Analyze(ctx, *corpus, corpusio.Docs(items, *isHTML))
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	out := report{
		RunID:    res.RunID,
		Corpus:   *corpus,
		Units:    res.DFM.NumUnits(),
		Terms:    res.DFM.NumTerms(),
		Metric:   cfg.Metric,
		Linkage:  cfg.Linkage,
		Mean:     pairs.Mean(res.Pairs),
		Median:   pairs.Median(res.Pairs),
		TopPairs: pairs.TopK(res.Pairs, *topK),
		Tree:     toTree(res.Dendrogram.Root()),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode report: %v", err)
	}

	fmt.Fprintf(os.Stderr, "run %s: %d units, %d pairs\n", res.RunID, res.DFM.NumUnits(), len(res.Pairs))
}

func toTree(n *cluster.Node) *treeNode {
	if n == nil {
		return nil
	}
	t := &treeNode{
		Label:  n.Leaf,
		Height: n.Height,
		Size:   n.Size,
	}
	if !n.IsLeaf() {
		t.Children = []*treeNode{toTree(n.Left), toTree(n.Right)}
	}
	return t
}
