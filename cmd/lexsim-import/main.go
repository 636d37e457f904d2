package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/cognicore/lexsim/internal/corpusio"
	"github.com/cognicore/lexsim/pkg/lexsim/dfm"
	"github.com/cognicore/lexsim/pkg/lexsim/ingest"
	"github.com/cognicore/lexsim/pkg/lexsim/store/sqlite"
)

func main() {
	var (
		input    = flag.String("input", "", "Path to JSONL corpus file (required)")
		dbPath   = flag.String("db", "", "SQLite database path (required)")
		corpus   = flag.String("corpus", "corpus", "Corpus name to import into")
		isHTML   = flag.Bool("html", false, "Strip HTML from document bodies")
		stopword = flag.String("stopwords", "", "Optional: space-separated stopword list")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	items, err := corpusio.LoadFromJSONL(*input)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	tok := ingest.NewTokenizer(strings.Fields(*stopword))

	imported := 0
	for _, doc := range corpusio.Docs(items, *isHTML) {
		if err := doc.Validate(); err != nil {
			log.Printf("Warning: skipping doc %q: %v", doc.ID, err)
			continue
		}
		u := dfm.UnitCounts{ID: doc.ID, Counts: tok.Counts(doc.Body)}
		if err := st.UpsertUnit(ctx, *corpus, u); err != nil {
			log.Fatalf("upsert %q: %v", doc.ID, err)
		}
		imported++
	}

	log.Printf("imported %d units into corpus %q", imported, *corpus)
}
