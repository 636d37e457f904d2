package corpusio

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/lexsim/pkg/lexsim/ingest"
)

// Item represents one document line of a JSONL corpus file
type Item struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Outlet string `json:"outlet"`
	Topic  string `json:"topic"`
	Body   string `json:"text"`
}

// LoadFromJSONL loads items from a JSONL file with proper error handling
func LoadFromJSONL(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []Item
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}

	return items, nil
}

// Docs converts loaded items into ingest documents. When stripHTML is set,
// bodies are run through the HTML text extractor first.
func Docs(items []Item, stripHTML bool) []ingest.Doc {
	docs := make([]ingest.Doc, 0, len(items))
	for _, item := range items {
		body := item.Body
		if stripHTML {
			body = ingest.StripHTML(body)
		}
		docs = append(docs, ingest.Doc{
			ID:     item.ID,
			Title:  item.Title,
			Outlet: item.Outlet,
			Topic:  item.Topic,
			Body:   body,
		})
	}
	return docs
}
