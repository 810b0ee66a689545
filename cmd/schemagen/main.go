package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"septago-crossword/widget/internal/net/proto"
	"septago-crossword/widget/internal/puzzle"
)

// schemagen emits the JSON schemas for the host-to-widget snapshot, the
// widget-to-host event, and the puzzle document format.
func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "output directory for the JSON schemas")
	flag.Parse()

	if outDir == "" {
		log.Fatal("schemagen: missing -out directory")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("schemagen: create output dir: %v", err)
	}

	targets := []struct {
		filename    string
		title       string
		description string
		value       any
	}{
		{
			filename:    "snapshot.schema.json",
			title:       "Grid Snapshot",
			description: "Authoritative host-to-widget grid snapshot (" + proto.SchemaSnapshot + ").",
			value:       proto.Snapshot{},
		},
		{
			filename:    "event.schema.json",
			title:       "Widget Event",
			description: "Widget-to-host user interaction event (" + proto.SchemaEvent + ").",
			value:       proto.OutboundEvent{},
		},
		{
			filename:    "puzzle.schema.json",
			title:       "Puzzle Document",
			description: "Persisted puzzle file format (" + puzzle.SchemaVersion + ").",
			value:       puzzle.Document{},
		},
	}

	for _, target := range targets {
		if err := writeSchema(outDir, target.filename, target.title, target.description, target.value); err != nil {
			log.Fatalf("schemagen: %v", err)
		}
	}
}

func writeSchema(outDir, filename, title, description string, value any) error {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.ReflectFromType(reflect.TypeOf(value))
	if schema == nil {
		return fmt.Errorf("failed to reflect schema for %s", filename)
	}
	schema.Title = title
	schema.Description = description

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(outDir, filename), data, 0o644)
}
