package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	widget "septago-crossword/widget"
)

// SchemaVersion identifies the persisted puzzle document format.
const SchemaVersion = "puzzlefile.v1"

// Meta carries the document header. Givens are the only gameplay-relevant
// prefill; entry initials are reference-only and never validated.
type Meta struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	Author       string  `json:"author"`
	Date         string  `json:"date"`
	Difficulty   string  `json:"difficulty"`
	Instructions string  `json:"instructions,omitempty"`
	Givens       []Given `json:"givens,omitempty"`
}

// Given prefills one cell with an immutable letter.
type Given struct {
	Cell   string `json:"cell"`
	Letter string `json:"letter"`
}

// Entry is one clue/answer pair keyed by slot id.
type Entry struct {
	Clue   string `json:"clue"`
	Answer string `json:"answer"`
	// Initial is an authoring aid; it carries no gameplay meaning.
	Initial string `json:"initial,omitempty"`
}

// Document is a loaded, validated puzzle file.
type Document struct {
	SchemaVersion string                  `json:"schema_version"`
	Meta          Meta                    `json:"meta"`
	Entries       map[widget.SlotID]Entry `json:"entries"`
	Filename      string                  `json:"-"`
}

// ValidationError reports a rejected puzzle document.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid puzzle: " + e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Load reads and validates a puzzle file against the given geometry.
func Load(path string, geo Geometry) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	doc, err := Parse(data, geo)
	if err != nil {
		return Document{}, err
	}
	doc.Filename = filepath.Base(path)
	return doc, nil
}

// Parse validates raw document bytes against the given geometry.
func Parse(data []byte, geo Geometry) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	if doc.SchemaVersion != SchemaVersion {
		return Document{}, validationErrorf("unsupported schema_version %q, expected %q", doc.SchemaVersion, SchemaVersion)
	}

	for _, sid := range geo.SlotOrder {
		entry, ok := doc.Entries[sid]
		if !ok {
			return Document{}, validationErrorf("missing required entry %q", sid)
		}
		if strings.TrimSpace(entry.Clue) == "" {
			return Document{}, validationErrorf("entry %q missing non-empty clue", sid)
		}
		answer := normalizeLetters(entry.Answer)
		if answer == "" {
			return Document{}, validationErrorf("entry %q missing non-empty answer", sid)
		}
		for _, ch := range answer {
			if ch < 'A' || ch > 'Z' {
				return Document{}, validationErrorf("entry %q answer contains invalid character %q", sid, ch)
			}
		}
		if len(answer) != geo.SlotLengths[sid] {
			return Document{}, validationErrorf("entry %q answer length %d != required %d", sid, len(answer), geo.SlotLengths[sid])
		}
		entry.Answer = answer
		doc.Entries[sid] = entry
	}

	// Intersecting answers must agree on shared cells, and every playable
	// cell must be covered by some entry.
	truth := make(map[widget.CellID]byte)
	for _, sid := range geo.SlotOrder {
		answer := doc.Entries[sid].Answer
		for i, cell := range geo.Slots[sid] {
			ch := answer[i]
			if existing, ok := truth[cell]; ok && existing != ch {
				return Document{}, validationErrorf("cross inconsistency at cell %s: %q vs %q implied by slot %q", cell, existing, ch, sid)
			}
			truth[cell] = ch
		}
	}
	for r := 0; r < geo.Size; r++ {
		for c := 0; c < geo.Size; c++ {
			if !geo.PlayableMask[r][c] {
				continue
			}
			if _, ok := truth[widget.MakeCellID(r, c)]; !ok {
				return Document{}, validationErrorf("playable cell %s not covered by any entry", widget.MakeCellID(r, c))
			}
		}
	}

	return doc, nil
}

func normalizeLetters(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TruthMap projects the document's answers onto cells.
func TruthMap(doc Document, geo Geometry) map[widget.CellID]string {
	truth := make(map[widget.CellID]string)
	for sid, entry := range doc.Entries {
		cells := geo.Slots[sid]
		for i, cell := range cells {
			if i < len(entry.Answer) {
				truth[cell] = string(entry.Answer[i])
			}
		}
	}
	return truth
}

// GivenLetters extracts the validated given-cell prefill: playable cells
// only, single letters only. Malformed items are skipped, not fatal.
func GivenLetters(doc Document, geo Geometry) map[widget.CellID]string {
	givens := make(map[widget.CellID]string)
	for _, given := range doc.Meta.Givens {
		cell := widget.CellID(strings.TrimSpace(given.Cell))
		if !geo.IsPlayable(cell) {
			continue
		}
		letter := normalizeLetters(given.Letter)
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			continue
		}
		givens[cell] = letter
	}
	return givens
}

// List scans a directory for puzzle files and returns their headers,
// sorted by filename. Unreadable or invalid files are skipped; Load
// reports the details when one is actually opened.
func List(dir string) []Meta {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	metas := make([]Meta, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		meta := doc.Meta
		if meta.ID == "" {
			meta.ID = strings.TrimSuffix(name, filepath.Ext(name))
		}
		if meta.Title == "" {
			meta.Title = meta.ID
		}
		metas = append(metas, meta)
	}
	return metas
}
