package render

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"repmark/config"
	"repmark/layout"
)

// readLinesCSV returns trimmed first column of every record. Empty values are
// skipped, leading UTF-8 BOM is dropped.
func readLinesCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var lines []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 {
			continue
		}
		if v := strings.TrimSpace(rec[0]); len(v) > 0 {
			lines = append(lines, v)
		}
	}
	return lines, nil
}

func readLinesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open lines source: %w", err)
	}
	defer f.Close()

	lines, err := readLinesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read lines from '%s': %w", path, err)
	}
	return lines, nil
}

// sideLines selects CSV source when one is configured.
func sideLines(cfg *config.SideConfig) ([]string, error) {
	if len(cfg.CSV) == 0 {
		return cfg.Lines, nil
	}
	return readLinesFile(cfg.CSV)
}

// endEntries selects CSV source when one is configured. Entries read from CSV
// never carry stacking preference.
func endEntries(cfg *config.EndConfig) ([]layout.Entry, error) {
	if len(cfg.CSV) == 0 {
		entries := make([]layout.Entry, 0, len(cfg.Lines))
		for _, l := range cfg.Lines {
			entries = append(entries, layout.Entry{Text: l.Value, Stacked: l.Stacked})
		}
		return entries, nil
	}

	lines, err := readLinesFile(cfg.CSV)
	if err != nil {
		return nil, err
	}
	entries := make([]layout.Entry, 0, len(lines))
	for _, l := range lines {
		entries = append(entries, layout.Entry{Text: l})
	}
	return entries, nil
}
