// Package export saves bounding boxes produced by layout and marks them on the
// canvas for visual verification.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"repmark/layout"
)

type SideBox struct {
	Text string      `json:"text"`
	BBox layout.BBox `json:"bbox"`
}

type EndBox struct {
	Text   string      `json:"text"`
	Top    layout.BBox `json:"bbox_top"`
	Bottom layout.BBox `json:"bbox_bottom"`
}

// Record is exported form of a page layout. Entries keep layout order.
type Record struct {
	Side []SideBox `json:"side"`
	End  []EndBox  `json:"end"`
}

func NewRecord(side []layout.SideResult, end []layout.EndResult) *Record {
	r := &Record{
		Side: make([]SideBox, 0, len(side)),
		End:  make([]EndBox, 0, len(end)),
	}
	for _, s := range side {
		r.Side = append(r.Side, SideBox{Text: s.Text, BBox: s.BBox})
	}
	for _, e := range end {
		r.End = append(r.End, EndBox{Text: e.Text, Top: e.Top, Bottom: e.Bottom})
	}
	return r
}

// LoadRecord reads record previously written by WriteJSON.
func LoadRecord(r io.Reader) (*Record, error) {
	rec := &Record{}
	if err := json.NewDecoder(r).Decode(rec); err != nil {
		return nil, fmt.Errorf("unable to decode bounding boxes: %w", err)
	}
	return rec, nil
}

func (r *Record) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// SideLines returns human readable description of side boxes, one per box.
func (r *Record) SideLines() []string {
	lines := make([]string, 0, len(r.Side))
	for _, s := range r.Side {
		lines = append(lines, fmt.Sprintf("[SIDE] %10s  bbox=%s", s.Text, s.BBox))
	}
	return lines
}

// EndLines returns human readable description of end boxes, one per entry.
// Entries which were not split are listed with a single box.
func (r *Record) EndLines() []string {
	lines := make([]string, 0, len(r.End))
	for _, e := range r.End {
		if e.Top == e.Bottom {
			lines = append(lines, fmt.Sprintf("[END ] %10s  bbox=%s", e.Text, e.Top))
		} else {
			lines = append(lines, fmt.Sprintf("[END ] %10s  top=%s  bottom=%s", e.Text, e.Top, e.Bottom))
		}
	}
	return lines
}

func (r *Record) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "=== SIDE LINES BOUNDARIES ===")
	for _, l := range r.SideLines() {
		fmt.Fprintln(bw, l)
	}
	fmt.Fprintln(bw, "\n=== END LINES BOUNDARIES ===")
	for _, l := range r.EndLines() {
		fmt.Fprintln(bw, l)
	}
	return bw.Flush()
}

// Paths returns names of text and JSON files for base name.
func Paths(base string) (txt, js string) {
	return base + "_bboxes.txt", base + "_bboxes.json"
}

// Save writes both text and JSON forms next to each other. Each file is fully
// written and closed before the next one is created.
func (r *Record) Save(base string) error {
	txt, js := Paths(base)
	if err := os.MkdirAll(filepath.Dir(txt), 0755); err != nil {
		return fmt.Errorf("unable to create directory for bounding boxes: %w", err)
	}
	if err := writeFile(txt, r.WriteText); err != nil {
		return err
	}
	return writeFile(js, r.WriteJSON)
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create '%s': %w", name, err)
	}
	defer func() {
		if er := f.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close '%s': %w", name, er))
		}
	}()
	if err = write(f); err != nil {
		return fmt.Errorf("unable to write '%s': %w", name, err)
	}
	return nil
}
