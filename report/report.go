// Package report formats delta E results for people and for programs.
package report

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/flosch/pongo2"
	"github.com/mitchellh/go-homedir"

	"github.com/mmuldo/deltae/deltae"
)

// Kinds of report.
const (
	KindColors   = "colors"
	KindImages   = "images"
	KindQuantize = "quantize"
)

const defaultTemplate = `{% if has_stats %}{% for input in inputs %}{{ input }}
{% endfor %}size = {{ width }}x{{ height }}
Average dE = {{ mean|floatformat:4 }}
Min dE = {{ min|floatformat:4 }}
Max dE = {{ max|floatformat:4 }}
{% if map %}map = {{ map }}
{% endif %}{% else %}dE = {{ delta_e|floatformat:4 }}
{% endif %}{% for entry in palette %}{{ entry.Hex }} {{ entry.Count }}
{% endfor %}`

// Number is a float64 that encodes NaN and infinities as JSON null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// PaletteEntry is one colour of a quantized image.
type PaletteEntry struct {
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// Stats summarizes a delta E map.
type Stats struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Mean   Number `json:"mean"`
	Min    Number `json:"min"`
	Max    Number `json:"max"`
}

// Report describes one comparison. Stats is nil for a pair of colours.
type Report struct {
	Kind     string         `json:"kind"`
	Inputs   []string       `json:"inputs"`
	DeltaE   Number         `json:"deltaE"`
	MaxCount float64        `json:"maxCount"`
	Stats    *Stats         `json:"stats,omitempty"`
	Map      string         `json:"map,omitempty"`
	Palette  []PaletteEntry `json:"palette,omitempty"`
}

// FromResult builds a report for r. DeltaE holds the scalar for colour
// pairs and the mean for images.
func FromResult(r deltae.Result, inputs []string, maxCount float64) *Report {
	rep := &Report{
		Kind:     KindColors,
		Inputs:   inputs,
		DeltaE:   Number(r.Average()),
		MaxCount: maxCount,
	}

	if d, ok := r.(*deltae.ImageDiff); ok {
		rep.Kind = KindImages
		rep.Stats = &Stats{
			Height: d.Map.Height,
			Width:  d.Map.Width,
			Mean:   Number(d.Mean),
			Min:    Number(d.Map.Min()),
			Max:    Number(d.Map.Max()),
		}
	}

	return rep
}

// Render executes the pongo2 template at templatePath, or the built-in
// template when templatePath is empty, and writes the output to w.
func Render(w io.Writer, r *Report, templatePath string) error {
	var (
		tpl *pongo2.Template
		e   error
	)
	if templatePath == "" {
		tpl, e = pongo2.FromString(defaultTemplate)
	} else {
		p, err := homedir.Expand(templatePath)
		if err != nil {
			return fmt.Errorf("expand %s: %w", templatePath, err)
		}
		tpl, e = pongo2.FromFile(p)
	}
	if e != nil {
		return fmt.Errorf("parse template: %w", e)
	}

	o, e := tpl.Execute(r.context())
	if e != nil {
		return fmt.Errorf("render template: %w", e)
	}

	_, e = io.WriteString(w, o)
	return e
}

// WriteJSON writes r to w as a single JSON object. Undefined statistics,
// such as the mean of an empty map, are written as null.
func WriteJSON(w io.Writer, r *Report) error {
	return json.NewEncoder(w).Encode(r)
}

func (r *Report) context() pongo2.Context {
	ctxt := pongo2.Context{
		"kind":      r.Kind,
		"inputs":    r.Inputs,
		"delta_e":   float64(r.DeltaE),
		"max_count": r.MaxCount,
		"map":       r.Map,
		"palette":   r.Palette,
		"has_stats": r.Stats != nil,
	}
	if s := r.Stats; s != nil {
		ctxt["height"] = s.Height
		ctxt["width"] = s.Width
		ctxt["mean"] = float64(s.Mean)
		ctxt["min"] = float64(s.Min)
		ctxt["max"] = float64(s.Max)
	}
	setDefaults(ctxt)
	return ctxt
}

func setDefaults(ctxt pongo2.Context) {
	if ctxt["kind"] == "" {
		ctxt["kind"] = KindColors
	}

	if p, ok := ctxt["palette"].([]PaletteEntry); !ok || p == nil {
		ctxt["palette"] = []PaletteEntry{}
	}
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", byte(r>>8), byte(g>>8), byte(b>>8))
}
