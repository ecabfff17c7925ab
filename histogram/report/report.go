// Package report renders a finished run as JSON for scripts that compare
// strategies side by side.
package report

import (
	"encoding/json"
	"io"
	"time"

	"skuld/acquire"
	"skuld/histogram/freq"
	"skuld/histogram/stats"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type Bucket struct {
	Value  byte   `json:"value"`
	Count  uint32 `json:"count"`
	Scaled uint32 `json:"scaled"`
}

type Share struct {
	Value   byte            `json:"value"`
	Count   uint32          `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

type Summary struct {
	Total    uint64  `json:"total"`
	Distinct int     `json:"distinct"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"stddev"`
	Entropy  float64 `json:"entropy_bits"`
	ChiSq    float64 `json:"chi_square"`
	PValue   float64 `json:"p_value"`
	Top      []Share `json:"top"`
}

type Report struct {
	Strategy  string        `json:"strategy"`
	Path      string        `json:"path"`
	Repeat    uint32        `json:"repeat"`
	Width     uint32        `json:"width"`
	ElapsedMs int64         `json:"elapsed_ms"`
	MaxRSS    uint64        `json:"max_rss,omitempty"`
	Resource  acquire.Stats `json:"resource"`
	Summary   Summary       `json:"summary"`
	Buckets   []Bucket      `json:"buckets"`
}

type Input struct {
	Strategy acquire.Kind
	Path     string
	Repeat   uint32
	Width    uint32
	Elapsed  time.Duration
	MaxRSS   uint64
	Resource acquire.Stats
	Raw      *freq.Table
	Scaled   *freq.Table
	Summary  stats.Summary
}

// Build 只收录非零桶
func Build(in Input) Report {
	r := Report{
		Strategy:  in.Strategy.String(),
		Path:      in.Path,
		Repeat:    in.Repeat,
		Width:     in.Width,
		ElapsedMs: in.Elapsed.Milliseconds(),
		MaxRSS:    in.MaxRSS,
		Resource:  in.Resource,
		Summary: Summary{
			Total:    in.Summary.Total,
			Distinct: in.Summary.Distinct,
			Mean:     in.Summary.Mean,
			StdDev:   in.Summary.StdDev,
			Entropy:  in.Summary.Entropy,
			ChiSq:    in.Summary.ChiSq,
			PValue:   in.Summary.PValue,
			Top:      make([]Share, 0, len(in.Summary.Top)),
		},
		Buckets: make([]Bucket, 0, in.Raw.Distinct()),
	}
	for _, s := range in.Summary.Top {
		r.Summary.Top = append(r.Summary.Top, Share{Value: s.Value, Count: s.Count, Percent: s.Percent})
	}
	for i, c := range in.Raw {
		if c == 0 {
			continue
		}
		r.Buckets = append(r.Buckets, Bucket{Value: byte(i), Count: c, Scaled: in.Scaled[i]})
	}
	return r
}

func (r Report) Marshal() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(b), nil
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	b, err := r.Marshal()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// Field 按 gjson 路径取值, 例如 "summary.entropy_bits" 或 "buckets.#(value==111).count"
func Field(doc []byte, path string) gjson.Result {
	return gjson.GetBytes(doc, path)
}
