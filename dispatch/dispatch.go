package dispatch

import (
	"io"
	"strings"
	"time"

	"skuld/acquire"
	"skuld/histogram/bins"
	"skuld/histogram/freq"
	"skuld/histogram/render"
	"skuld/histogram/report"
	"skuld/histogram/stats"
	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"
	"skuld/infra/log/staticLog"
	"skuld/infra/sysinfo"

	"github.com/sirupsen/logrus"
)

// Request 一次运行的输入, 运行期间不变
type Request struct {
	Strategy acquire.Kind
	Path     string
	Repeat   uint32
}

type Format int

const (
	FORMAT_TEXT Format = iota
	FORMAT_JSON
)

func (f Format) String() string {
	switch f {
	case FORMAT_JSON:
		return "json"
	default:
		return "text"
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FORMAT_TEXT, nil
	case "json":
		return FORMAT_JSON, nil
	default:
		return FORMAT_TEXT, errorx.Newf(errCode.INVALID_VALUE, "unknown format %q, expected text or json", s)
	}
}

// WidthFunc 终端列数, 由外部探测
type WidthFunc func() int

type Dispatcher struct {
	Width       WidthFunc
	Out         io.Writer
	Format      Format
	ChunkSize   int
	Marker      string
	LabelMargin int
	TopN        int
	ShowStats   bool
	Bins        int // >0 时文本输出改为 Bins 个等宽分箱
}

type Result struct {
	Raw      freq.Table
	Scaled   freq.Table
	Width    uint32
	Resource acquire.Stats
	Summary  stats.Summary
	Elapsed  time.Duration
	MaxRSS   uint64
	Bins     []bins.Bin
}

// Run 选策略、计数、缩放、输出; 策略出错时直接返回, 不输出任何内容
func (d *Dispatcher) Run(req Request) (*Result, error) {
	strategy, err := acquire.New(req.Strategy, acquire.WithChunkSize(d.ChunkSize))
	if err != nil {
		return nil, err
	}
	if d.Bins != 0 {
		// 先校验分箱数, 避免读完文件才报参数错误
		if _, err := bins.Coarsen(&freq.Table{}, d.Bins); err != nil {
			return nil, err
		}
	}

	res := &Result{}
	start := time.Now()
	if err := strategy.Run(req.Path, req.Repeat, &res.Raw); err != nil {
		staticLog.Log.WithFields(logrus.Fields{
			"strategy": req.Strategy.String(),
			"path":     req.Path,
			"code":     errorx.CodeOf(err).String(),
		}).Error("acquisition failed")
		return nil, err
	}
	res.Elapsed = time.Since(start)
	res.Resource = strategy.Stats()
	if rss, ok := sysinfo.MaxRSS(); ok {
		res.MaxRSS = rss
	}

	res.Width = BarWidth(d.terminalWidth(), d.LabelMargin)
	res.Scaled = freq.FitToWidth(&res.Raw, res.Width)
	res.Summary = stats.Summarize(&res.Raw, d.TopN)

	staticLog.Log.WithFields(logrus.Fields{
		"strategy":      req.Strategy.String(),
		"path":          req.Path,
		"repeat":        req.Repeat,
		"elapsed":       res.Elapsed.String(),
		"opens":         res.Resource.Opens,
		"reads":         res.Resource.Reads,
		"bytes_read":    sysinfo.FormatBytes(res.Resource.BytesRead),
		"bytes_counted": sysinfo.FormatBytes(res.Resource.BytesCounted),
		"peak_buffers":  sysinfo.FormatBytes(res.Resource.PeakRetained),
		"max_rss":       sysinfo.FormatBytes(res.MaxRSS),
	}).Info("resource profile")

	if err := d.emit(req, res); err != nil {
		return res, err
	}
	return res, nil
}

func (d *Dispatcher) terminalWidth() int {
	if d.Width == nil {
		return sysinfo.TermWidth(80)
	}
	return d.Width()
}

// BarWidth 终端宽度扣掉标签列; 过窄时至少保留 1 列, 保证条形长度非负
func BarWidth(termWidth, labelMargin int) uint32 {
	w := termWidth - labelMargin
	if w < 1 {
		return 1
	}
	return uint32(w)
}

func (d *Dispatcher) emit(req Request, res *Result) error {
	out := d.Out
	if out == nil {
		return nil
	}
	switch d.Format {
	case FORMAT_JSON:
		r := report.Build(report.Input{
			Strategy: req.Strategy,
			Path:     req.Path,
			Repeat:   req.Repeat,
			Width:    res.Width,
			Elapsed:  res.Elapsed,
			MaxRSS:   res.MaxRSS,
			Resource: res.Resource,
			Raw:      &res.Raw,
			Scaled:   &res.Scaled,
			Summary:  res.Summary,
		})
		_, err := r.WriteTo(out)
		return err
	default:
		if err := d.renderText(out, res); err != nil {
			return err
		}
		if d.ShowStats {
			return writeSummary(out, res)
		}
		return nil
	}
}

func (d *Dispatcher) renderText(out io.Writer, res *Result) error {
	if d.Bins == 0 {
		return render.Render(out, &res.Scaled, render.WithMarker(d.Marker))
	}
	var err error
	if res.Bins, err = bins.Coarsen(&res.Raw, d.Bins); err != nil {
		return err
	}
	width := BarWidth(d.terminalWidth(), render.BinLabelMargin())
	return render.RenderBins(out, res.Bins, bins.FitToWidth(res.Bins, width), render.WithMarker(d.Marker))
}
