package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"skuld/histogram/bins"
	"skuld/histogram/freq"
)

const (
	DEFAULT_MARKER      = "#"
	DEFAULT_LABEL_WIDTH = 3 // 0..255
)

type options struct {
	marker     string
	labelWidth int
}

type Option func(*options)

func WithMarker(m string) Option {
	return func(o *options) {
		if m != "" {
			o.marker = m
		}
	}
}

func WithLabelWidth(w int) Option {
	return func(o *options) {
		if w > 0 {
			o.labelWidth = w
		}
	}
}

// LabelMargin 每行标签占用的列数, 即 "%3d: "
func LabelMargin(opts ...Option) int {
	o := resolve(opts)
	return o.labelWidth + len(": ")
}

func resolve(opts []Option) options {
	o := options{marker: DEFAULT_MARKER, labelWidth: DEFAULT_LABEL_WIDTH}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render 按字节值升序, 每个非零桶输出一行 "  i: ####"
// TODO: 可打印字符在标签后附带字形, 例如 " 97 'a': ###"
func Render(w io.Writer, t *freq.Table, opts ...Option) error {
	o := resolve(opts)
	bw := bufio.NewWriter(w)
	seen := t.Seen()
	for i, ok := seen.NextSet(0); ok; i, ok = seen.NextSet(i + 1) {
		if _, err := fmt.Fprintf(bw, "%*d: %s\n", o.labelWidth, i, strings.Repeat(o.marker, int(t[i]))); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// BinLabelMargin 分箱标签 "%3d-%3d: " 占用的列数
func BinLabelMargin(opts ...Option) int {
	o := resolve(opts)
	return 2*o.labelWidth + len("-: ")
}

// RenderBins 输出分箱直方图, scaled 与 bs 一一对应; 零宽分箱不输出
func RenderBins(w io.Writer, bs []bins.Bin, scaled []uint32, opts ...Option) error {
	o := resolve(opts)
	bw := bufio.NewWriter(w)
	for i, b := range bs {
		if i >= len(scaled) || scaled[i] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%*d-%*d: %s\n", o.labelWidth, b.From, o.labelWidth, b.To, strings.Repeat(o.marker, int(scaled[i]))); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Print 写到标准输出
func Print(t *freq.Table, opts ...Option) {
	_ = Render(os.Stdout, t, opts...)
}
