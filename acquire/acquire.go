// Package acquire implements the interchangeable procedures that read a file
// and feed its bytes to the counter. Every strategy performs exactly n
// effective read-and-count passes; they differ only in how much they read
// from disk and how much they hold in memory while doing it.
//
//	scan           chunked reads into one reusable buffer   mem O(chunk)      io O(size*n)
//	load           whole file per pass, buffer dropped      mem O(size)       io O(size*n)
//	load-once      whole file once, counted n times         mem O(size)       io O(size)
//	load-wasteful  whole file per pass, every buffer kept   mem O(size*n)     io O(size*n)
package acquire

import (
	"fmt"
	"strings"

	"skuld/histogram/freq"
	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"
)

type Kind int

const (
	KIND_SCAN Kind = iota
	KIND_LOAD
	KIND_LOAD_ONCE
	KIND_LOAD_WASTEFUL
)

const DEFAULT_CHUNK_SIZE = 512

func (k Kind) String() string {
	switch k {
	case KIND_SCAN:
		return "scan"
	case KIND_LOAD:
		return "load"
	case KIND_LOAD_ONCE:
		return "load-once"
	case KIND_LOAD_WASTEFUL:
		return "load-wasteful"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Description 子命令帮助用的一句话说明
func (k Kind) Description() string {
	switch k {
	case KIND_SCAN:
		return "Scan the file in fixed-size chunks without loading all of it at once"
	case KIND_LOAD:
		return "Load the whole file into memory on every pass and process it there"
	case KIND_LOAD_ONCE:
		return "Load the file into memory once and process that buffer on every pass"
	case KIND_LOAD_WASTEFUL:
		return "Load the file on every pass and keep every copy in memory until the end"
	default:
		return ""
	}
}

func Kinds() []Kind {
	return []Kind{KIND_SCAN, KIND_LOAD, KIND_LOAD_ONCE, KIND_LOAD_WASTEFUL}
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, errorx.Newf(errCode.INVALID_VALUE, "unknown strategy %q", s)
}

// Strategy 所有实现满足同一契约, 调度方不关心具体策略
type Strategy interface {
	Kind() Kind
	// Run 对 path 做 n 次完整的读取+计数, 累加进 t; 出错后 t 的内容无意义
	Run(path string, n uint32, t *freq.Table) error
	Stats() Stats
}

type config struct {
	chunkSize int
}

type Option func(*config)

// WithChunkSize 只影响 scan; 非正数保持默认
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

func New(kind Kind, opts ...Option) (Strategy, error) {
	cfg := config{chunkSize: DEFAULT_CHUNK_SIZE}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch kind {
	case KIND_SCAN:
		return &scanStrategy{chunkSize: cfg.chunkSize, meter: &Meter{}}, nil
	case KIND_LOAD:
		return &loadStrategy{meter: &Meter{}}, nil
	case KIND_LOAD_ONCE:
		return &loadOnceStrategy{meter: &Meter{}}, nil
	case KIND_LOAD_WASTEFUL:
		return &wastefulStrategy{meter: &Meter{}}, nil
	default:
		return nil, errorx.Newf(errCode.INVALID_VALUE, "unknown strategy %s", kind)
	}
}
