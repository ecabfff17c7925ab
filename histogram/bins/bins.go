package bins

import (
	"math/bits"

	"skuld/histogram/freq"
	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"
)

// Bin 每个分箱的结构, 字节值闭区间 [From, To]
type Bin struct {
	From  byte
	To    byte
	Count uint64
}

// Coarsen 把 256 个桶合并成 n 个等宽分箱, n 须整除 256 (1,2,4,...,256)
func Coarsen(t *freq.Table, n int) ([]Bin, error) {
	if n <= 0 || n > freq.BUCKETS || freq.BUCKETS%n != 0 {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "bins must divide %d, got %d", freq.BUCKETS, n)
	}

	width := freq.BUCKETS / n
	result := make([]Bin, n)
	for i := 0; i < n; i++ {
		result[i] = Bin{
			From: byte(i * width),
			To:   byte((i+1)*width - 1),
		}
	}

	for v, c := range t {
		result[v/width].Count += uint64(c)
	}
	return result, nil
}

// FitToWidth 与 freq.FitToWidth 相同的规则: 最大值为 0 时全零, 否则 floor(c*width/M)
func FitToWidth(bs []Bin, width uint32) []uint32 {
	out := make([]uint32, len(bs))
	var m uint64
	for _, b := range bs {
		if b.Count > m {
			m = b.Count
		}
	}
	if m == 0 {
		return out
	}
	for i, b := range bs {
		out[i] = uint32(mulDiv(b.Count, uint64(width), m))
	}
	return out
}

// mulDiv 计算 floor(a*b/c), 分箱合计可到 2^40, a*b 用 128 位中间值
// 要求 a <= c, 此时商 <= b, bits.Div64 不会 panic
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, c)
	return q
}
