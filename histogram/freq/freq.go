package freq

import "github.com/bits-and-blooms/bitset"

const BUCKETS = 256

// Table 字节值 -> 出现次数, 计数按 uint32 回绕, 不做饱和
type Table [BUCKETS]uint32

// CountBytes 对 data 中每个字节计数; 只传入有效长度 buf[:k]
func CountBytes(data []byte, t *Table) {
	for _, b := range data {
		t[b]++
	}
}

func (t *Table) Max() uint32 {
	var m uint32
	for _, c := range t {
		if c > m {
			m = c
		}
	}
	return m
}

// Total 用 uint64 累加, 避免 256 个桶相加溢出
func (t *Table) Total() uint64 {
	var s uint64
	for _, c := range t {
		s += uint64(c)
	}
	return s
}

// Seen 非零桶的位集合
func (t *Table) Seen() *bitset.BitSet {
	bs := bitset.New(BUCKETS)
	for i, c := range t {
		if c > 0 {
			bs.Set(uint(i))
		}
	}
	return bs
}

func (t *Table) Distinct() int {
	return int(t.Seen().Count())
}

// FitToWidth 按最大值等比缩放到 [0, width]; 全零表直接返回全零, 不做除法
func FitToWidth(t *Table, width uint32) Table {
	var out Table
	m := t.Max()
	if m == 0 {
		return out
	}
	// 先乘后除, 64 位中间值保证 c*width 不溢出
	for i, c := range t {
		out[i] = uint32(uint64(c) * uint64(width) / uint64(m))
	}
	return out
}
