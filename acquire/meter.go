package acquire

import "io"

// Stats 一次 Run 的资源画像
type Stats struct {
	Passes        uint32 `json:"passes"`
	Opens         uint64 `json:"opens"`
	Seeks         uint64 `json:"seeks"`
	Reads         uint64 `json:"reads"`          // 底层 Read 调用次数
	BytesRead     uint64 `json:"bytes_read"`     // 从磁盘读入的字节
	BytesCounted  uint64 `json:"bytes_counted"`  // 送进计数器的字节
	PeakRetained  uint64 `json:"peak_retained"`  // 同时持有的缓冲区峰值
	RetainedBytes uint64 `json:"retained_bytes"` // 结束时仍持有的缓冲区
}

type Meter struct {
	s Stats
}

func (m *Meter) Stats() Stats {
	return m.s
}

func (m *Meter) open() { m.s.Opens++ }

func (m *Meter) seek() { m.s.Seeks++ }

func (m *Meter) pass() { m.s.Passes++ }

func (m *Meter) counted(n int) { m.s.BytesCounted += uint64(n) }

func (m *Meter) retain(n int) {
	m.s.RetainedBytes += uint64(n)
	if m.s.RetainedBytes > m.s.PeakRetained {
		m.s.PeakRetained = m.s.RetainedBytes
	}
}

func (m *Meter) release(n int) {
	if uint64(n) > m.s.RetainedBytes {
		m.s.RetainedBytes = 0
		return
	}
	m.s.RetainedBytes -= uint64(n)
}

// meteredReader 记录每一次底层 Read
type meteredReader struct {
	r io.Reader
	m *Meter
}

func (mr *meteredReader) Read(p []byte) (int, error) {
	n, err := mr.r.Read(p)
	mr.m.s.Reads++
	mr.m.s.BytesRead += uint64(n)
	return n, err
}
