package acquire

import (
	"testing"

	"skuld/histogram/freq"
)

// ------------------- 同一个 256KB 文件, 每次 8 遍 -------------------
const (
	benchSize   = 256 << 10
	benchRepeat = 8
)

func benchStrategy(b *testing.B, k Kind, opts ...Option) {
	path := writeFile(b, sampleData(benchSize))
	b.ReportAllocs()
	b.SetBytes(benchSize * benchRepeat)
	b.ResetTimer()

	var st Stats
	for i := 0; i < b.N; i++ {
		var tbl freq.Table
		s, _ := New(k, opts...)
		if err := s.Run(path, benchRepeat, &tbl); err != nil {
			b.Fatal(err)
		}
		st = s.Stats()
	}
	b.ReportMetric(float64(st.BytesRead), "disk_bytes/op")
	b.ReportMetric(float64(st.PeakRetained), "peak_buf_bytes/op")
}

func BenchmarkScan(b *testing.B) {
	benchStrategy(b, KIND_SCAN)
}

func BenchmarkScan64K(b *testing.B) {
	benchStrategy(b, KIND_SCAN, WithChunkSize(64<<10))
}

func BenchmarkLoad(b *testing.B) {
	benchStrategy(b, KIND_LOAD)
}

func BenchmarkLoadOnce(b *testing.B) {
	benchStrategy(b, KIND_LOAD_ONCE)
}

func BenchmarkLoadWasteful(b *testing.B) {
	benchStrategy(b, KIND_LOAD_WASTEFUL)
}
