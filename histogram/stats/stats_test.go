package stats

import (
	"math"
	"testing"

	"skuld/histogram/freq"
)

const eps = 1e-9

func TestSummarizeUniform(t *testing.T) {
	var counts freq.Table
	for i := range counts {
		counts[i] = 4
	}
	s := Summarize(&counts, 3)

	if s.Total != 1024 || s.Distinct != 256 {
		t.Fatalf("total=%d distinct=%d", s.Total, s.Distinct)
	}
	if math.Abs(s.Entropy-8) > eps {
		t.Errorf("entropy = %v, want 8", s.Entropy)
	}
	if math.Abs(s.Mean-127.5) > eps {
		t.Errorf("mean = %v, want 127.5", s.Mean)
	}
	if s.ChiSq != 0 || math.Abs(s.PValue-1) > eps {
		t.Errorf("chi2=%v p=%v", s.ChiSq, s.PValue)
	}
	if len(s.Top) != 3 || s.Top[0].Value != 0 || s.Top[2].Value != 2 {
		t.Errorf("ties must keep byte order: %+v", s.Top)
	}
}

func TestSummarizeSingleValue(t *testing.T) {
	var counts freq.Table
	counts['a'] = 10000
	s := Summarize(&counts, 10)

	if s.Entropy != 0 {
		t.Errorf("entropy = %v, want 0", s.Entropy)
	}
	if s.Mean != 'a' || math.Abs(s.StdDev) > eps {
		t.Errorf("mean=%v stddev=%v", s.Mean, s.StdDev)
	}
	if s.PValue > 1e-6 {
		t.Errorf("a constant stream should reject uniformity, p=%v", s.PValue)
	}
	if len(s.Top) != 1 || s.Top[0].Percent.String() != "100" {
		t.Errorf("top = %+v", s.Top)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	var counts freq.Table
	s := Summarize(&counts, 5)
	if s.Total != 0 || s.Entropy != 0 || s.Top != nil || math.IsNaN(s.Mean) {
		t.Fatalf("empty summary = %+v", s)
	}
}

func TestTopNFoobar(t *testing.T) {
	var counts freq.Table
	freq.CountBytes([]byte("foobar"), &counts)

	top := TopN(&counts, 3)
	want := []struct {
		v   byte
		c   uint32
		pct string
	}{
		{'o', 2, "33.33"},
		{'a', 1, "16.67"},
		{'b', 1, "16.67"},
	}
	if len(top) != len(want) {
		t.Fatalf("len = %d", len(top))
	}
	for i, w := range want {
		if top[i].Value != w.v || top[i].Count != w.c || top[i].Percent.String() != w.pct {
			t.Errorf("top[%d] = %c/%d/%s, want %c/%d/%s", i, top[i].Value, top[i].Count, top[i].Percent, w.v, w.c, w.pct)
		}
	}
	if TopN(&counts, 0) != nil {
		t.Error("n=0 returns nil")
	}
	if len(TopN(&counts, 100)) != 5 {
		t.Error("n larger than distinct returns every non-zero bucket")
	}
}
