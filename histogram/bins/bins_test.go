package bins

import (
	"math"
	"testing"

	"skuld/histogram/freq"
	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"
)

func TestCoarsen(t *testing.T) {
	var counts freq.Table
	freq.CountBytes([]byte("AZaz09\x00\xff"), &counts)

	bs, err := Coarsen(&counts, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []Bin{
		{From: 0, To: 63, Count: 3},    // \x00 0 9
		{From: 64, To: 127, Count: 4},  // A Z a z
		{From: 128, To: 191, Count: 0},
		{From: 192, To: 255, Count: 1}, // \xff
	}
	for i := range want {
		if bs[i] != want[i] {
			t.Errorf("bin %d = %+v, want %+v", i, bs[i], want[i])
		}
	}

	one, _ := Coarsen(&counts, 1)
	if one[0].Count != 8 || one[0].From != 0 || one[0].To != 255 {
		t.Errorf("single bin = %+v", one[0])
	}
	all, _ := Coarsen(&counts, 256)
	if all['a'].Count != 1 || all['a'].From != 'a' || all['a'].To != 'a' {
		t.Errorf("identity binning = %+v", all['a'])
	}
}

func TestCoarsenInvalid(t *testing.T) {
	var counts freq.Table
	for _, n := range []int{-1, 0, 3, 100, 512} {
		if _, err := Coarsen(&counts, n); !errorx.Is(err, errCode.INVALID_VALUE) {
			t.Errorf("n=%d: expected INVALID_VALUE, got %v", n, err)
		}
	}
}

func TestFitToWidth(t *testing.T) {
	bs := []Bin{{Count: 0}, {Count: 5}, {Count: 10}}
	got := FitToWidth(bs, 4)
	if got[0] != 0 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("got %v", got)
	}
	for _, v := range FitToWidth([]Bin{{}, {}}, 80) {
		if v != 0 {
			t.Fatal("all-zero bins must scale to zero")
		}
	}
}

// 256 个满计数桶合并后超过 uint32, 缩放仍要精确
func TestFitToWidthLargeCounts(t *testing.T) {
	var counts freq.Table
	for i := range counts {
		counts[i] = math.MaxUint32
	}
	bs, _ := Coarsen(&counts, 2)
	got := FitToWidth(bs, math.MaxUint32)
	if got[0] != math.MaxUint32 || got[1] != math.MaxUint32 {
		t.Fatalf("got %v", got)
	}
}
