package freq

import (
	"bytes"
	"math"
	"testing"
)

func TestCountBytes(t *testing.T) {
	var counts Table
	CountBytes([]byte("foobar"), &counts)

	want := map[byte]uint32{'f': 1, 'o': 2, 'b': 1, 'a': 1, 'r': 1}
	for i, c := range counts {
		if c != want[byte(i)] {
			t.Errorf("counts[%q] = %d, want %d", byte(i), c, want[byte(i)])
		}
	}
	if counts.Total() != 6 || counts.Distinct() != 5 || counts.Max() != 2 {
		t.Errorf("total=%d distinct=%d max=%d", counts.Total(), counts.Distinct(), counts.Max())
	}
}

func TestCountBytesEmpty(t *testing.T) {
	var counts Table
	CountBytes(nil, &counts)
	CountBytes([]byte{}, &counts)
	if counts != (Table{}) {
		t.Fatal("empty input must not touch the table")
	}
}

func TestCountBytesPartialBuffer(t *testing.T) {
	buf := []byte("abcXXXX")
	var counts Table
	CountBytes(buf[:3], &counts)
	if counts['X'] != 0 {
		t.Fatalf("counted %d bytes past the valid length", counts['X'])
	}
	if counts.Total() != 3 {
		t.Fatalf("total = %d", counts.Total())
	}
}

// 分两次计数与拼接后一次计数结果相同
func TestCountBytesAdditive(t *testing.T) {
	pairs := [][2][]byte{
		{[]byte("foo"), []byte("bar")},
		{nil, []byte("x")},
		{[]byte{0, 255, 0}, nil},
		{bytes.Repeat([]byte{7}, 1000), []byte("\x00\x01\x02")},
	}
	for _, p := range pairs {
		var split, joined Table
		CountBytes(p[0], &split)
		CountBytes(p[1], &split)
		CountBytes(append(append([]byte{}, p[0]...), p[1]...), &joined)
		if split != joined {
			t.Errorf("additivity broken for %q + %q", p[0], p[1])
		}
	}
}

func TestCountBytesWraps(t *testing.T) {
	var counts Table
	counts['z'] = math.MaxUint32
	CountBytes([]byte("z"), &counts)
	if counts['z'] != 0 {
		t.Fatalf("expected wrap to 0, got %d", counts['z'])
	}
}

func TestFitToWidth(t *testing.T) {
	var counts Table
	CountBytes([]byte("foobar"), &counts)

	scaled := FitToWidth(&counts, 4)
	want := map[byte]uint32{'f': 2, 'o': 4, 'b': 2, 'a': 2, 'r': 2}
	for i, c := range scaled {
		if c != want[byte(i)] {
			t.Errorf("scaled[%q] = %d, want %d", byte(i), c, want[byte(i)])
		}
	}
	if counts['o'] != 2 {
		t.Error("FitToWidth must not modify its input")
	}
}

func TestFitToWidthZeroTable(t *testing.T) {
	var counts Table
	for _, w := range []uint32{0, 1, 80, math.MaxUint32} {
		if got := FitToWidth(&counts, w); got != (Table{}) {
			t.Errorf("width %d: expected all-zero table", w)
		}
	}
}

func TestFitToWidthBounds(t *testing.T) {
	var counts Table
	for i := range counts {
		counts[i] = uint32(i*i*37 + 1)
	}
	counts[200] = math.MaxUint32

	for _, w := range []uint32{1, 3, 75, 1000, math.MaxUint32} {
		scaled := FitToWidth(&counts, w)
		hit := false
		for i, c := range scaled {
			if c > w {
				t.Fatalf("width %d: bucket %d = %d out of range", w, i, c)
			}
			if c == w {
				hit = true
			}
		}
		if !hit || scaled[200] != w {
			t.Errorf("width %d: maximum bucket should equal width, got %d", w, scaled[200])
		}
	}
}

func TestFitToWidthFloors(t *testing.T) {
	var counts Table
	counts[1] = 3
	counts[2] = 2
	counts[3] = 1
	scaled := FitToWidth(&counts, 2)
	// 2*2/3 = 1.33 -> 1, 1*2/3 = 0.66 -> 0
	if scaled[1] != 2 || scaled[2] != 1 || scaled[3] != 0 {
		t.Fatalf("got %d %d %d", scaled[1], scaled[2], scaled[3])
	}
}

func TestSeen(t *testing.T) {
	var counts Table
	CountBytes([]byte{0, 9, 255, 9}, &counts)
	bs := counts.Seen()
	for _, i := range []uint{0, 9, 255} {
		if !bs.Test(i) {
			t.Errorf("bit %d should be set", i)
		}
	}
	if bs.Count() != 3 || bs.Test(1) {
		t.Errorf("unexpected set bits: %s", bs.String())
	}
}
