package dispatch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"skuld/infra/sysinfo"
)

// writeSummary 直方图之后的统计摘要, 空表只输出总数
func writeSummary(w io.Writer, res *Result) error {
	s := res.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "\ntotal %d bytes, %d distinct values\n", s.Total, s.Distinct)
	if s.Total > 0 {
		fmt.Fprintf(&b, "mean %.2f, stddev %.2f, entropy %.4f bits/byte\n", s.Mean, s.StdDev, s.Entropy)
		fmt.Fprintf(&b, "chi-square %.2f, p=%.4f\n", s.ChiSq, s.PValue)
		for _, sh := range s.Top {
			fmt.Fprintf(&b, "%3d %-6s %10d %6s%%\n", sh.Value, glyph(sh.Value), sh.Count, sh.Percent.StringFixed(2))
		}
	}
	r := res.Resource
	fmt.Fprintf(&b, "passes %d, opens %d, reads %d, read %s, peak buffers %s, elapsed %s\n",
		r.Passes, r.Opens, r.Reads, sysinfo.FormatBytes(r.BytesRead), sysinfo.FormatBytes(r.PeakRetained), res.Elapsed)
	_, err := io.WriteString(w, b.String())
	return err
}

func glyph(v byte) string {
	if v >= 0x20 && v < 0x7f {
		return "'" + string(rune(v)) + "'"
	}
	return strconv.Quote(string(rune(v)))
}
