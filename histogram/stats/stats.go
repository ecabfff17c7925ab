package stats

import (
	"math"
	"sort"

	"skuld/histogram/freq"

	legacystat "github.com/gonum/stat"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ByteShare 单个字节值的计数与占比(百分比, 两位小数)
type ByteShare struct {
	Value   byte
	Count   uint32
	Percent decimal.Decimal
}

type Summary struct {
	Total    uint64  // 字节总数
	Distinct int     // 出现过的字节值个数
	Mean     float64 // 字节值加权均值
	StdDev   float64 // 字节值加权标准差
	Entropy  float64 // 香农熵, 单位 bit/byte, [0, 8]
	ChiSq    float64 // 相对均匀分布的卡方统计量
	PValue   float64 // 卡方检验 p 值, 越接近 1 越像随机字节
	Top      []ByteShare
}

// 字节值 0..255 作为样本, 计数作为权重
var byteValues = func() []float64 {
	v := make([]float64, freq.BUCKETS)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}()

// Summarize 对原始(未缩放)计数表做描述统计; 空表返回零值 Summary
func Summarize(t *freq.Table, topN int) Summary {
	s := Summary{Total: t.Total(), Distinct: t.Distinct()}
	if s.Total == 0 {
		return s
	}

	weights := make([]float64, freq.BUCKETS)
	for i, c := range t {
		weights[i] = float64(c)
	}

	s.Mean = legacystat.Mean(byteValues, weights)
	if s.Total > 1 {
		s.StdDev = stat.StdDev(byteValues, weights)
	}

	p := make([]float64, freq.BUCKETS)
	copy(p, weights)
	floats.Scale(1/floats.Sum(p), p)
	// stat.Entropy 返回 nat
	s.Entropy = stat.Entropy(p) / math.Ln2

	s.ChiSq, s.PValue = uniformity(weights, float64(s.Total))
	s.Top = TopN(t, topN)
	return s
}

// uniformity 卡方拟合优度检验, H0: 256 个字节值等概率
func uniformity(observed []float64, total float64) (chi2, pValue float64) {
	expected := total / freq.BUCKETS
	for _, o := range observed {
		d := o - expected
		chi2 += d * d / expected
	}
	dist := distuv.ChiSquared{K: freq.BUCKETS - 1}
	return chi2, dist.Survival(chi2)
}

// TopN 按计数降序取前 n 个非零字节值, 计数相同按字节值升序
func TopN(t *freq.Table, n int) []ByteShare {
	total := t.Total()
	if n <= 0 || total == 0 {
		return nil
	}
	shares := make([]ByteShare, 0, freq.BUCKETS)
	hundred := decimal.NewFromInt(100)
	denom := decimal.NewFromInt(int64(total))
	for i, c := range t {
		if c == 0 {
			continue
		}
		shares = append(shares, ByteShare{
			Value:   byte(i),
			Count:   c,
			Percent: decimal.NewFromInt(int64(c)).Mul(hundred).Div(denom).Round(2),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Count > shares[j].Count
	})
	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}
