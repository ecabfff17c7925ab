package acquire

import (
	"skuld/histogram/freq"
	"skuld/infra/log/staticLog"
)

// wastefulStrategy 每一遍都整读文件并保留全部副本, 读完 n 遍后才逐块计数;
// 内存随 n*size 增长, 用来演示资源透支, 不要提前释放或合并 buffers
type wastefulStrategy struct {
	meter *Meter
}

func (s *wastefulStrategy) Kind() Kind   { return KIND_LOAD_WASTEFUL }
func (s *wastefulStrategy) Stats() Stats { return s.meter.Stats() }

func (s *wastefulStrategy) Run(path string, n uint32, t *freq.Table) error {
	if _, err := statRegular(path); err != nil {
		return err
	}

	buffers := make([][]byte, 0, n)
	for pass := uint32(0); pass < n; pass++ {
		data, err := loadFile(path, s.meter)
		if err != nil {
			return err
		}
		buffers = append(buffers, data)
		s.meter.retain(len(data))
		staticLog.Log.Debugf("load-wasteful holds %d buffers of %s", len(buffers), path)
	}

	for _, data := range buffers {
		freq.CountBytes(data, t)
		s.meter.counted(len(data))
		s.meter.pass()
	}
	for _, data := range buffers {
		s.meter.release(len(data))
	}
	return nil
}
