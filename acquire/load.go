package acquire

import (
	"skuld/histogram/freq"
	"skuld/infra/log/staticLog"
)

// loadStrategy 每一遍重新整读文件, 计数后丢弃缓冲区
type loadStrategy struct {
	meter *Meter
}

func (s *loadStrategy) Kind() Kind   { return KIND_LOAD }
func (s *loadStrategy) Stats() Stats { return s.meter.Stats() }

func (s *loadStrategy) Run(path string, n uint32, t *freq.Table) error {
	if _, err := statRegular(path); err != nil {
		return err
	}
	for pass := uint32(0); pass < n; pass++ {
		data, err := loadFile(path, s.meter)
		if err != nil {
			return err
		}
		s.meter.retain(len(data))
		freq.CountBytes(data, t)
		s.meter.counted(len(data))
		s.meter.release(len(data))
		s.meter.pass()
		staticLog.Log.Debugf("load pass %d/%d of %s done, %d bytes", pass+1, n, path, len(data))
	}
	return nil
}

// loadOnceStrategy 只读一次, 同一块内存计数 n 遍
type loadOnceStrategy struct {
	meter *Meter
}

func (s *loadOnceStrategy) Kind() Kind   { return KIND_LOAD_ONCE }
func (s *loadOnceStrategy) Stats() Stats { return s.meter.Stats() }

func (s *loadOnceStrategy) Run(path string, n uint32, t *freq.Table) error {
	if _, err := statRegular(path); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	data, err := loadFile(path, s.meter)
	if err != nil {
		return err
	}
	s.meter.retain(len(data))
	defer s.meter.release(len(data))

	for pass := uint32(0); pass < n; pass++ {
		freq.CountBytes(data, t)
		s.meter.counted(len(data))
		s.meter.pass()
	}
	staticLog.Log.Debugf("load-once counted %s %d times from one %d byte read", path, n, len(data))
	return nil
}
