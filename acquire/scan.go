package acquire

import (
	"fmt"
	"io"

	"skuld/histogram/freq"
	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"
	"skuld/infra/log/staticLog"
)

// scanStrategy 只打开一次, 每一遍 seek 回文件头, 用同一块 chunk 缓冲区流式计数
type scanStrategy struct {
	chunkSize int
	meter     *Meter
}

func (s *scanStrategy) Kind() Kind   { return KIND_SCAN }
func (s *scanStrategy) Stats() Stats { return s.meter.Stats() }

func (s *scanStrategy) Run(path string, n uint32, t *freq.Table) error {
	f, _, err := openRegular(path, s.meter)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, s.chunkSize)
	s.meter.retain(len(buf))
	defer s.meter.release(len(buf))

	r := &meteredReader{r: f, m: s.meter}
	for pass := uint32(0); pass < n; pass++ {
		if pass > 0 {
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				return errorx.Wrap(errCode.READ_FAILED, err, fmt.Sprintf("could not rewind file `%s`", path))
			}
			s.meter.seek()
		}
		if err := scanPass(r, buf, t, s.meter); err != nil {
			return readError(path, err)
		}
		s.meter.pass()
		staticLog.Log.Debugf("scan pass %d/%d of %s done", pass+1, n, path)
	}
	return nil
}

// scanPass 读到短读(ErrUnexpectedEOF)或零字节读(EOF)即结束本遍
func scanPass(r io.Reader, buf []byte, t *freq.Table, m *Meter) error {
	for {
		k, err := io.ReadFull(r, buf)
		freq.CountBytes(buf[:k], t)
		m.counted(k)
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			return nil
		default:
			return err
		}
	}
}
