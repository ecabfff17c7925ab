package acquire

import (
	"bytes"
	"fmt"
	"os"

	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"
)

// statRegular 先 stat 再 open, 避免对 FIFO 调用 open 时阻塞
func statRegular(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, errorx.Wrap(errCode.OPEN_FAILED, err, fmt.Sprintf("could not open file `%s`", path))
	}
	if !fi.Mode().IsRegular() {
		return 0, errorx.Newf(errCode.NOT_REGULAR_FILE, "`%s` is not a regular file (%s)", path, fi.Mode().Type())
	}
	return fi.Size(), nil
}

func openRegular(path string, m *Meter) (*os.File, int64, error) {
	size, err := statRegular(path)
	if err != nil {
		return nil, 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errorx.Wrap(errCode.OPEN_FAILED, err, fmt.Sprintf("could not open file `%s`", path))
	}
	m.open()
	return f, size, nil
}

// loadFile 整个文件读入一块新分配的内存
func loadFile(path string, m *Meter) ([]byte, error) {
	f, size, err := openRegular(path, m)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 多留 MinRead, 让 ReadFrom 在文件大小不变时一次到位并读到 EOF
	buf := bytes.NewBuffer(make([]byte, 0, int(size)+bytes.MinRead))
	if _, err := buf.ReadFrom(&meteredReader{r: f, m: m}); err != nil {
		return nil, readError(path, err)
	}
	return buf.Bytes(), nil
}

func readError(path string, err error) error {
	return errorx.Wrap(errCode.READ_FAILED, err, fmt.Sprintf("could not read file `%s`", path))
}
