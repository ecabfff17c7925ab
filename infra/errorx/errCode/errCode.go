package errCode

type ErrCode int

const (
	OK ErrCode = iota
	INVALID_VALUE
	EMPTY_VALUE
	CONFIG_FAILED
	OPEN_FAILED      // 打开/stat 文件失败
	READ_FAILED      // 读取或 seek 失败
	NOT_REGULAR_FILE // 管道、目录等无法回绕的路径
	UNKNOWN
)

func (c ErrCode) String() string {
	switch c {
	case OK:
		return "OK"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case CONFIG_FAILED:
		return "CONFIG_FAILED"
	case OPEN_FAILED:
		return "OPEN_FAILED"
	case READ_FAILED:
		return "READ_FAILED"
	case NOT_REGULAR_FILE:
		return "NOT_REGULAR_FILE"
	default:
		return "UNKNOWN"
	}
}

// IsIO 是否属于路径相关的 I/O 错误
func (c ErrCode) IsIO() bool {
	return c == OPEN_FAILED || c == READ_FAILED || c == NOT_REGULAR_FILE
}
