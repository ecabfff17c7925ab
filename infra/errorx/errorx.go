package errorx

import (
	"errors"
	"fmt"

	"skuld/infra/errorx/errCode"
)

// Error 带错误码的错误, cause 可为空
type Error struct {
	Code  errCode.ErrCode
	Msg   string
	cause error
}

func New(code errCode.ErrCode, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func Newf(code errCode.ErrCode, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap 保留底层错误, errors.Is/As 可以穿透
func Wrap(code errCode.ErrCode, err error, msg string) *Error {
	return &Error{Code: code, Msg: msg, cause: err}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Msg, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf 取链路上第一个 *Error 的错误码, 非 errorx 错误返回 UNKNOWN
func CodeOf(err error) errCode.ErrCode {
	if err == nil {
		return errCode.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.UNKNOWN
}

func Is(err error, code errCode.ErrCode) bool {
	return err != nil && CodeOf(err) == code
}
