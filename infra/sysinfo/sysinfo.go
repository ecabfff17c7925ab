// Package sysinfo probes the terminal and the process for the values the
// dispatcher needs: display width and resident memory.
package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// TermWidth 依次尝试 ioctl(stdout)、$COLUMNS, 都失败时返回 fallback
func TermWidth(fallback int) int {
	if w, ok := ttyWidth(int(os.Stdout.Fd())); ok {
		return w
	}
	if w, ok := columnsEnv(os.Getenv("COLUMNS")); ok {
		return w
	}
	return fallback
}

func columnsEnv(v string) (int, bool) {
	w, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// MaxRSS 进程峰值常驻内存(字节), 平台不支持时 ok=false
func MaxRSS() (uint64, bool) {
	return maxRSS()
}

func FormatBytes(b uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case b >= GB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
