//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

func ttyWidth(int) (int, bool) { return 0, false }

func maxRSS() (uint64, bool) { return 0, false }
