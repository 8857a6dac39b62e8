//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 gdata 的存储目录存在
// Android 上 gdata 写入 /data/data/{package}/，但不会创建子目录
func EnsureStorageDir() error {
	dir := StoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}
	if err := os.MkdirAll(filepath.Join(dir, "settings"), 0755); err != nil {
		return fmt.Errorf("failed to create storage dir under %s: %w", dir, err)
	}
	return nil
}

// StoragePath 返回应用私有目录，无法识别包名时返回空字符串
func StoragePath() string {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一段是包名
	name, _, _ := bytes.Cut(cmdline, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(name))
}
