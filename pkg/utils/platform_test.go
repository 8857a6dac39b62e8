//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 桌面端默认不是移动端
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 环境变量强制移动模式
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulation is enabled")
	}
}

// TestEnsureStorageDir_Desktop 桌面端无需创建目录
func TestEnsureStorageDir_Desktop(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Errorf("EnsureStorageDir() error: %v", err)
	}
	if StoragePath() != "" {
		t.Errorf("StoragePath() = %q, want empty", StoragePath())
	}
}
