//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端行为运行（调试用）
const MobileEmulateEnv = "TRANSITIONS_MOBILE_EMULATE"

// IsMobile 是否运行在移动设备上
// 移动端不设置窗口尺寸和全屏
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
