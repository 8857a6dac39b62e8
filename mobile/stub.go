//go:build !mobile

// 非移动端构建的占位文件，实际入口在 mobile.go（-tags mobile）
package mobile

// Dummy 空导出函数
func Dummy() {}
