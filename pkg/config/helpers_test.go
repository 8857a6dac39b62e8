package config

import "testing/fstest"

// singleFileFS 构造只包含一个文件的内存文件系统
func singleFileFS(path string, data []byte) fstest.MapFS {
	return fstest.MapFS{path: &fstest.MapFile{Data: data}}
}
