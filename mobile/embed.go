//go:build mobile

// 移动端构建前需要把仓库根目录的 data/ 复制到本目录：
//
//	cp -r ../data ./data
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/transitions.yaml
var dataFS embed.FS
