// Package data 打包游戏的静态数据（关卡脚本、资源清单、链接 CSV）
//
// 数据文件与本文件放在同一目录，因为 //go:embed 只能嵌入当前包目录及其子目录的文件。
// 运行时通过 pkg/embedded 访问，路径以 "data/" 开头。
package data

import "embed"

// FS 嵌入的数据文件系统
//
//go:embed levels config links.csv
var FS embed.FS
