// Package embedded 提供嵌入数据的统一访问接口
//
// 数据文件（关卡脚本、资源清单、默认链接 CSV）由 data 包通过 //go:embed 打包，
// 本包只负责把 "data/..." 形式的路径映射到该文件系统上。
// 图片和音频不嵌入，由 ResourceManager 从资源目录按需读取。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问数据时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
//
// 参数：
//   - data: 以 data 目录为根的文件系统（data.FS 或测试用的 fstest.MapFS）
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 把 "data/levels/x.yaml" 转为文件系统内的 "levels/x.yaml"
func resolve(path string) (string, error) {
	if !initialized {
		return "", ErrNotInitialized
	}

	// 标准化路径分隔符为正斜杠（fs.FS 使用正斜杠）
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	if !strings.HasPrefix(path, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", path, dataPrefix)
	}
	rel := strings.TrimPrefix(path, dataPrefix)
	if rel == "" {
		rel = "."
	}
	return rel, nil
}

// Open 打开嵌入的数据文件
// 路径必须以 "data/" 开头
func Open(path string) (fs.File, error) {
	rel, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(rel)
}

// ReadFile 读取嵌入的数据文件内容
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	rel, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, rel)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// ReadDir 读取目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	rel, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(dataFS, rel)
}
