package embedded

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/decker502/fonolt/data"
)

// testFS 测试用的数据文件系统
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/campaign.yaml": &fstest.MapFile{Data: []byte("levels: [intro]\n")},
		"links.csv":            &fstest.MapFile{Data: []byte("link,is_legit\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false after Init(nil)")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/links.csv")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
}

// TestReadFile 测试路径前缀映射
func TestReadFile(t *testing.T) {
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/links.csv"},
		{name: "带 ./ 前缀", path: "./data/levels/campaign.yaml"},
		{name: "未知前缀", path: "assets/background.png", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}

	if !Exists("data/links.csv") {
		t.Error("Exists() returned false for an existing file")
	}
	if Exists("data/nope.csv") {
		t.Error("Exists() returned true for a missing file")
	}

	entries, err := ReadDir("data/levels")
	if err != nil || len(entries) != 1 {
		t.Errorf("ReadDir() = %v, %v", entries, err)
	}
}

// TestBundledData 验证打包的数据文件齐全
func TestBundledData(t *testing.T) {
	Init(data.FS)
	defer Init(nil)

	for _, path := range []string{
		"data/links.csv",
		"data/config/resources.yaml",
		"data/levels/campaign.yaml",
		"data/levels/intro.yaml",
		"data/levels/level1.yaml",
		"data/levels/level2.yaml",
		"data/levels/level3.yaml",
		"data/levels/recap.yaml",
	} {
		if !Exists(path) {
			t.Errorf("bundled file missing: %s", path)
		}
	}
}
