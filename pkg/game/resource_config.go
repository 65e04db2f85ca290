package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceManifest 资源清单，对应 data/config/resources.yaml
//
// 结构：
//
//	version: "1.0"
//	images:
//	  IMAGE_BACKGROUND: background.png
//	sounds:
//	  SOUND_CLICK: click.mp3
//	music:
//	  MUSIC_HOME: home_music.mp3
//	fonts:
//	  FONT_MAIN: ""   # 留空表示使用内置字体
//
// 路径相对于资源目录（--assets）
type ResourceManifest struct {
	Version string            `yaml:"version"`
	Images  map[string]string `yaml:"images"`
	Sounds  map[string]string `yaml:"sounds"` // 单次播放的音效
	Music   map[string]string `yaml:"music"`  // 循环播放的背景音乐
	Fonts   map[string]string `yaml:"fonts"`
}

// ParseResourceManifest 解析资源清单
// 同一个资源ID只能出现在一个分类中
func ParseResourceManifest(data []byte) (*ResourceManifest, error) {
	var manifest ResourceManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse resource manifest: %w", err)
	}

	seen := make(map[string]string)
	for category, entries := range map[string]map[string]string{
		"images": manifest.Images,
		"sounds": manifest.Sounds,
		"music":  manifest.Music,
		"fonts":  manifest.Fonts,
	} {
		for id := range entries {
			if other, dup := seen[id]; dup {
				return nil, fmt.Errorf("resource ID %s declared in both %s and %s", id, other, category)
			}
			seen[id] = category
		}
	}
	return &manifest, nil
}
