package config

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// DefaultCampaignPath 默认关卡顺序文件
const DefaultCampaignPath = "data/levels/campaign.yaml"

// CampaignConfig 关卡顺序配置
type CampaignConfig struct {
	Title  string   `yaml:"title"`
	Levels []string `yaml:"levels"` // 关卡ID列表，按顺序运行
}

// LoadCampaign 加载关卡顺序以及每个关卡的配置
// 关卡文件与 campaign 文件位于同一目录，文件名为 <id>.yaml
//
// 返回：
//   - []*LevelConfig: 按运行顺序排列的关卡配置
//   - error: 任一文件缺失、ID 重复或 ID 与文件内容不一致
func LoadCampaign(campaignPath string) ([]*LevelConfig, error) {
	data, err := ReadConfigFile(campaignPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign file %s: %w", campaignPath, err)
	}

	var campaign CampaignConfig
	if err := yaml.Unmarshal(data, &campaign); err != nil {
		return nil, fmt.Errorf("failed to parse campaign YAML from %s: %w", campaignPath, err)
	}
	if len(campaign.Levels) == 0 {
		return nil, fmt.Errorf("campaign %s lists no levels", campaignPath)
	}

	dir := path.Dir(campaignPath)
	seen := make(map[string]bool, len(campaign.Levels))
	levels := make([]*LevelConfig, 0, len(campaign.Levels))
	for _, id := range campaign.Levels {
		if seen[id] {
			return nil, fmt.Errorf("campaign %s: duplicate level %q", campaignPath, id)
		}
		seen[id] = true

		lc, err := LoadLevelConfig(path.Join(dir, id+".yaml"))
		if err != nil {
			return nil, err
		}
		if lc.ID != id {
			return nil, fmt.Errorf("campaign %s: file %s.yaml declares id %q", campaignPath, id, lc.ID)
		}
		levels = append(levels, lc)
	}
	return levels, nil
}

// IndexOf 返回关卡ID在列表中的位置，不存在时返回 -1
func IndexOf(levels []*LevelConfig, id string) int {
	for i, lc := range levels {
		if lc.ID == id {
			return i
		}
	}
	return -1
}
