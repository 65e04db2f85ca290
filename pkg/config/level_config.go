package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/decker502/fonolt/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// LevelKind 关卡类型，决定由哪种关卡流程运行
type LevelKind string

const (
	// KindIntroduction 开场介绍（逐字显示），不计分
	KindIntroduction LevelKind = "introduction"
	// KindFallingLinks 掉落链接小游戏
	KindFallingLinks LevelKind = "falling_links"
	// KindQuiz 限时邮件判断测验
	KindQuiz LevelKind = "quiz"
	// KindInfo 通用信息页，不计分
	KindInfo LevelKind = "info"
)

// InstructionLayout 说明页排版方式
type InstructionLayout string

const (
	// LayoutCentered 首行作为大标题居中，其余行按像素宽度换行后居中
	LayoutCentered InstructionLayout = "centered"
	// LayoutCompact 所有行左对齐，小字号，行距 30
	LayoutCompact InstructionLayout = "compact"
	// LayoutList 所有行左对齐，通用字号，行距 40
	LayoutList InstructionLayout = "list"
)

// FeedbackStyle 测验每题之后反馈画面的样式
type FeedbackStyle string

const (
	// FeedbackWrapped 关卡背景上左上角显示结果，解释按 60 个字符换行
	FeedbackWrapped FeedbackStyle = "wrapped"
	// FeedbackPlain 黑底白字，结果与整行解释显示在屏幕中部
	FeedbackPlain FeedbackStyle = "plain"
)

// 测验选项
const (
	OptionLegitimate = "Legitimate"
	OptionPhishing   = "Phishing"
)

// DefaultExplanation 题目未配置解释时显示的文字
const DefaultExplanation = "No explanation provided."

// DefaultQuestion 未配置问题时使用的默认问题
const DefaultQuestion = "Is this email legitimate or phishing?"

// LevelConfig 关卡配置数据结构
// 对应 data/levels/<id>.yaml
type LevelConfig struct {
	ID         string    `yaml:"id"`         // 关卡ID，如 "level1"
	Kind       LevelKind `yaml:"kind"`       // 关卡类型
	Name       string    `yaml:"name"`       // 关卡名称
	Background string    `yaml:"background"` // 背景图片资源ID，如 "IMAGE_LEVEL2"
	Music      string    `yaml:"music"`      // 关卡进行中播放的音乐资源ID（可选）
	TextColour string    `yaml:"textColour"` // 文字颜色名称，默认 "white"

	InstructionLayout InstructionLayout `yaml:"instructionLayout"` // 说明页排版，默认 centered
	Instructions      []string          `yaml:"instructions"`      // 说明文字（introduction/info 为正文）
	Tutorial          []TutorialSlide   `yaml:"tutorial"`          // 教程幻灯片（可选，仅掉落链接关卡使用）

	// 测验字段
	Question        string     `yaml:"question"`
	Options         []string   `yaml:"options"`
	TimeLimit       float64       `yaml:"timeLimit"`       // 每题限时（秒）
	FeedbackSeconds float64       `yaml:"feedbackSeconds"` // 每题反馈显示时长（秒）
	FeedbackStyle   FeedbackStyle `yaml:"feedbackStyle"`   // 反馈样式，默认 wrapped
	PassScore       *int          `yaml:"passScore"`       // 通关分数，nil 表示无门槛
	Scenarios       []Scenario    `yaml:"scenarios"`

	// RetryOnFail 未通关时是否重来（false 时直接结束并返回分数）
	RetryOnFail bool `yaml:"retryOnFail"`
	// CompletionScore 通关时计入总分的分数，nil 表示计入关卡内得分
	CompletionScore *int `yaml:"completionScore"`

	FallingLinks *FallingLinksConfig `yaml:"fallingLinks"`
}

// TutorialSlide 一页教程
type TutorialSlide struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Scenario 一封待判断的邮件
// 加载后视为只读
type Scenario struct {
	Content     []string `yaml:"content"`
	IsLegit     bool     `yaml:"isLegit"`
	Explanation string   `yaml:"explanation"`
}

// ExplanationText 返回解释文字，未配置时返回默认文字
func (s Scenario) ExplanationText() string {
	if strings.TrimSpace(s.Explanation) == "" {
		return DefaultExplanation
	}
	return s.Explanation
}

// IsCorrect 判断所选选项是否正确
// 只有选项恰好为 "Legitimate" 时才视为判断为合法邮件
func (s Scenario) IsCorrect(option string) bool {
	return s.IsLegit == (option == OptionLegitimate)
}

// FallingLinksConfig 掉落链接小游戏参数
// 速度单位为 像素/帧（按 TargetTPS 换算）
type FallingLinksConfig struct {
	BaseSpeed        float64 `yaml:"baseSpeed"`        // 初始下落速度
	SpeedIncrement   float64 `yaml:"speedIncrement"`   // 每个阶段增加的速度
	SpeedStepSeconds float64 `yaml:"speedStepSeconds"` // 速度阶段时长（秒）
	SpawnOneIn       int     `yaml:"spawnOneIn"`       // 每帧以 1/SpawnOneIn 的概率尝试生成
	MaxLinks         int     `yaml:"maxLinks"`         // 同屏最大链接数
	SpawnMargin      float64 `yaml:"spawnMargin"`      // 生成 X 范围为 [0, 屏幕宽度 - SpawnMargin]
	CollisionX       float64 `yaml:"collisionX"`       // 与已有链接的最小水平间距
	CollisionY       float64 `yaml:"collisionY"`       // 与已有链接的最小垂直间距
	PassScore        int     `yaml:"passScore"`        // 达到该分数通关
	FailScore        int     `yaml:"failScore"`        // 降到该分数失败
}

// DefaultFallingLinksConfig 返回默认的掉落链接参数
func DefaultFallingLinksConfig() *FallingLinksConfig {
	return &FallingLinksConfig{
		BaseSpeed:        2,
		SpeedIncrement:   0.1,
		SpeedStepSeconds: 10,
		SpawnOneIn:       30,
		MaxLinks:         5,
		SpawnMargin:      200,
		CollisionX:       200,
		CollisionY:       50,
		PassScore:        15,
		FailScore:        -5,
	}
}

// SpeedAt 返回经过 elapsed 秒后的下落速度（像素/帧）
// 速度按阶段递增：base + floor(elapsed/step) * increment
func (f *FallingLinksConfig) SpeedAt(elapsed float64) float64 {
	if f.SpeedStepSeconds <= 0 {
		return f.BaseSpeed
	}
	return f.BaseSpeed + math.Floor(elapsed/f.SpeedStepSeconds)*f.SpeedIncrement
}

// IsCounted 返回关卡是否计入关卡编号（显示 "Level N Complete!"）
func (c *LevelConfig) IsCounted() bool {
	return c.Kind == KindFallingLinks || c.Kind == KindQuiz
}

// PassThreshold 返回测验通关分数
func (c *LevelConfig) PassThreshold() (int, bool) {
	if c.PassScore == nil {
		return 0, false
	}
	return *c.PassScore, true
}

// ResultScore 返回关卡结束时计入总分的分数
//
// 参数：
//   - score: 关卡内得分（掉落链接的分数或测验答对题数）
//   - passed: 是否通关
//
// 配置了 CompletionScore 的关卡通关时只计入 CompletionScore
func (c *LevelConfig) ResultScore(score int, passed bool) int {
	if passed && c.CompletionScore != nil {
		return *c.CompletionScore
	}
	return score
}

// TextRGBA 返回关卡文字颜色，未知名称时为白色
func (c *LevelConfig) TextRGBA() color.RGBA {
	if col, ok := ColourByName(c.TextColour); ok {
		return col
	}
	return ColourWhite
}

// LoadLevelConfig 从 YAML 文件加载关卡配置
//
// 参数：
//   - path: 配置路径；以 "data/" 开头时读取嵌入数据，否则读取磁盘文件
//
// 返回：
//   - *LevelConfig: 应用默认值并通过校验的配置
//   - error: 读取、解析或校验失败
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := ReadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseLevelConfig 解析 YAML 数据为关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, err
	}
	return &levelConfig, nil
}

// ReadConfigFile 读取配置文件
// "data/" 前缀走嵌入数据，其余路径走磁盘
func ReadConfigFile(path string) ([]byte, error) {
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(cfg *LevelConfig) {
	if cfg.TextColour == "" {
		cfg.TextColour = "white"
	}
	if cfg.InstructionLayout == "" {
		if cfg.Kind == KindInfo {
			cfg.InstructionLayout = LayoutList
		} else {
			cfg.InstructionLayout = LayoutCentered
		}
	}

	switch cfg.Kind {
	case KindQuiz:
		if cfg.Question == "" {
			cfg.Question = DefaultQuestion
		}
		if len(cfg.Options) == 0 {
			cfg.Options = []string{OptionLegitimate, OptionPhishing}
		}
		if cfg.TimeLimit == 0 {
			cfg.TimeLimit = DefaultTimeLimit
		}
		if cfg.FeedbackSeconds == 0 {
			cfg.FeedbackSeconds = 3
		}
		if cfg.FeedbackStyle == "" {
			cfg.FeedbackStyle = FeedbackWrapped
		}
	case KindFallingLinks:
		defaults := DefaultFallingLinksConfig()
		if cfg.FallingLinks == nil {
			cfg.FallingLinks = defaults
			return
		}
		fl := cfg.FallingLinks
		if fl.BaseSpeed == 0 {
			fl.BaseSpeed = defaults.BaseSpeed
		}
		if fl.SpeedStepSeconds == 0 {
			fl.SpeedStepSeconds = defaults.SpeedStepSeconds
		}
		if fl.SpawnOneIn == 0 {
			fl.SpawnOneIn = defaults.SpawnOneIn
		}
		if fl.MaxLinks == 0 {
			fl.MaxLinks = defaults.MaxLinks
		}
		if fl.SpawnMargin == 0 {
			fl.SpawnMargin = defaults.SpawnMargin
		}
		if fl.CollisionX == 0 {
			fl.CollisionX = defaults.CollisionX
		}
		if fl.CollisionY == 0 {
			fl.CollisionY = defaults.CollisionY
		}
		if fl.PassScore == 0 && fl.FailScore == 0 {
			fl.PassScore = defaults.PassScore
			fl.FailScore = defaults.FailScore
		}
	}
}

// validateLevelConfig 校验必填字段和取值范围
func validateLevelConfig(cfg *LevelConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("level id is required")
	}
	if _, ok := ColourByName(cfg.TextColour); !ok {
		return fmt.Errorf("level %s: unknown textColour %q", cfg.ID, cfg.TextColour)
	}
	switch cfg.InstructionLayout {
	case LayoutCentered, LayoutCompact, LayoutList:
	default:
		return fmt.Errorf("level %s: unknown instructionLayout %q", cfg.ID, cfg.InstructionLayout)
	}

	switch cfg.Kind {
	case KindIntroduction, KindInfo:
		if len(cfg.Instructions) == 0 {
			return fmt.Errorf("level %s: %s level needs instructions", cfg.ID, cfg.Kind)
		}
	case KindQuiz:
		if len(cfg.Scenarios) == 0 {
			return fmt.Errorf("level %s: quiz needs at least one scenario", cfg.ID)
		}
		if cfg.TimeLimit < 0 {
			return fmt.Errorf("level %s: timeLimit must be positive, got %v", cfg.ID, cfg.TimeLimit)
		}
		for i, s := range cfg.Scenarios {
			if len(s.Content) == 0 {
				return fmt.Errorf("level %s: scenario %d has no content", cfg.ID, i+1)
			}
		}
		switch cfg.FeedbackStyle {
		case FeedbackWrapped, FeedbackPlain:
		default:
			return fmt.Errorf("level %s: unknown feedbackStyle %q", cfg.ID, cfg.FeedbackStyle)
		}
		if pass, ok := cfg.PassThreshold(); ok && pass > len(cfg.Scenarios) {
			return fmt.Errorf("level %s: passScore %d exceeds scenario count %d", cfg.ID, pass, len(cfg.Scenarios))
		}
	case KindFallingLinks:
		fl := cfg.FallingLinks
		if fl.PassScore <= fl.FailScore {
			return fmt.Errorf("level %s: passScore %d must be above failScore %d", cfg.ID, fl.PassScore, fl.FailScore)
		}
		if fl.SpawnOneIn < 1 || fl.MaxLinks < 1 {
			return fmt.Errorf("level %s: spawnOneIn and maxLinks must be at least 1", cfg.ID)
		}
		if fl.SpawnMargin >= GameWindowWidth {
			return fmt.Errorf("level %s: spawnMargin %v leaves no room on screen", cfg.ID, fl.SpawnMargin)
		}
	default:
		return fmt.Errorf("level %s: unknown kind %q", cfg.ID, cfg.Kind)
	}
	return nil
}
