package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家设置
// 只保存音频与显示偏好，分数从不持久化
type GameSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关（M 键切换）
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏（F11 切换）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings
	logger       *log.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// OpenSettingsManager 打开应用的 gdata 存储并加载设置
// 存储不可用时进入降级模式（仅内存设置），不返回错误
func OpenSettingsManager(appName string) *SettingsManager {
	logger := log.WithPrefix("SettingsManager")

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings storage unavailable, changes will not be saved", "err", err)
		gdataManager = nil
	}
	return NewSettingsManager(gdataManager)
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，记录警告后使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       log.WithPrefix("SettingsManager"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return sm
}

// IsPersistent 返回设置是否能够保存
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或尚未保存过时使用默认设置
//
// 返回：
//   - error: 读取或反序列化失败（此时已回退到默认设置）
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	sm.logger.Debug("settings loaded", "music", loaded.MusicEnabled, "fullscreen", loaded.Fullscreen)
	return nil
}

// Save 保存设置到 gdata
// 降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量，限制在 0.0 ~ 1.0
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
