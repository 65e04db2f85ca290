package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 通过资源ID播放音效和背景音乐
//   - 应用 SettingsManager 中的音量与开关
//   - 资源缺失时静默，不影响游戏流程
//
// 同一时间只播放一首背景音乐；关闭音乐后会记住最近请求的曲目，重新打开时继续播放
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil，此时使用默认设置
	currentMusic    *audio.Player    // 当前背景音乐播放器，曲目缺失时为 nil
	currentMusicID  string           // 最近请求的背景音乐ID
	logger          *log.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		logger:          log.WithPrefix("AudioManager"),
	}
}

func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager == nil {
		return DefaultSettings()
	}
	return am.settingsManager.GetSettings()
}

// PlaySound 从头播放一次音效
//
// 返回：
//   - bool: 是否真正播放（音效关闭或资源缺失时为 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	settings := am.settings()
	if !settings.SoundEnabled {
		return false
	}

	player := am.resourceManager.SoundByID(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(settings.SoundVolume)
	if err := player.Rewind(); err != nil {
		am.logger.Warn("failed to rewind sound", "id", soundID, "err", err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐，替换当前曲目
// 请求正在播放的同一首音乐时不会从头开始
//
// 返回：
//   - bool: 是否真正播放
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()
	am.currentMusicID = musicID

	settings := am.settings()
	if !settings.MusicEnabled {
		return false
	}
	return am.startCurrentMusic(settings.MusicVolume)
}

// startCurrentMusic 获取并从头播放 currentMusicID
func (am *AudioManager) startCurrentMusic(volume float64) bool {
	player := am.resourceManager.MusicByID(am.currentMusicID)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		am.logger.Warn("failed to rewind music", "id", am.currentMusicID, "err", err)
	}
	player.Play()
	am.currentMusic = player

	am.logger.Debug("playing music", "id", am.currentMusicID, "volume", volume)
	return true
}

// StopMusic 停止当前背景音乐并清除曲目记录
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentMusicID = ""
}

// CurrentMusicID 返回最近请求的背景音乐ID（音乐关闭时也会保留）
func (am *AudioManager) CurrentMusicID() string {
	return am.currentMusicID
}

// IsMusicPlaying 返回是否有背景音乐正在播放
func (am *AudioManager) IsMusicPlaying() bool {
	return am.currentMusic != nil && am.currentMusic.IsPlaying()
}

// SetMusicEnabled 打开或关闭背景音乐
// 关闭时暂停当前曲目；打开时继续播放最近请求的曲目
func (am *AudioManager) SetMusicEnabled(enabled bool) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
	}

	if !enabled {
		if am.currentMusic != nil {
			am.currentMusic.Pause()
		}
		return
	}

	if am.currentMusic != nil {
		am.currentMusic.Play()
		return
	}
	if am.currentMusicID != "" {
		am.startCurrentMusic(am.settings().MusicVolume)
	}
}

// ToggleMusic 切换背景音乐开关
//
// 返回：
//   - bool: 切换后是否启用
func (am *AudioManager) ToggleMusic() bool {
	enabled := !am.settings().MusicEnabled
	am.SetMusicEnabled(enabled)
	return enabled
}

// SetMusicVolume 设置音乐音量并立即应用到当前曲目
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.settings().MusicVolume)
	}
}
