package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时目录中创建 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.MusicVolume != 0.7 || settings.SoundVolume != 0.8 {
		t.Errorf("volumes: got %v/%v, want 0.7/0.8", settings.MusicVolume, settings.SoundVolume)
	}
	if !settings.MusicEnabled || !settings.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.IsPersistent() {
		t.Error("degraded manager should not be persistent")
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Errorf("Degraded mode MusicVolume: got %v, want 0.7", sm.GetSettings().MusicVolume)
	}

	// 降级模式下 Save() 不报错，Load() 恢复默认值
	sm.SetMusicVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().MusicVolume != 0.7 {
		t.Errorf("After Load() in degraded mode, MusicVolume: got %v, want 0.7", sm.GetSettings().MusicVolume)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "fonolt_test_settings")

	sm1 := NewSettingsManager(gdataManager)
	if !sm1.IsPersistent() {
		t.Fatal("manager with gdata should be persistent")
	}

	sm1.SetMusicVolume(0.5)
	sm1.SetSoundVolume(0.6)
	sm1.SetMusicEnabled(false)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	want := GameSettings{MusicVolume: 0.5, SoundVolume: 0.6, MusicEnabled: false, SoundEnabled: false, Fullscreen: true}
	if got := *sm2.GetSettings(); got != want {
		t.Errorf("loaded settings = %+v, want %+v", got, want)
	}
}

// TestLoadCorruptSettings 损坏的设置回退到默认值
func TestLoadCorruptSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "fonolt_test_corrupt")

	sm := NewSettingsManager(gdataManager)
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	if err := sm.Load(); err == nil {
		t.Error("Load() should fail on corrupt data")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupt data should fall back to defaults, got %+v", *sm.GetSettings())
	}

	// 超出范围的音量在加载时被限制
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: 4\nsoundVolume: -1\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if sm.GetSettings().MusicVolume != 1 || sm.GetSettings().SoundVolume != 0 {
		t.Errorf("volumes not clamped: %+v", *sm.GetSettings())
	}
	if !sm.GetSettings().MusicEnabled {
		t.Error("missing fields should keep their defaults")
	}
}

// TestSetVolumeClamp 测试音量范围校验
func TestSetVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
	}

	for _, tt := range tests {
		sm.SetMusicVolume(tt.input)
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().MusicVolume != tt.expected || sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetVolume(%v): got %v/%v, want %v",
				tt.input, sm.GetSettings().MusicVolume, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}
