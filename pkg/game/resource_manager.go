package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultManifestPath 默认资源清单路径（嵌入数据）
const DefaultManifestPath = "data/config/resources.yaml"

// DefaultFontID 主字体的资源ID
const DefaultFontID = "FONT_MAIN"

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching for images, audio and font faces, resolving
// resource IDs through the YAML manifest.
//
// Missing or broken assets never stop the game:
//   - images are replaced by a solid placeholder of the requested size
//   - sounds and music resolve to nil players, which AudioManager treats as silence
//   - fonts fall back to the embedded Go Regular face
//
// Each fallback is reported once with a warning.
//
// This implementation is NOT thread-safe; all loading happens on the game goroutine.
type ResourceManager struct {
	assetsDir    string
	audioContext *audio.Context // nil 时所有音频静默
	manifest     *ResourceManifest

	imageCache    map[string]*ebiten.Image
	audioCache    map[string]*audio.Player
	failed        map[string]bool // 已报告加载失败的资源ID，避免重复警告
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace

	logger *log.Logger
}

// NewResourceManager creates a ResourceManager with empty caches.
//
// Parameters:
//   - audioContext: the global audio context (may be nil, audio is then silent).
//   - assetsDir: directory holding images, audio and fonts named in the manifest.
func NewResourceManager(audioContext *audio.Context, assetsDir string) *ResourceManager {
	return &ResourceManager{
		assetsDir:     assetsDir,
		audioContext:  audioContext,
		manifest:      &ResourceManifest{},
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		failed:        make(map[string]bool),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		logger:        log.WithPrefix("ResourceManager"),
	}
}

// LoadResourceConfig 加载资源清单
//
// 参数：
//   - configPath: 清单路径；以 "data/" 开头时读取嵌入数据
//
// 返回：
//   - error: 读取或解析失败
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := config.ReadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	manifest, err := ParseResourceManifest(data)
	if err != nil {
		return fmt.Errorf("invalid resource config %s: %w", configPath, err)
	}
	rm.manifest = manifest
	rm.logger.Debug("resource manifest loaded", "path", configPath,
		"images", len(manifest.Images), "sounds", len(manifest.Sounds), "music", len(manifest.Music))
	return nil
}

// ResolvePath returns the file path of a resource ID, or false when the manifest does
// not declare it (or declares it with an empty path).
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	for _, entries := range []map[string]string{rm.manifest.Images, rm.manifest.Sounds, rm.manifest.Music, rm.manifest.Fonts} {
		if rel, ok := entries[resourceID]; ok {
			if rel == "" {
				return "", false
			}
			return filepath.Join(rm.assetsDir, filepath.FromSlash(rel)), true
		}
	}
	return "", false
}

// LoadImage loads an image file from the specified path and caches it.
//
// Returns:
//   - the loaded ebiten.Image.
//   - an error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// ImageByID 按资源ID获取图片，失败时返回 width x height 的占位图
// 返回值永远不为 nil
func (rm *ResourceManager) ImageByID(resourceID string, width, height int) *ebiten.Image {
	if !rm.failed[resourceID] {
		path, ok := rm.ResolvePath(resourceID)
		if ok {
			img, err := rm.LoadImage(path)
			if err == nil {
				return img
			}
			rm.warnOnce(resourceID, "image unavailable, using placeholder", err)
		} else {
			rm.warnOnce(resourceID, "image not declared in manifest, using placeholder", nil)
		}
	}

	key := fmt.Sprintf("placeholder:%dx%d", width, height)
	if img, exists := rm.imageCache[key]; exists {
		return img
	}
	img := ebiten.NewImage(max(width, 1), max(height, 1))
	img.Fill(config.ColourPlaceholder)
	rm.imageCache[key] = img
	return img
}

// LoadMusic loads an audio file wrapped in an infinite loop, for background music.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadMusic(path string) (*audio.Player, error) {
	return rm.loadAudio(path, true)
}

// LoadSoundEffect loads a one-shot sound effect (no loop).
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadAudio(path, false)
}

// MusicByID 按资源ID获取背景音乐播放器，失败时返回 nil
func (rm *ResourceManager) MusicByID(resourceID string) *audio.Player {
	return rm.playerByID(resourceID, true)
}

// SoundByID 按资源ID获取音效播放器，失败时返回 nil
func (rm *ResourceManager) SoundByID(resourceID string) *audio.Player {
	return rm.playerByID(resourceID, false)
}

func (rm *ResourceManager) playerByID(resourceID string, loop bool) *audio.Player {
	if rm.failed[resourceID] {
		return nil
	}
	path, ok := rm.ResolvePath(resourceID)
	if !ok {
		rm.warnOnce(resourceID, "audio not declared in manifest, playing silence", nil)
		return nil
	}
	player, err := rm.loadAudio(path, loop)
	if err != nil {
		rm.warnOnce(resourceID, "audio unavailable, playing silence", err)
		return nil
	}
	return player
}

// loadAudio 读取并解码音频文件
// 整个文件读入内存，播放时无需保持文件句柄
func (rm *ResourceManager) loadAudio(path string, loop bool) (*audio.Player, error) {
	cacheKey := path
	if loop {
		cacheKey = "loop:" + path
	}
	if cachedPlayer, exists := rm.audioCache[cacheKey]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context unavailable for %s", path)
	}

	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := decodeAudio(path, bytes.NewReader(audioData))
	if err != nil {
		return nil, err
	}

	var source io.Reader = stream
	if loop {
		source = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[cacheKey] = player
	return player, nil
}

// audioStream 解码后的可定位音频流
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio 按扩展名选择解码器
func decodeAudio(path string, reader io.ReadSeeker) (audioStream, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// Font 返回指定字号的主字体
// 清单中 FONT_MAIN 为空、文件缺失或无法解析时使用内置的 Go Regular 字体
func (rm *ResourceManager) Font(size float64) *text.GoTextFace {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face
	}

	if rm.fontSource == nil {
		rm.fontSource = rm.loadFontSource()
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

// loadFontSource 加载主字体，失败时退回内置字体
func (rm *ResourceManager) loadFontSource() *text.GoTextFaceSource {
	if path, ok := rm.ResolvePath(DefaultFontID); ok {
		data, err := os.ReadFile(path)
		if err == nil {
			source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
			if err == nil {
				return source
			}
			rm.warnOnce(DefaultFontID, "font unreadable, using built-in font", err)
		} else {
			rm.warnOnce(DefaultFontID, "font unavailable, using built-in font", err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// 内置字体由 x/image 提供，解析失败说明构建本身有问题
		panic(fmt.Sprintf("failed to parse built-in font: %v", err))
	}
	return source
}

// warnOnce 每个资源ID只警告一次
func (rm *ResourceManager) warnOnce(resourceID, msg string, err error) {
	if rm.failed[resourceID] {
		return
	}
	rm.failed[resourceID] = true
	if err != nil {
		rm.logger.Warn(msg, "id", resourceID, "err", err)
		return
	}
	rm.logger.Warn(msg, "id", resourceID)
}
