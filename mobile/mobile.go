//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.fonolt -o build/android/fonolt.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Fonolt.xcframework -v ./mobile
//
// 关卡脚本和链接 CSV 来自 data 包的嵌入文件；图片和音频缺失时使用占位图和静音。
package mobile

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/fonolt/data"
	"github.com/decker502/fonolt/pkg/app"
	"github.com/decker502/fonolt/pkg/embedded"
)

func init() {
	embedded.Init(data.FS)

	// 使用内置链接和默认资源目录
	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatal("游戏初始化失败", "err", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
