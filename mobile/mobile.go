//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	cp -r assets mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.gardentodo -o build/android/gardentodo.aar -v ./mobile
//	cp -r assets mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/GardenTodo.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/gardentodo/pkg/app"
	"github.com/decker502/gardentodo/pkg/embedded"
)

func init() {
	// assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
