package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/gardentodo/pkg/app"
	"github.com/decker502/gardentodo/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "田地配置文件（.yaml/.yml/.toml），为空则使用内置配置")
	verbose    = flag.Bool("verbose", false, "输出详细日志")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 在 embed.go 中声明）
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(gameApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
