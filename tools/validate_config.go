package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/types"
)

// 检查田地配置文件以及其中引用的所有纹理
//
// 用法: go run tools/validate_config.go [assets/config/garden.yaml]
func main() {
	path := "assets/config/garden.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGardenConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	geom := cfg.Geometry()
	width, height := cfg.WindowSize()
	fmt.Printf("✅ %s 解析成功\n", path)
	fmt.Printf("   田地: %d 行 x %d 列, 每格 %dpx, 边框 %d 格\n", cfg.Rows, cfg.Cols, cfg.TileSize, cfg.BorderPadding)
	fmt.Printf("   画布: %dx%d, 窗口: %dx%d\n", geom.SurfaceWidth(), geom.SurfaceHeight(), width, height)
	fmt.Printf("   植物: %v\n", cfg.Plants)

	// 纹理缺失不是错误（田地会使用纯色），只提示
	missing := 0
	for _, id := range types.AllResources {
		assetPath := cfg.AssetPath(id)
		w, h, err := imageSize(assetPath)
		switch {
		case err != nil:
			fmt.Printf("⚠️  %-10s %s: %v（将使用纯色）\n", id, assetPath, err)
			missing++
		case w == 0:
			fmt.Printf("⚠️  %-10s %s: 宽度为 0（将使用纯色）\n", id, assetPath)
			missing++
		default:
			fmt.Printf("✅ %-10s %s (%dx%d)\n", id, assetPath, w, h)
		}
	}

	if missing > 0 {
		fmt.Printf("\n%d 个纹理不可用\n", missing)
	}
}

func imageSize(path string) (int, int, error) {
	if path == "" {
		return 0, 0, fmt.Errorf("未配置路径")
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
