// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/embedded"
	"github.com/decker502/gardentodo/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 嵌入资源中的默认配置文件
const DefaultConfigPath = "assets/config/garden.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 田地配置文件（YAML 或 TOML），为空则读取嵌入的默认配置
	ConfigPath string
	// Diagnostics 诊断信息（如植物选择）的输出目标，为 nil 时使用标准错误
	// 不受 Verbose 影响
	Diagnostics io.Writer
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg     *config.GardenConfig
	scene   *scenes.GardenScene
	verbose bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gardenCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	width, height := gardenCfg.WindowSize()
	log.Printf("[App] Field %dx%d, window %dx%d", gardenCfg.Cols, gardenCfg.Rows, width, height)

	diag := cfg.Diagnostics
	if diag == nil {
		diag = os.Stderr
	}

	return &App{
		cfg: gardenCfg,
		scene: scenes.NewGardenSceneWithInput(gardenCfg, scenes.SceneInput{
			Diagnostics: log.New(diag, "", log.LstdFlags),
		}),
		verbose: cfg.Verbose,
	}, nil
}

// LoadConfig 按优先级加载田地配置：
// 指定文件 > 嵌入的默认配置文件 > 内置默认值
func LoadConfig(path string) (*config.GardenConfig, error) {
	if path != "" {
		log.Printf("[App] Loading config from %s", path)
		return config.LoadGardenConfig(path)
	}

	if embedded.Exists(DefaultConfigPath) {
		data, err := embedded.ReadFile(DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config: %w", err)
		}
		log.Printf("[App] Loading embedded config %s", DefaultConfigPath)
		return config.ParseGardenConfig(DefaultConfigPath, data)
	}

	log.Printf("[App] No config file, using defaults")
	return config.DefaultGardenConfig(), nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			width, height := a.WindowSize()
			ebiten.SetWindowSize(width, height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", width, height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸：田地画布加右侧面板
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 返回窗口逻辑尺寸
func (a *App) WindowSize() (int, int) {
	return a.cfg.WindowSize()
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.cfg.Window.Title
}

// Scene 返回田地场景
func (a *App) Scene() *scenes.GardenScene {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
