package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/decker502/gardentodo/pkg/types"
	"gopkg.in/yaml.v3"
)

// 默认布局参数
const (
	DefaultTileSize      = 50 // 每格像素尺寸
	DefaultRows          = 10 // 田地行数
	DefaultCols          = 10 // 田地列数
	DefaultBorderPadding = 1  // 四周边框宽度（格）
	DefaultPanelWidth    = 320
	DefaultWindowTitle   = "Garden Tasks"
)

// GardenConfig 田地与界面配置
// 对应 assets/config/garden.yaml（或同结构的 .toml 文件）
//
// 文件中缺失的字段保留 DefaultGardenConfig 的默认值。
type GardenConfig struct {
	TileSize      int               `yaml:"tileSize" toml:"tile_size"`           // 每格像素尺寸
	Rows          int               `yaml:"rows" toml:"rows"`                    // 行数
	Cols          int               `yaml:"cols" toml:"cols"`                    // 列数
	BorderPadding int               `yaml:"borderPadding" toml:"border_padding"` // 边框宽度（格）
	Window        WindowConfig      `yaml:"window" toml:"window"`                // 窗口参数
	Assets        map[string]string `yaml:"assets" toml:"assets"`                // 资源 ID -> 图片路径
	Colors        ColorConfig       `yaml:"colors" toml:"colors"`                // 降级渲染颜色
	Plants        []string          `yaml:"plants" toml:"plants"`                // 可选择的植物名
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	PanelWidth int    `yaml:"panelWidth" toml:"panel_width"` // 右侧任务面板宽度（像素）
}

// ColorConfig 图片不可用时使用的纯色（#RRGGBB）
type ColorConfig struct {
	Ground    string `yaml:"ground" toml:"ground"`
	Cleared   string `yaml:"cleared" toml:"cleared"`
	Sprouting string `yaml:"sprouting" toml:"sprouting"`
	Mature    string `yaml:"mature" toml:"mature"`
	Border    string `yaml:"border" toml:"border"`
	Outline   string `yaml:"outline" toml:"outline"`
}

// DefaultGardenConfig 返回默认配置
func DefaultGardenConfig() *GardenConfig {
	return &GardenConfig{
		TileSize:      DefaultTileSize,
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		BorderPadding: DefaultBorderPadding,
		Window: WindowConfig{
			Title:      DefaultWindowTitle,
			PanelWidth: DefaultPanelWidth,
		},
		Assets: map[string]string{
			string(types.ResourceGround):    "assets/grass_texture.png",
			string(types.ResourceBorder):    "assets/border_texture.png",
			string(types.ResourceCleared):   "assets/empty_field.png",
			string(types.ResourceSprouting): "assets/sprouting.png",
			string(types.ResourceMature):    "assets/mature_plant.png",
		},
		Colors: ColorConfig{
			Ground:    "#00FF00",
			Cleared:   "#8B4513",
			Sprouting: "#90EE90",
			Mature:    "#FFD700",
			Border:    "#8B5A2B",
			Outline:   "#000000",
		},
		Plants: []string{"Tomato", "Carrot", "Sunflower"},
	}
}

// LoadGardenConfig 从文件加载配置
// 参数：
//
//	path - 配置文件路径，按扩展名选择解析器（.yaml/.yml 或 .toml）；为空时返回默认配置
//
// 返回：
//
//	*GardenConfig - 合并默认值后的配置
//	error - 读取、解析或校验失败
func LoadGardenConfig(path string) (*GardenConfig, error) {
	if path == "" {
		return DefaultGardenConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read garden config %s: %w", path, err)
	}

	return ParseGardenConfig(path, data)
}

// ParseGardenConfig 解析已读入内存的配置（如嵌入的默认配置文件）
// name 仅用于按扩展名选择解析器和错误信息
func ParseGardenConfig(name string, data []byte) (*GardenConfig, error) {
	cfg := DefaultGardenConfig()

	if err := cfg.decode(filepath.Ext(name), data); err != nil {
		return nil, fmt.Errorf("failed to parse garden config %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid garden config %s: %w", name, err)
	}

	return cfg, nil
}

// decode 按扩展名解码到已填充默认值的配置上
func (c *GardenConfig) decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	case ".toml":
		_, err := toml.Decode(string(data), c)
		return err
	default:
		return fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}
}

// Validate 检查配置的合法性
func (c *GardenConfig) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %d", c.TileSize)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("rows and cols must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.BorderPadding < 0 {
		return fmt.Errorf("borderPadding cannot be negative, got %d", c.BorderPadding)
	}
	if c.Window.PanelWidth < 0 {
		return fmt.Errorf("window.panelWidth cannot be negative, got %d", c.Window.PanelWidth)
	}

	for id := range c.Assets {
		if !types.ResourceID(id).IsKnown() {
			return fmt.Errorf("unknown asset id %q", id)
		}
	}

	for name, value := range c.Colors.named() {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}

	return nil
}

// Geometry 返回网格几何参数
func (c *GardenConfig) Geometry() Geometry {
	return Geometry{
		TileSize:      c.TileSize,
		Rows:          c.Rows,
		Cols:          c.Cols,
		BorderPadding: c.BorderPadding,
	}
}

// AssetPath 返回资源 ID 对应的图片路径，未配置时返回空串
func (c *GardenConfig) AssetPath(id types.ResourceID) string {
	return c.Assets[string(id)]
}

// Palette 将颜色配置解析为 color.RGBA
// 调用前应先通过 Validate
func (c *GardenConfig) Palette() Palette {
	return Palette{
		Ground:    mustParseHexColor(c.Colors.Ground),
		Cleared:   mustParseHexColor(c.Colors.Cleared),
		Sprouting: mustParseHexColor(c.Colors.Sprouting),
		Mature:    mustParseHexColor(c.Colors.Mature),
		Border:    mustParseHexColor(c.Colors.Border),
		Outline:   mustParseHexColor(c.Colors.Outline),
	}
}

func (cc ColorConfig) named() map[string]string {
	return map[string]string{
		"ground":    cc.Ground,
		"cleared":   cc.Cleared,
		"sprouting": cc.Sprouting,
		"mature":    cc.Mature,
		"border":    cc.Border,
		"outline":   cc.Outline,
	}
}
