package systems

import (
	"image/color"

	"github.com/decker502/gardentodo/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextureLookup 按资源 ID 返回已加载的纹理，未加载时返回 nil
type TextureLookup func(id types.ResourceID) *ebiten.Image

// ImageSurface 基于 *ebiten.Image 的田地画布
type ImageSurface struct {
	target   *ebiten.Image
	textures TextureLookup
}

// NewImageSurface 创建画布
func NewImageSurface(target *ebiten.Image, textures TextureLookup) *ImageSurface {
	return &ImageSurface{target: target, textures: textures}
}

// Target 返回底层图片
func (s *ImageSurface) Target() *ebiten.Image {
	return s.target
}

func (s *ImageSurface) Clear() {
	s.target.Clear()
}

func (s *ImageSurface) FillRect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(s.target, x, y, w, h, clr, false)
}

func (s *ImageSurface) StrokeRect(x, y, w, h, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(s.target, x, y, w, h, strokeWidth, clr, false)
}

// DrawTexture 将纹理缩放到格子尺寸后绘制
func (s *ImageSurface) DrawTexture(id types.ResourceID, x, y, size float32) {
	img := s.textures(id)
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
}
