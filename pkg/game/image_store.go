package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"

	"github.com/decker502/gardentodo/pkg/embedded"
	"github.com/decker502/gardentodo/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEmptyImage 图片解码成功但宽度为零
var ErrEmptyImage = errors.New("image has zero width")

// LoadResult 单个图片资源的加载结果
type LoadResult struct {
	ID   types.ResourceID
	Path string
	Err  error
}

// decodedImage 后台 goroutine 的解码结果
type decodedImage struct {
	id   types.ResourceID
	path string
	img  image.Image
	err  error
}

// ImageStore 田地纹理的异步加载与缓存
//
// 每个资源在独立的 goroutine 中打开并解码，结果通过通道送回；
// Poll 在游戏主循环中调用，把解码结果转换为 *ebiten.Image。
// 缓存只在主循环中读写，因此不需要加锁。
//
// Usage:
//
//	store := NewImageStore(nil)
//	store.LoadAsync(types.ResourceGround, "assets/grass_texture.png")
//	// 每帧
//	for _, r := range store.Poll() {
//	    dispatcher.Dispatch(ImageReady{ID: r.ID, Err: r.Err})
//	}
type ImageStore struct {
	images  map[types.ResourceID]*ebiten.Image
	results chan decodedImage
	pending int
	open    OpenFunc
}

// OpenFunc 打开图片文件
type OpenFunc func(path string) (io.ReadCloser, error)

// NewImageStore 创建空的图片缓存
// open 为 nil 时优先读取嵌入资源，找不到再读取本地文件
func NewImageStore(open OpenFunc) *ImageStore {
	if open == nil {
		open = openAsset
	}
	return &ImageStore{
		images:  make(map[types.ResourceID]*ebiten.Image),
		results: make(chan decodedImage, len(types.AllResources)),
		open:    open,
	}
}

// LoadAsync 在后台加载图片
// 路径为空时立即以失败结果入队，保证每个请求都会有一个结果
func (s *ImageStore) LoadAsync(id types.ResourceID, path string) {
	s.pending++
	go func() {
		img, err := decodeImageFile(s.open, path)
		s.results <- decodedImage{id: id, path: path, img: img, err: err}
	}()
}

// Poll 非阻塞地取出已完成的加载结果
func (s *ImageStore) Poll() []LoadResult {
	var out []LoadResult
	for {
		select {
		case d := <-s.results:
			s.pending--
			out = append(out, s.accept(d))
		default:
			return out
		}
	}
}

// accept 把解码结果放入缓存
func (s *ImageStore) accept(d decodedImage) LoadResult {
	res := LoadResult{ID: d.id, Path: d.path, Err: d.err}
	if d.err != nil {
		log.Printf("[ImageStore] Failed to load %s (%s): %v", d.id, d.path, d.err)
		return res
	}

	b := d.img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		res.Err = fmt.Errorf("%s: %w", d.path, ErrEmptyImage)
		log.Printf("[ImageStore] Ignoring %s: %v", d.id, res.Err)
		return res
	}

	s.images[d.id] = ebiten.NewImageFromImage(d.img)
	log.Printf("[ImageStore] Loaded %s (%s, %dx%d)", d.id, d.path, b.Dx(), b.Dy())
	return res
}

// Pending 返回尚未取回结果的请求数量
func (s *ImageStore) Pending() int {
	return s.pending
}

// Image 返回已缓存的图片，未加载成功时返回 nil
func (s *ImageStore) Image(id types.ResourceID) *ebiten.Image {
	return s.images[id]
}

// Usable 图片已解码且宽度不为零
// 每次绘制都需要重新检查（图片可能仍在加载）
func (s *ImageStore) Usable(id types.ResourceID) bool {
	img := s.images[id]
	return img != nil && img.Bounds().Dx() > 0
}

// openAsset 嵌入资源优先，其次本地文件
func openAsset(path string) (io.ReadCloser, error) {
	if embedded.Exists(path) {
		return embedded.Open(path)
	}
	return os.Open(path)
}

// decodeImageFile 打开并解码图片文件（PNG/JPEG）
func decodeImageFile(open OpenFunc, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no path configured")
	}

	file, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
