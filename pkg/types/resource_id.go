package types

// ResourceID 图片资源标识
type ResourceID string

const (
	ResourceGround    ResourceID = "ground"    // 草地纹理
	ResourceBorder    ResourceID = "border"    // 边框纹理
	ResourceCleared   ResourceID = "cleared"   // 空地纹理
	ResourceSprouting ResourceID = "sprouting" // 发芽纹理
	ResourceMature    ResourceID = "mature"    // 成熟植物纹理
)

// AllResources 按固定顺序列出全部图片资源
var AllResources = []ResourceID{
	ResourceGround,
	ResourceBorder,
	ResourceCleared,
	ResourceSprouting,
	ResourceMature,
}

// IsKnown 检查是否为已定义的资源 ID
func (id ResourceID) IsKnown() bool {
	for _, known := range AllResources {
		if id == known {
			return true
		}
	}
	return false
}

// TileResource 返回格子状态对应的纹理资源
func TileResource(state TileState) ResourceID {
	switch state {
	case TileCleared:
		return ResourceCleared
	case TileSprouting:
		return ResourceSprouting
	case TileMature:
		return ResourceMature
	default:
		return ResourceGround
	}
}
