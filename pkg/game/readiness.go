package game

import "github.com/decker502/gardentodo/pkg/types"

// ResourceStatus 单个资源的加载状态
type ResourceStatus int

const (
	ResourcePending ResourceStatus = iota // 尚未返回结果
	ResourceLoaded                        // 解码成功
	ResourceFailed                        // 永久失败（文件缺失、解码失败或尺寸为零）
)

// ReadinessSet 记录一组期望资源的加载结果
// 所有资源都有结果（成功或失败）后触发首次绘制
type ReadinessSet struct {
	status map[types.ResourceID]ResourceStatus
}

// NewReadinessSet 创建期望资源集合，初始全部为 ResourcePending
func NewReadinessSet(ids ...types.ResourceID) *ReadinessSet {
	rs := &ReadinessSet{status: make(map[types.ResourceID]ResourceStatus, len(ids))}
	for _, id := range ids {
		rs.status[id] = ResourcePending
	}
	return rs
}

// Mark 记录资源结果，err 非 nil 表示失败
// 返回 false 表示该资源不在期望集合中或已经有结果
func (rs *ReadinessSet) Mark(id types.ResourceID, err error) bool {
	current, expected := rs.status[id]
	if !expected || current != ResourcePending {
		return false
	}
	if err != nil {
		rs.status[id] = ResourceFailed
	} else {
		rs.status[id] = ResourceLoaded
	}
	return true
}

// Status 返回资源状态，未期望的资源返回 ResourcePending 和 false
func (rs *ReadinessSet) Status(id types.ResourceID) (ResourceStatus, bool) {
	s, ok := rs.status[id]
	return s, ok
}

// AllSettled 所有期望资源都已有结果
// 空集合视为已就绪
func (rs *ReadinessSet) AllSettled() bool {
	for _, s := range rs.status {
		if s == ResourcePending {
			return false
		}
	}
	return true
}

// Pending 返回尚未返回结果的资源数量
func (rs *ReadinessSet) Pending() int {
	n := 0
	for _, s := range rs.status {
		if s == ResourcePending {
			n++
		}
	}
	return n
}
