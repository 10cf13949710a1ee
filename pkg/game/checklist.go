package game

// ChecklistItem 清单条目
type ChecklistItem struct {
	Label string
	Done  bool
}

// Checklist 只追加的有序清单
// 插入顺序即显示顺序，不支持删除
type Checklist struct {
	items []ChecklistItem
}

// Append 追加一个未完成的条目，返回其下标
func (c *Checklist) Append(label string) int {
	c.items = append(c.items, ChecklistItem{Label: label})
	return len(c.items) - 1
}

// Toggle 翻转条目的完成状态，下标越界时返回 false
func (c *Checklist) Toggle(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items[index].Done = !c.items[index].Done
	return true
}

// Len 返回条目数量
func (c *Checklist) Len() int {
	return len(c.items)
}

// DoneCount 返回已完成的条目数量
func (c *Checklist) DoneCount() int {
	n := 0
	for _, item := range c.items {
		if item.Done {
			n++
		}
	}
	return n
}

// Items 返回条目副本
func (c *Checklist) Items() []ChecklistItem {
	out := make([]ChecklistItem, len(c.items))
	copy(out, c.items)
	return out
}
