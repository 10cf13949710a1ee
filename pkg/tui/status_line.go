package tui

import (
	"strings"
	"sync"
)

// statusLine 记录最近一条诊断输出，作为 log.Logger 的输出目标
// 指针在 Model 的各个副本间共享
type statusLine struct {
	mu   sync.Mutex
	last string
}

func (s *statusLine) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimRight(string(p), "\n"), "\n")
	s.mu.Lock()
	s.last = lines[len(lines)-1]
	s.mu.Unlock()
	return len(p), nil
}

// Last 返回最近一条诊断信息
func (s *statusLine) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
