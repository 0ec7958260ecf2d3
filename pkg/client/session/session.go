// Package session 管理已连接钱包地址的会话状态
// 连接/断开由调用方显式触发，其他组件通过 Subscribe 感知变化
package session

import "sync"

// Store 钱包会话存储
type Store interface {
	// Address 返回当前连接的钱包地址，未连接时第二个返回值为 false
	Address() (string, bool)
	// Connect 写入钱包地址并通知订阅者
	Connect(address string)
	// Disconnect 清空钱包地址并通知订阅者
	Disconnect()
	// Subscribe 注册变化回调，返回取消函数
	Subscribe(fn func(address string, connected bool)) (cancel func())
}

// MemoryStore 进程内会话存储，可并发访问
type MemoryStore struct {
	mu        sync.RWMutex
	address   string
	connected bool
	subs      map[int]func(string, bool)
	nextSubID int
}

// NewMemoryStore 创建进程内会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		subs: make(map[int]func(string, bool)),
	}
}

// Address 返回当前连接的钱包地址
func (s *MemoryStore) Address() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address, s.connected
}

// Connect 写入钱包地址
func (s *MemoryStore) Connect(address string) {
	s.mu.Lock()
	s.address = address
	s.connected = address != ""
	subs := s.snapshotSubs()
	connected := s.connected
	s.mu.Unlock()

	for _, fn := range subs {
		fn(address, connected)
	}
}

// Disconnect 清空钱包地址
func (s *MemoryStore) Disconnect() {
	s.mu.Lock()
	s.address = ""
	s.connected = false
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn("", false)
	}
}

// Subscribe 注册变化回调
func (s *MemoryStore) Subscribe(fn func(address string, connected bool)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs 复制回调列表，通知在锁外进行
func (s *MemoryStore) snapshotSubs() []func(string, bool) {
	out := make([]func(string, bool), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
