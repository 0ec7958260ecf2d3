package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDisconnect(t *testing.T) {
	s := NewMemoryStore()

	addr, connected := s.Address()
	assert.Empty(t, addr)
	assert.False(t, connected)

	s.Connect("0xwallet")
	addr, connected = s.Address()
	assert.Equal(t, "0xwallet", addr)
	assert.True(t, connected)

	s.Disconnect()
	addr, connected = s.Address()
	assert.Empty(t, addr)
	assert.False(t, connected)
}

func TestConnectEmptyAddress(t *testing.T) {
	s := NewMemoryStore()
	s.Connect("")

	_, connected := s.Address()
	assert.False(t, connected)
}

func TestSubscribeNotify(t *testing.T) {
	s := NewMemoryStore()

	type event struct {
		address   string
		connected bool
	}
	var events []event
	cancel := s.Subscribe(func(address string, connected bool) {
		events = append(events, event{address, connected})
	})
	defer cancel()

	s.Connect("0xwallet")
	s.Disconnect()

	require.Len(t, events, 2)
	assert.Equal(t, event{"0xwallet", true}, events[0])
	assert.Equal(t, event{"", false}, events[1])
}

func TestSubscribeCancel(t *testing.T) {
	s := NewMemoryStore()

	var calls int
	cancel := s.Subscribe(func(string, bool) {
		calls++
	})

	s.Connect("0xa")
	cancel()
	s.Connect("0xb")

	assert.Equal(t, 1, calls)
}

func TestMultipleSubscribers(t *testing.T) {
	s := NewMemoryStore()

	var a, b int
	cancelA := s.Subscribe(func(string, bool) { a++ })
	defer cancelA()
	cancelB := s.Subscribe(func(string, bool) { b++ })
	defer cancelB()

	s.Connect("0xwallet")

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cancel := s.Subscribe(func(string, bool) {})
			s.Connect(fmt.Sprintf("0x%d", n))
			s.Address()
			s.Disconnect()
			cancel()
		}(i)
	}
	wg.Wait()

	_, connected := s.Address()
	assert.False(t, connected)

	s.Connect("0xfinal")
	addr, connected := s.Address()
	assert.Equal(t, "0xfinal", addr)
	assert.True(t, connected)
}
