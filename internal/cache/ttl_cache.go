package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// TTLCache 는 항목마다 만료 시간을 두고 최대 크기를 넘으면 가장 오래 안 쓴 항목을 버리는 캐시다.
// 요청 제한 미들웨어의 윈도별 카운터 저장소로 쓰인다.
type TTLCache[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	order   *list.List
	items   map[K]*list.Element
	now     func() time.Time
}

// NewTTLCache 는 만료 시간과 최대 크기를 갖는 TTLCache 를 생성한다.
func NewTTLCache[K comparable, V any](maxSize int, ttl time.Duration) *TTLCache[K, V] {
	if maxSize <= 0 {
		maxSize = 1
	}
	if ttl <= 0 {
		ttl = time.Second
	}
	return &TTLCache[K, V]{
		ttl:     ttl,
		maxSize: maxSize,
		order:   list.New(),
		items:   make(map[K]*list.Element, maxSize),
		now:     time.Now,
	}
}

// Get 은 만료되지 않은 값을 반환한다.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent := c.live(key); ent != nil {
		return ent.value, true
	}
	var zero V
	return zero, false
}

// Set 은 값을 저장하고 만료 시간을 갱신한다.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// Modify 는 현재 값(없거나 만료됐으면 zero, false)으로 fn 을 호출해 결과를 원자적으로 저장한다.
// 기존 항목의 만료 시간은 연장하지 않는다.
func (c *TTLCache[K, V]) Modify(key K, fn func(current V, exists bool) V) (V, bool) {
	if fn == nil {
		var zero V
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent := c.live(key); ent != nil {
		ent.value = fn(ent.value, true)
		return ent.value, true
	}

	var zero V
	value := fn(zero, false)
	c.store(key, value)
	return value, true
}

// Len 은 저장된 항목 수를 반환한다. 만료됐지만 아직 정리되지 않은 항목도 포함한다.
func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// live 는 만료되지 않은 항목을 최근 사용으로 표시하고 반환한다. 만료 항목은 제거한다.
func (c *TTLCache[K, V]) live(key K) *entry[K, V] {
	element, ok := c.items[key]
	if !ok {
		return nil
	}
	ent := element.Value.(*entry[K, V])
	if c.now().After(ent.expiresAt) {
		c.removeElement(element)
		return nil
	}
	c.order.MoveToFront(element)
	return ent
}

func (c *TTLCache[K, V]) store(key K, value V) {
	expiresAt := c.now().Add(c.ttl)
	if element, ok := c.items[key]; ok {
		ent := element.Value.(*entry[K, V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.order.MoveToFront(element)
		return
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, expiresAt: expiresAt})
	for len(c.items) > c.maxSize {
		oldest := c.order.Back()
		if oldest == nil {
			return
		}
		c.removeElement(oldest)
	}
}

func (c *TTLCache[K, V]) removeElement(element *list.Element) {
	c.order.Remove(element)
	delete(c.items, element.Value.(*entry[K, V]).key)
}
