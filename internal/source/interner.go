package source

import (
	"sync"
)

// Interner deduplicates repeated symbol text so that a parsed tree holds one
// backing string per distinct symbol. Design files repeat the same handful of
// keywords (xy, at, layer, ...) thousands of times.
type Interner struct {
	mu   sync.Mutex
	seen map[string]string
}

func NewInterner() *Interner {
	return &Interner{
		seen: make(map[string]string),
	}
}

// Intern возвращает каноническую копию строки.
// Если строка уже была, возвращает её первое вхождение.
func (i *Interner) Intern(s string) string {
	i.mu.Lock()
	defer i.mu.Unlock()
	if c, ok := i.seen[s]; ok {
		return c
	}
	// Собственная копия, чтобы не держать исходный буфер файла.
	c := string([]byte(s))
	i.seen[c] = c
	return c
}

// InternBytes interns the byte slice as a string.
func (i *Interner) InternBytes(b []byte) string {
	return i.Intern(string(b))
}

// Len returns the number of distinct strings interned so far.
func (i *Interner) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.seen)
}
