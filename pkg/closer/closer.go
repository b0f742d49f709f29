// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке LIFO при остановке приложения.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer обеспечивает потокобезопасное однократное закрытие ресурсов.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	names         []string
	funcs         []Func
	forcedTimeout time.Duration
}

// New создает Closer. forcedTimeout — время на принудительное закрытие
// оставшихся ресурсов после отмены контекста в Close.
func New(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}
	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует именованную функцию закрытия.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, name)
	c.funcs = append(c.funcs, f)
}

// Close закрывает ресурсы в обратном порядке регистрации.
// При отмене контекста оставшиеся функции запускаются параллельно
// с собственным таймаутом forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs, names := c.funcs, c.names
		c.mu.Unlock()

		var msgs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			done := make(chan error, 1)
			go func(f Func) { done <- f(ctx) }(funcs[i])

			select {
			case ferr := <-done:
				if ferr != nil {
					msgs = append(msgs, fmt.Sprintf("%s: %v", names[i], ferr))
				}
			case <-ctx.Done():
				msgs = append(msgs, c.forceClose(funcs[:i+1], names[:i+1])...)
				err = fmt.Errorf("shutdown interrupted:\n%s", strings.Join(msgs, "\n"))
				return
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}

// forceClose параллельно закрывает незавершенные ресурсы.
func (c *Closer) forceClose(funcs []Func, names []string) []string {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		msgs []string
	)
	for i, f := range funcs {
		wg.Add(1)
		go func(name string, f Func) {
			defer wg.Done()
			if ferr := f(ctx); ferr != nil {
				mu.Lock()
				msgs = append(msgs, fmt.Sprintf("%s (forced): %v", name, ferr))
				mu.Unlock()
			}
		}(names[i], f)
	}
	wg.Wait()

	return msgs
}
