// Package jitter добавляет случайность в интервалы повторных попыток,
// чтобы избежать синхронных всплесков запросов к внешним сервисам.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultFactor — стандартный коэффициент джиттера (50%)
const DefaultFactor = 0.5

var (
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
	rngMu sync.Mutex
)

// Duration возвращает d со случайной добавкой в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	rngMu.Lock()
	add := rng.Float64() * factor * float64(d)
	rngMu.Unlock()
	return d + time.Duration(add)
}

// Backoff вычисляет экспоненциальную задержку с джиттером для попытки attempt
// (нумерация с нуля). Задержка удваивается от base и ограничивается max.
func Backoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= max {
			d = max
			break
		}
	}
	return Duration(d, factor)
}
