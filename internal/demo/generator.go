// Package demo генерирует псевдослучайные снимки для демонстрационных эндпоинтов.
// Движок surge никогда не импортирует этот пакет.
package demo

import (
	"math/rand"
	"sync"
	"time"

	"github.com/shenikar/hospital_surge_system/internal/surge"
)

var (
	festivals = []string{"", "", "", "Diwali", "Holi", "Eid", "Christmas"}
	headlines = []string{
		"Routine day",
		"Light traffic reported across the city",
		"Heavy rainfall expected tonight",
		"Highway accident with multiple injuries",
		"Partial building collapse in the old market",
		"Mass casualty drill scheduled next week",
	}
)

// DataGenerator - источник демо-снимков. Безопасен для конкурентного использования.
type DataGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewDataGenerator создает генератор; seed == 0 означает seed от текущего времени
func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{rnd: rand.New(rand.NewSource(seed))}
}

// Snapshot возвращает правдоподобный снимок, удовлетворяющий surge.Validate
func (g *DataGenerator) Snapshot(hospitalID string) surge.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	bedsTotal := g.between(50, 400)
	return surge.Snapshot{
		HospitalID:          hospitalID,
		BedsTotal:           bedsTotal,
		BedsFree:            g.between(0, bedsTotal/2),
		DoctorsOnShift:      g.between(2, 30),
		NursesOnShift:       g.between(5, 80),
		OxygenCylinders:     g.between(0, 120),
		Ventilators:         g.between(0, 25),
		IncomingEmergencies: g.between(0, 12),
		AQI:                 g.between(20, 350),
		Festival:            festivals[g.rnd.Intn(len(festivals))],
		NewsSummary:         headlines[g.rnd.Intn(len(headlines))],
	}
}

// between возвращает число в диапазоне [lo, hi]
func (g *DataGenerator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}
