package demo

import (
	"testing"

	"github.com/shenikar/hospital_surge_system/internal/surge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_AlwaysValid(t *testing.T) {
	g := NewDataGenerator(42)
	for i := 0; i < 500; i++ {
		s := g.Snapshot("HOSP-DEMO")
		require.NoError(t, surge.Validate(s))
		assert.Equal(t, "HOSP-DEMO", s.HospitalID)
		assert.LessOrEqual(t, s.BedsFree, s.BedsTotal/2)
	}
}

func TestSnapshot_SeedIsReproducible(t *testing.T) {
	a := NewDataGenerator(7)
	b := NewDataGenerator(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Snapshot("X"), b.Snapshot("X"))
	}
}
