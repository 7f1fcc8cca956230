package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCulturalAdviceIndia(t *testing.T) {
	g := CulturalAdvice("Jaipur", nil)

	assert.Equal(t, "Jaipur", g.Destination)
	assert.NotEmpty(t, g.GeneralDressCode)
	assert.NotEmpty(t, g.ReligiousSites)
	assert.NotEmpty(t, g.EtiquetteTips)
	// Rajasthan cities get the color guidance.
	assert.NotEmpty(t, g.ColorPreferences)
	// No business activity, no business attire.
	assert.Empty(t, g.BusinessAttire)
}

func TestCulturalAdviceActivityModifiers(t *testing.T) {
	g := CulturalAdvice("Delhi", []string{"Business", "Temple"})

	assert.NotEmpty(t, g.BusinessAttire)

	found := false
	for _, tip := range g.ReligiousSites {
		if tip == "Pack extra modest clothing for multiple temple visits" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCulturalAdviceUnknownDestination(t *testing.T) {
	g := CulturalAdvice("Reykjavik", nil)

	// Unknown destinations return empty but non-nil lists.
	assert.NotNil(t, g.GeneralDressCode)
	assert.Empty(t, g.GeneralDressCode)
	assert.NotNil(t, g.EtiquetteTips)
	assert.Empty(t, g.EtiquetteTips)
}

func TestCulturalAdviceCoastalFabrics(t *testing.T) {
	g := CulturalAdvice("Kerala", nil)
	assert.NotEmpty(t, g.Fabrics)
}

func TestLocalCustomsNote(t *testing.T) {
	assert.Contains(t, LocalCustomsNote("Goa"), "Beachwear")
	assert.Contains(t, LocalCustomsNote("rajasthan"), "modestly")
	assert.Equal(t,
		"No specific dress code information, but it's always wise to dress respectfully.",
		LocalCustomsNote("Paris"))
}
