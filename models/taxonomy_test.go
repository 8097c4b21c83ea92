package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAlertType_CriticalCodes(t *testing.T) {
	for _, code := range []string{"SOMNOLENCIA", "DROWSINESS", "MICROSUEÑO", "MICROSLEEP", "PERCLOS_ALTO", "PERCLOS_HIGH"} {
		info := ResolveAlertType(code)
		assert.Equal(t, PriorityCritical, info.Priority, "code %s", code)
		assert.Equal(t, ColorCritical, info.Color, "code %s", code)
	}
}

func TestResolveAlertType_EnglishAndSpanishAgree(t *testing.T) {
	assert.Equal(t, ResolveAlertType("DROWSINESS"), ResolveAlertType("SOMNOLENCIA"))
	assert.Equal(t, ResolveAlertType("YAWNING"), ResolveAlertType("BOSTEZO"))
	assert.Equal(t, ResolveAlertType("HEAD_TILT"), ResolveAlertType("CABECEO"))
}

func TestResolveAlertType_CaseAndWhitespaceInsensitive(t *testing.T) {
	canonical := ResolveAlertType("SOMNOLENCIA")
	assert.Equal(t, canonical, ResolveAlertType("somnolencia"))
	assert.Equal(t, canonical, ResolveAlertType("  Somnolencia  "))
}

func TestResolveAlertType_UnderscoreSpaceVariants(t *testing.T) {
	underscore := ResolveAlertType("CABEZA_INCLINADA")
	space := ResolveAlertType("CABEZA INCLINADA")
	assert.Equal(t, underscore, space)
	assert.Equal(t, ColorHeadTilt, underscore.Color)
	assert.Equal(t, PriorityWarning, underscore.Priority)
}

func TestResolveAlertType_YawnFamily(t *testing.T) {
	for _, code := range []string{"BOSTEZO", "YAWNING", "FATIGA_BOSTEZOS"} {
		info := ResolveAlertType(code)
		assert.Equal(t, ColorYawn, info.Color, "code %s", code)
		assert.Equal(t, PriorityWarning, info.Priority, "code %s", code)
	}
}

func TestResolveAlertType_HeartRateIsInfo(t *testing.T) {
	info := ResolveAlertType("FRECUENCIA_CARDIACA_BAJA")
	assert.Equal(t, PriorityInfo, info.Priority)
	assert.Equal(t, ColorDefault, info.Color)
}

func TestResolveAlertType_UnknownCodeTitleCased(t *testing.T) {
	info := ResolveAlertType("SENSOR_FALLO_GPS")
	assert.Equal(t, "SENSOR_FALLO_GPS", info.Key)
	assert.Equal(t, "Sensor Fallo Gps", info.Label)
	assert.Equal(t, ColorDefault, info.Color)
	assert.Equal(t, PriorityInfo, info.Priority)
}

func TestResolveAlertType_EmptyCode(t *testing.T) {
	for _, code := range []string{"", "   "} {
		info := ResolveAlertType(code)
		assert.Equal(t, "DESCONOCIDA", info.Key)
		assert.Equal(t, ColorDefault, info.Color)
		assert.Equal(t, PriorityInfo, info.Priority)
	}
}

func TestKnownAlertTypes_DeduplicatedAndOrdered(t *testing.T) {
	types := KnownAlertTypes()
	assert.NotEmpty(t, types)

	seen := make(map[string]bool)
	for _, info := range types {
		assert.False(t, seen[info.Key], "duplicate key %s", info.Key)
		seen[info.Key] = true
	}

	for i := 1; i < len(types); i++ {
		assert.LessOrEqual(t, types[i-1].Priority, types[i].Priority)
	}
}
