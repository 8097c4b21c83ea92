package models

import (
	"sort"
	"strings"
)

// Priority buckets for alert classification.
const (
	PriorityCritical = 1 // drowsiness, microsleep, PERCLOS
	PriorityWarning  = 2 // yawning, head tilt
	PriorityInfo     = 3 // everything else
)

// Marker colors per priority family.
const (
	ColorCritical = "#dc2626"
	ColorYawn     = "#f97316"
	ColorHeadTilt = "#eab308"
	ColorDefault  = "#6b7280"
)

// AlertTypeInfo is the canonical classification a raw alert-type code
// resolves to. Both the map and the notification feed classify through
// it, so the two views can never disagree about a code.
type AlertTypeInfo struct {
	Key      string `json:"clave"`
	Label    string `json:"etiqueta"`
	Color    string `json:"color"`
	Priority int    `json:"prioridad"`
}

// alertTypeTable maps every surface form observed from device firmware
// (legacy English tokens, Spanish tokens, underscore and space variants)
// onto one canonical entry. Display labels are Spanish, matching the
// operator-facing dashboard.
var alertTypeTable = map[string]AlertTypeInfo{
	"DROWSINESS":  {Key: "SOMNOLENCIA", Label: "Somnolencia", Color: ColorCritical, Priority: PriorityCritical},
	"SOMNOLENCIA": {Key: "SOMNOLENCIA", Label: "Somnolencia", Color: ColorCritical, Priority: PriorityCritical},

	"SOMNOLENCIA_PERCLOS": {Key: "SOMNOLENCIA_PERCLOS", Label: "Somnolencia por PERCLOS", Color: ColorCritical, Priority: PriorityCritical},
	"SOMNOLENCIA PERCLOS": {Key: "SOMNOLENCIA_PERCLOS", Label: "Somnolencia por PERCLOS", Color: ColorCritical, Priority: PriorityCritical},

	"MICROSUEÑO": {Key: "MICROSUEÑO", Label: "Microsueño", Color: ColorCritical, Priority: PriorityCritical},
	"MICROSLEEP": {Key: "MICROSUEÑO", Label: "Microsueño", Color: ColorCritical, Priority: PriorityCritical},

	"PERCLOS_ALTO": {Key: "PERCLOS_ALTO", Label: "PERCLOS Alto", Color: ColorCritical, Priority: PriorityCritical},
	"PERCLOS ALTO": {Key: "PERCLOS_ALTO", Label: "PERCLOS Alto", Color: ColorCritical, Priority: PriorityCritical},
	"PERCLOS_HIGH": {Key: "PERCLOS_ALTO", Label: "PERCLOS Alto", Color: ColorCritical, Priority: PriorityCritical},
	"PERCLOS HIGH": {Key: "PERCLOS_ALTO", Label: "PERCLOS Alto", Color: ColorCritical, Priority: PriorityCritical},

	"YAWNING": {Key: "BOSTEZO", Label: "Bostezo", Color: ColorYawn, Priority: PriorityWarning},
	"BOSTEZO": {Key: "BOSTEZO", Label: "Bostezo", Color: ColorYawn, Priority: PriorityWarning},

	"FATIGA_BOSTEZOS": {Key: "FATIGA_BOSTEZOS", Label: "Fatiga por Bostezos", Color: ColorYawn, Priority: PriorityWarning},
	"FATIGA BOSTEZOS": {Key: "FATIGA_BOSTEZOS", Label: "Fatiga por Bostezos", Color: ColorYawn, Priority: PriorityWarning},

	"HEAD_TILT": {Key: "CABECEO", Label: "Cabeceo", Color: ColorHeadTilt, Priority: PriorityWarning},
	"HEAD TILT": {Key: "CABECEO", Label: "Cabeceo", Color: ColorHeadTilt, Priority: PriorityWarning},
	"CABECEO":   {Key: "CABECEO", Label: "Cabeceo", Color: ColorHeadTilt, Priority: PriorityWarning},

	"CABEZA_INCLINADA": {Key: "CABEZA_INCLINADA", Label: "Cabeza Inclinada", Color: ColorHeadTilt, Priority: PriorityWarning},
	"CABEZA INCLINADA": {Key: "CABEZA_INCLINADA", Label: "Cabeza Inclinada", Color: ColorHeadTilt, Priority: PriorityWarning},

	"SOMNOLENCIA_CABECEOS": {Key: "SOMNOLENCIA_CABECEOS", Label: "Somnolencia por Cabeceos", Color: ColorHeadTilt, Priority: PriorityWarning},
	"SOMNOLENCIA CABECEOS": {Key: "SOMNOLENCIA_CABECEOS", Label: "Somnolencia por Cabeceos", Color: ColorHeadTilt, Priority: PriorityWarning},

	"FRECUENCIA_CARDIACA_BAJA": {Key: "FRECUENCIA_CARDIACA_BAJA", Label: "Frecuencia Cardíaca Baja", Color: ColorDefault, Priority: PriorityInfo},
	"FRECUENCIA CARDIACA BAJA": {Key: "FRECUENCIA_CARDIACA_BAJA", Label: "Frecuencia Cardíaca Baja", Color: ColorDefault, Priority: PriorityInfo},
	"FRECUENCIA_CARDIACA_ALTA": {Key: "FRECUENCIA_CARDIACA_ALTA", Label: "Frecuencia Cardíaca Alta", Color: ColorDefault, Priority: PriorityInfo},
	"FRECUENCIA CARDIACA ALTA": {Key: "FRECUENCIA_CARDIACA_ALTA", Label: "Frecuencia Cardíaca Alta", Color: ColorDefault, Priority: PriorityInfo},
}

// unknownAlertType is the bucket for empty or missing codes.
var unknownAlertType = AlertTypeInfo{
	Key:      "DESCONOCIDA",
	Label:    "Información",
	Color:    ColorDefault,
	Priority: PriorityInfo,
}

// KnownAlertTypes returns the canonical catalog entries, deduplicated
// across spelling variants and sorted by priority then key.
func KnownAlertTypes() []AlertTypeInfo {
	seen := make(map[string]bool)
	var types []AlertTypeInfo
	for _, info := range alertTypeTable {
		if seen[info.Key] {
			continue
		}
		seen[info.Key] = true
		types = append(types, info)
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Priority != types[j].Priority {
			return types[i].Priority < types[j].Priority
		}
		return types[i].Key < types[j].Key
	})
	return types
}

// ResolveAlertType classifies a raw alert-type code. Pure and total:
//  1. trim and upper-case; empty maps to the unknown bucket
//  2. direct lookup against the canonical table
//  3. retry with underscores replaced by spaces
//  4. derive a title-cased display label in the default bucket
func ResolveAlertType(code string) AlertTypeInfo {
	key := strings.ToUpper(strings.TrimSpace(code))
	if key == "" {
		return unknownAlertType
	}
	if info, ok := alertTypeTable[key]; ok {
		return info
	}
	if info, ok := alertTypeTable[strings.ReplaceAll(key, "_", " ")]; ok {
		return info
	}
	return AlertTypeInfo{
		Key:      strings.ReplaceAll(key, " ", "_"),
		Label:    titleCase(strings.ReplaceAll(key, "_", " ")),
		Color:    ColorDefault,
		Priority: PriorityInfo,
	}
}

// titleCase capitalizes the first letter of each space-separated word
// and lowercases the rest, like the dashboard's display fallback.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
