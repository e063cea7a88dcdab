package care

import (
	"maps"
	"strings"

	"github.com/plantcare/core/internal/domain/entities"
)

// Descriptor is the presentation metadata of a care type
type Descriptor struct {
	Type   entities.CareType `json:"type"`
	Labels map[string]string `json:"labels"`
	Icon   string            `json:"icon"`
	Color  string            `json:"color"`
}

// Label returns the descriptor label for a locale code, falling back to English
// and finally to the raw tag.
func (d Descriptor) Label(locale string) string {
	if l, ok := d.Labels[locale]; ok {
		return l
	}
	if l, ok := d.Labels[English.Code]; ok {
		return l
	}
	return string(d.Type)
}

var catalog = map[entities.CareType]Descriptor{
	entities.CareTypeWatering: {
		Labels: map[string]string{"en": "Watering", "ru": "Полив"},
		Icon:   "Droplets",
		Color:  "blue",
	},
	entities.CareTypeFertilizing: {
		Labels: map[string]string{"en": "Fertilizing", "ru": "Подкормка"},
		Icon:   "Sparkles",
		Color:  "amber",
	},
	entities.CareTypePruning: {
		Labels: map[string]string{"en": "Pruning", "ru": "Обрезка"},
		Icon:   "Scissors",
		Color:  "green",
	},
	entities.CareTypeRepotting: {
		Labels: map[string]string{"en": "Repotting", "ru": "Пересадка"},
		Icon:   "Flower2",
		Color:  "purple",
	},
	entities.CareTypeMisting: {
		Labels: map[string]string{"en": "Misting", "ru": "Опрыскивание"},
		Icon:   "CloudDrizzle",
		Color:  "cyan",
	},
}

// fallbackDescriptor is used for tags missing from the catalog
var fallbackDescriptor = Descriptor{
	Icon:  "Bell",
	Color: "gray",
}

// Describe looks up the descriptor of a care type. Unknown tags get the
// fallback descriptor labelled with the tag itself.
func Describe(careType entities.CareType) Descriptor {
	key := entities.CareType(strings.ToLower(strings.TrimSpace(string(careType))))
	if d, ok := catalog[key]; ok {
		d.Type = key
		d.Labels = maps.Clone(d.Labels)
		return d
	}
	d := fallbackDescriptor
	d.Type = careType
	d.Labels = map[string]string{English.Code: string(careType)}
	return d
}

// Catalog returns the descriptors of all known care types in a stable order
func Catalog() []Descriptor {
	out := make([]Descriptor, 0, len(entities.KnownCareTypes))
	for _, t := range entities.KnownCareTypes {
		out = append(out, Describe(t))
	}
	return out
}
