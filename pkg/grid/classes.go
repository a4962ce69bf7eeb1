package grid

import "strings"

// Classes names the symbolic style classes attached to each slot of the tree.
type Classes struct {
	Section     string `json:"section"`
	Container   string `json:"container"`
	Row         string `json:"row"`
	Item        string `json:"item"`
	IconWrapper string `json:"iconWrapper"`
	Icon        string `json:"icon"`
	Body        string `json:"body"`
}

// Class slot names, used as keys by theme overrides.
const (
	SlotSection     = "section"
	SlotContainer   = "container"
	SlotRow         = "row"
	SlotItem        = "item"
	SlotIconWrapper = "icon_wrapper"
	SlotIcon        = "icon"
	SlotBody        = "body"
)

// DefaultClasses returns the class names used by the docs theme.
func DefaultClasses() Classes {
	return Classes{
		Section:     "features",
		Container:   "container",
		Row:         "row",
		Item:        "col col--4",
		IconWrapper: "text--center",
		Icon:        "featureSvg",
		Body:        "text--center padding-horiz--md",
	}
}

// Merge returns c with every non-empty field of override applied.
func (c Classes) Merge(override Classes) Classes {
	pick := func(base, next string) string {
		if trimmed := strings.TrimSpace(next); trimmed != "" {
			return trimmed
		}
		return base
	}
	return Classes{
		Section:     pick(c.Section, override.Section),
		Container:   pick(c.Container, override.Container),
		Row:         pick(c.Row, override.Row),
		Item:        pick(c.Item, override.Item),
		IconWrapper: pick(c.IconWrapper, override.IconWrapper),
		Icon:        pick(c.Icon, override.Icon),
		Body:        pick(c.Body, override.Body),
	}
}

// ClassesFromSlots builds a Classes override from a slot-keyed map. Unknown
// slots are ignored.
func ClassesFromSlots(slots map[string]string) Classes {
	return Classes{
		Section:     slots[SlotSection],
		Container:   slots[SlotContainer],
		Row:         slots[SlotRow],
		Item:        slots[SlotItem],
		IconWrapper: slots[SlotIconWrapper],
		Icon:        slots[SlotIcon],
		Body:        slots[SlotBody],
	}
}
