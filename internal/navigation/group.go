package navigation

// Resource keys the presentation layer uses to format group and item
// automation names.
const (
	HeaderAutomationNameFormatKey = "NavCategoryHeader_AutomationNameFormat"
	ItemAutomationNameFormatKey   = "NavCategoryItem_AutomationNameFormat"
)

// Group is a read-only projection of the manifest for one menu group:
// the group's presentation resource keys plus the ordered subsequence of
// records whose group type matches.
type Group struct {
	Type                  CategoryGroupType `json:"type"`
	HeaderResourceKey     string            `json:"header_resource_key"`
	ModeResourceKey       string            `json:"mode_resource_key"`
	AutomationResourceKey string            `json:"automation_resource_key"`
	Categories            []Category        `json:"categories"`
}

type groupDefinition struct {
	headerKey     string
	modeKey       string
	automationKey string
}

var groupDefinitions = map[CategoryGroupType]groupDefinition{
	GroupCalculator: {"CalculatorModeTextCaps", "CalculatorModeText", "CalculatorModePluralText"},
	GroupConverter:  {"ConverterModeTextCaps", "ConverterModeText", "ConverterModePluralText"},
}

// BuildGroup filters the manifest into a group view, preserving manifest
// order. An unknown group type yields an empty view with no resource keys.
func (m *Manifest) BuildGroup(group CategoryGroupType) Group {
	def := groupDefinitions[group]
	view := Group{
		Type:                  group,
		HeaderResourceKey:     def.headerKey,
		ModeResourceKey:       def.modeKey,
		AutomationResourceKey: def.automationKey,
		Categories:            []Category{},
	}

	for _, c := range m.categories {
		if c.Group == group {
			view.Categories = append(view.Categories, c)
		}
	}
	return view
}

// Menu assembles the navigation menu: the calculator group followed by the
// converter group, both always present even when empty.
func (m *Manifest) Menu() []Group {
	return []Group{
		m.BuildGroup(GroupCalculator),
		m.BuildGroup(GroupConverter),
	}
}
