package menu

// Definition declares a menu entry and its children in display order. An
// entry without children is a leaf action.
type Definition struct {
	Name     string       `yaml:"name"`
	Children []Definition `yaml:"children,omitempty"`
}

// DefaultDefinition returns the head unit hierarchy shipped with the
// navigator.
func DefaultDefinition() Definition {
	return Definition{
		Name: "Main Menu",
		Children: []Definition{
			{
				Name: "Settings",
				Children: []Definition{
					{
						Name:     "Display Settings",
						Children: []Definition{{Name: "Change Theme"}},
					},
					{
						Name: "Audio Settings",
						Children: []Definition{
							{Name: "Volume Control"},
							{Name: "Equalizer Settings"},
							{Name: "Bluetooth Audio"},
						},
					},
				},
			},
			{
				Name: "Media",
				Children: []Definition{
					{Name: "Radio"},
					{Name: "Bluetooth Audio"},
				},
			},
		},
	}
}

// Build constructs the default menu tree.
func Build() *Tree {
	tree, err := FromDefinition(DefaultDefinition())
	if err != nil {
		panic("menu: default definition is invalid: " + err.Error())
	}
	return tree
}
