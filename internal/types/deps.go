package types

// CardDependency is a custom element the card needs registered in the host UI.
type CardDependency struct {
	Tag        string `yaml:"tag" json:"tag"`
	Label      string `yaml:"label" json:"label"`
	Link       string `yaml:"link,omitempty" json:"link,omitempty"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// RegisteredElement is one entry of a host element registry snapshot.
type RegisteredElement struct {
	Tag     string `yaml:"tag"`
	Version string `yaml:"version,omitempty"`
}

type RegistrySnapshot struct {
	Elements []RegisteredElement `yaml:"elements"`
}

// RequiredCards lists the custom cards the shopping list card is built from.
var RequiredCards = []CardDependency{
	{Tag: "button-card", Label: "Button Card by @RomRider", Link: "https://github.com/custom-cards/button-card"},
	{Tag: "layout-card", Label: "Layout Card by @thomasloven", Link: "https://github.com/thomasloven/lovelace-layout-card"},
	{Tag: "collapsable-cards", Label: "Collapsable Cards by @RossMcMillan92", Link: "https://github.com/RossMcMillan92/lovelace-collapsable-cards"},
	{Tag: "bootstrap-grid-card", Label: "Bootstrap Grid Card by @ownbee", Link: "https://github.com/ownbee/bootstrap-grid-card"},
}
