package types

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

type PanelFormat string

const (
	PanelFormatText PanelFormat = "text"
	PanelFormatHTML PanelFormat = "html"
)
