package types

type ProjectionMode string

const (
	ProjectionModeOrdered ProjectionMode = "ordered"
	ProjectionModeGrouped ProjectionMode = "grouped"
)

type Row struct {
	Index  int         `yaml:"index" json:"index"`
	Record StateRecord `yaml:"record" json:"record"`
}

type Group struct {
	Key     string       `yaml:"key" json:"key"`
	Members []Attributes `yaml:"members" json:"members"`
}

// Projection is the display-ready shape handed to the rendering layer.
// Exactly one of Rows or Groups is meaningful, as selected by Mode.
type Projection struct {
	Mode    ProjectionMode `yaml:"mode" json:"mode"`
	GroupBy string         `yaml:"group_by,omitempty" json:"group_by,omitempty"`
	Rows    []Row          `yaml:"rows,omitempty" json:"rows,omitempty"`
	Groups  []Group        `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// Group returns the members for key.
func (p Projection) Group(key string) ([]Attributes, bool) {
	for _, group := range p.Groups {
		if group.Key == key {
			return group.Members, true
		}
	}
	return nil, false
}

// Len reports the number of rows, or the number of grouped members.
func (p Projection) Len() int {
	if p.Mode == ProjectionModeOrdered {
		return len(p.Rows)
	}
	total := 0
	for _, group := range p.Groups {
		total += len(group.Members)
	}
	return total
}
