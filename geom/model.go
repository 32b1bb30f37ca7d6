package geom

import (
	"gopkg.in/yaml.v3"
)

// GeomData is the data dictionary handed to evaluators: everything an
// evaluation algorithm needs to know about one geometry. Concrete geometry
// types decide how the fields are filled; evaluators treat the whole thing
// as read-only.
type GeomData struct {
	Degree    []int       `yaml:"degree" json:"degree"`
	Knots     [][]float64 `yaml:"knotvector" json:"knotvector"`
	Size      []int       `yaml:"size,omitempty" json:"size,omitempty"`
	Dimension int         `yaml:"dimension" json:"dimension"`
	Rational  bool        `yaml:"rational,omitempty" json:"rational,omitempty"`
	CtrlPts   []Point     `yaml:"ctrlpts" json:"ctrlpts"`
	Weights   []float64   `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// Clone produces an independent copy, for evaluators that need scratch
// space without breaking the no-mutation contract.
func (gd *GeomData) Clone() *GeomData {
	if gd == nil {
		return nil
	}

	out := &GeomData{
		Dimension: gd.Dimension,
		Rational:  gd.Rational,
	}

	out.Degree = append(out.Degree, gd.Degree...)
	out.Size = append(out.Size, gd.Size...)
	out.Weights = append(out.Weights, gd.Weights...)

	for _, kv := range gd.Knots {
		out.Knots = append(out.Knots, append([]float64{}, kv...))
	}

	for _, pt := range gd.CtrlPts {
		out.CtrlPts = append(out.CtrlPts, append(Point{}, pt...))
	}

	return out
}

func (gd *GeomData) Dump() (d []byte, err error) {
	d, err = yaml.Marshal(gd)

	return
}

func LoadGeomData(d []byte) (gd *GeomData, err error) {
	gd = &GeomData{}
	err = yaml.Unmarshal(d, gd)

	return
}
