package gridio

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/staggrid/grid1d"
)

// ErrInvalidDescription indicates a structurally invalid description.
var ErrInvalidDescription = errors.New("gridio: invalid grid description")

var validate = validator.New()

// Description is the serializable form of a StaggeredGrid.
// Exactly one of Positions and Uniform must be set.
type Description struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty" msgpack:"name,omitempty"`
	Units string `yaml:"units,omitempty" json:"units,omitempty" msgpack:"units,omitempty"`

	NBulkCells int       `yaml:"nbulk_cells,omitempty" json:"nbulk_cells,omitempty" msgpack:"nbulk_cells,omitempty" validate:"gte=0,excluded_with=Uniform"`
	ILowerWall int       `yaml:"ilower_wall,omitempty" json:"ilower_wall,omitempty" msgpack:"ilower_wall,omitempty" validate:"gte=0,excluded_with=Uniform"`
	Positions  []float64 `yaml:"positions,omitempty" json:"positions,omitempty" msgpack:"positions,omitempty" validate:"required_without=Uniform,excluded_with=Uniform"`

	Uniform *UniformSpec `yaml:"uniform,omitempty" json:"uniform,omitempty" msgpack:"uniform,omitempty" validate:"omitempty"`
}

// UniformSpec holds the arguments of grid1d.Uniform. The upper limits keep
// every accepted spec within grid1d.MaxUniformPoints.
type UniformSpec struct {
	Cells  int     `yaml:"cells" json:"cells" msgpack:"cells" validate:"gte=0,max=33554432"`
	Ghosts int     `yaml:"ghosts" json:"ghosts" msgpack:"ghosts" validate:"gte=0,max=8388608"`
	Lower  float64 `yaml:"lower" json:"lower" msgpack:"lower"`
	Upper  float64 `yaml:"upper" json:"upper" msgpack:"upper"`
}

// Validate checks the structure of d. It does not build the grid.
func (d *Description) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s fails %q", ErrInvalidDescription, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return nil
}

// Build validates d and constructs the grid it describes. grid1d errors are
// wrapped, so errors.Is(err, grid1d.ErrNonMonotonic) and friends still hold.
func (d *Description) Build() (*grid1d.StaggeredGrid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	var (
		g   *grid1d.StaggeredGrid
		err error
	)
	if u := d.Uniform; u != nil {
		g, err = grid1d.Uniform(u.Cells, u.Ghosts, u.Lower, u.Upper)
	} else {
		g, err = grid1d.New(d.NBulkCells, d.ILowerWall, d.Positions)
	}
	if err != nil {
		return nil, fmt.Errorf("gridio: build %q: %w", d.Name, err)
	}
	return g, nil
}

// Describe returns the explicit description of g.
func Describe(g *grid1d.StaggeredGrid) *Description {
	return &Description{
		NBulkCells: g.NCells(),
		ILowerWall: g.LowerWallIndex(),
		Positions:  g.Positions(),
	}
}

// Summary is a flattened, printable view of a built grid.
type Summary struct {
	Name       string    `yaml:"name,omitempty" json:"name,omitempty"`
	NCells     int       `yaml:"ncells" json:"ncells"`
	Lower      float64   `yaml:"lower" json:"lower"`
	Upper      float64   `yaml:"upper" json:"upper"`
	Span       float64   `yaml:"span" json:"span"`
	Walls      []float64 `yaml:"walls,flow" json:"walls"`
	Centers    []float64 `yaml:"centers,flow" json:"centers"`
	WallBulk   [2]int    `yaml:"wall_bulk,flow" json:"wall_bulk"`
	CenterBulk [2]int    `yaml:"center_bulk,flow" json:"center_bulk"`
}

// Summarize collects the queries of g into a Summary.
func Summarize(name string, g *grid1d.StaggeredGrid) Summary {
	wr, cr := g.BulkRange(grid1d.Walls), g.BulkRange(grid1d.Centers)
	return Summary{
		Name:       name,
		NCells:     g.NCells(),
		Lower:      g.Lower(),
		Upper:      g.Upper(),
		Span:       g.Span(),
		Walls:      g.At(grid1d.Walls),
		Centers:    g.At(grid1d.Centers),
		WallBulk:   [2]int{wr.Lower, wr.Upper},
		CenterBulk: [2]int{cr.Lower, cr.Upper},
	}
}
