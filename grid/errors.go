package grid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrNoStart indicates no cell holds RoleStart.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrNoFinish indicates no cell holds RoleFinish.
	ErrNoFinish = errors.New("grid: no finish cell")
	// ErrMultipleStarts indicates more than one cell holds RoleStart.
	ErrMultipleStarts = errors.New("grid: more than one start cell")
	// ErrMultipleFinishes indicates more than one cell holds RoleFinish.
	ErrMultipleFinishes = errors.New("grid: more than one finish cell")
	// ErrSameEndpoints indicates start and finish were placed on the same cell.
	ErrSameEndpoints = errors.New("grid: start and finish must differ")
	// ErrInvalidWeight indicates a passable cell with weight < 1 or above
	// Grid.MaxWeight.
	ErrInvalidWeight = errors.New("grid: weight out of range")
	// ErrEndpointCell indicates an attempt to wall off the start or finish cell.
	ErrEndpointCell = errors.New("grid: start and finish cannot be walls")
	// ErrBadGlyph indicates an unknown character in the text format.
	ErrBadGlyph = errors.New("grid: unknown glyph")
)
