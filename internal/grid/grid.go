package grid

import "fmt"

// Coord is an integer grid position. It is comparable and usable as a map key.
type Coord struct {
	X, Y int
}

// Key returns the canonical string form of a coordinate (e.g. "3,-2").
func (c Coord) Key() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Direction represents a cardinal direction in the grid
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Direction) Coord {
	switch d {
	case North:
		return Coord{c.X, c.Y - 1}
	case South:
		return Coord{c.X, c.Y + 1}
	case East:
		return Coord{c.X + 1, c.Y}
	case West:
		return Coord{c.X - 1, c.Y}
	}
	return c
}

// Neighbors returns the four grid-adjacent coordinates in N/E/S/W order.
func (c Coord) Neighbors() []Coord {
	return []Coord{
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
	}
}
