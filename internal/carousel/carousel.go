package carousel

import (
	"errors"
	"strconv"

	"artistryprime-go/internal/model"
)

var ErrEmpty = errors.New("carousel has no projects")

// Carousel points at one entry of a fixed, non-empty project list and
// wraps around at both ends.
type Carousel struct {
	projects []model.Project
	position int
}

func New(projects []model.Project) (*Carousel, error) {
	if len(projects) == 0 {
		return nil, ErrEmpty
	}
	return &Carousel{projects: projects}, nil
}

// At returns a carousel positioned at pos, normalized into [0, Len()).
func At(projects []model.Project, pos int) (*Carousel, error) {
	c, err := New(projects)
	if err != nil {
		return nil, err
	}
	c.position = c.wrap(pos)
	return c, nil
}

func (c *Carousel) Len() int {
	return len(c.projects)
}

func (c *Carousel) Position() int {
	return c.position
}

func (c *Carousel) Current() model.Project {
	return c.projects[c.position]
}

func (c *Carousel) Next() {
	c.position = c.NextPosition()
}

func (c *Carousel) Previous() {
	c.position = c.PreviousPosition()
}

// NextPosition reports where Next would move without moving.
func (c *Carousel) NextPosition() int {
	return (c.position + 1) % len(c.projects)
}

func (c *Carousel) PreviousPosition() int {
	return (c.position - 1 + len(c.projects)) % len(c.projects)
}

func (c *Carousel) wrap(pos int) int {
	n := len(c.projects)
	return ((pos % n) + n) % n
}

// ParsePosition reads a position from a query value. Missing or malformed
// values fall back to 0; the result is not yet wrapped.
func ParsePosition(raw string) int {
	if raw == "" {
		return 0
	}
	pos, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return pos
}
