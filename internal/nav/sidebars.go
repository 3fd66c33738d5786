package nav

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// ErrDuplicateSidebar reports two sidebars sharing a name.
var ErrDuplicateSidebar = errors.New("duplicate sidebar name")

// Sidebar is a named root sequence of entries.
type Sidebar struct {
	Name  string
	Items []Entry
}

// Sidebars is an ordered set of named sidebars. The zero value is empty and usable.
type Sidebars struct {
	order  []string
	byName map[string]Sidebar
}

// NewSidebars builds a set preserving argument order.
func NewSidebars(sidebars ...Sidebar) (*Sidebars, error) {
	s := &Sidebars{byName: make(map[string]Sidebar, len(sidebars))}
	for _, sb := range sidebars {
		if err := s.add(sb); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Sidebars) add(sb Sidebar) error {
	if s.byName == nil {
		s.byName = make(map[string]Sidebar)
	}
	if _, exists := s.byName[sb.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSidebar, sb.Name)
	}
	s.order = append(s.order, sb.Name)
	s.byName[sb.Name] = sb
	return nil
}

// Names returns sidebar names in declaration order.
func (s *Sidebars) Names() []string {
	return slices.Clone(s.order)
}

// Get returns the named sidebar.
func (s *Sidebars) Get(name string) (Sidebar, bool) {
	sb, ok := s.byName[name]
	return sb, ok
}

// All returns the sidebars in declaration order.
func (s *Sidebars) All() []Sidebar {
	out := make([]Sidebar, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Len returns the number of sidebars.
func (s *Sidebars) Len() int { return len(s.order) }

// Validate validates each sidebar independently. A document may appear in
// several sidebars, but only once within each.
func (s *Sidebars) Validate(reg Registry) error {
	var errs error
	for _, sb := range s.All() {
		errs = multierr.Append(errs, Validate(sb, reg))
	}
	return errs
}

// SidebarFor returns the first sidebar that references id.
func (s *Sidebars) SidebarFor(id string) (Sidebar, bool) {
	for _, sb := range s.All() {
		if _, ok := Find(sb.Items, id); ok {
			return sb, true
		}
	}
	return Sidebar{}, false
}
