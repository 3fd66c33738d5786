package nav

import (
	"fmt"

	"go.uber.org/multierr"
)

// Registry answers whether a document id exists in the content set.
type Registry interface {
	Has(id string) bool
}

// Validate checks a sidebar and returns every problem found, combined with multierr.
// Use multierr.Errors and errors.As to inspect individual failures. A nil registry
// skips the broken reference check.
func Validate(sb Sidebar, reg Registry) error {
	v := validator{sidebar: sb.Name, reg: reg, seen: map[string]string{}}
	if err := Walk(sb.Name, sb.Items, v.visit); err != nil {
		v.errs = multierr.Append(v.errs, err)
	}
	return v.errs
}

type validator struct {
	sidebar string
	reg     Registry
	seen    map[string]string // target -> first location
	errs    error
}

func (v *validator) visit(loc string, e Entry) error {
	switch entry := e.(type) {
	case DocRef:
		v.reference(entry.ID, loc)
	case Category:
		if len(entry.Items) == 0 {
			v.errs = multierr.Append(v.errs, &EmptyCategoryError{Sidebar: v.sidebar, Label: entry.Label, Loc: loc})
		}
		if entry.Link == nil {
			return nil
		}
		switch entry.Link.Kind {
		case IndexDoc:
			v.reference(entry.Link.DocID, loc+".link")
		case IndexGenerated:
			s := entry.IndexSlug()
			if s == "" {
				v.errs = multierr.Append(v.errs, &MissingSlugError{Sidebar: v.sidebar, Label: entry.Label, Loc: loc + ".link"})
				return nil
			}
			v.unique("category/"+s, loc+".link")
		default:
			return fmt.Errorf("%w at %s: index link kind %d", ErrInvalidEntry, loc, entry.Link.Kind)
		}
	}
	return nil
}

func (v *validator) reference(id, loc string) {
	if v.reg != nil && (id == "" || !v.reg.Has(id)) {
		v.errs = multierr.Append(v.errs, &BrokenReferenceError{Sidebar: v.sidebar, ID: id, Loc: loc})
	}
	v.unique(id, loc)
}

func (v *validator) unique(target, loc string) {
	if first, dup := v.seen[target]; dup {
		v.errs = multierr.Append(v.errs, &DuplicateReferenceError{Sidebar: v.sidebar, ID: target, First: first, Second: loc})
		return
	}
	v.seen[target] = loc
}
