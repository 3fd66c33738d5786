package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidEntry reports a nil entry or a type outside the Entry variants.
var ErrInvalidEntry = errors.New("invalid navigation entry")

// WalkFunc is called for every entry in pre-order. loc identifies the entry,
// e.g. "docsSidebar[1].items[2]". Returning ErrSkipChildren skips a category's items.
type WalkFunc func(loc string, e Entry) error

// ErrSkipChildren may be returned by a WalkFunc to skip a category's items.
var ErrSkipChildren = errors.New("skip children")

// Walk visits items depth-first in navigation order.
func Walk(root string, items []Entry, fn WalkFunc) error {
	for i, e := range items {
		loc := fmt.Sprintf("%s[%d]", root, i)
		if err := walkEntry(loc, e, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkEntry(loc string, e Entry, fn WalkFunc) error {
	switch v := e.(type) {
	case DocRef:
		return fn(loc, v)
	case Category:
		err := fn(loc, v)
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		if err != nil {
			return err
		}
		return Walk(loc+".items", v.Items, fn)
	default:
		return fmt.Errorf("%w at %s: %T", ErrInvalidEntry, loc, e)
	}
}

// DocIDs returns every document id the items reference, including explicit
// category index documents, in navigation order. Duplicates are kept.
func DocIDs(items []Entry) []string {
	var ids []string
	_ = Walk("", items, func(_ string, e Entry) error {
		switch v := e.(type) {
		case DocRef:
			ids = append(ids, v.ID)
		case Category:
			if v.Link != nil && v.Link.Kind == IndexDoc {
				ids = append(ids, v.Link.DocID)
			}
		}
		return nil
	})
	return ids
}

// Find returns the trail of categories leading to the first entry referencing id,
// outermost first. ok is false when id is not referenced.
func Find(items []Entry, id string) (trail []Category, ok bool) {
	for _, e := range items {
		switch v := e.(type) {
		case DocRef:
			if v.ID == id {
				return nil, true
			}
		case Category:
			if v.Link != nil && v.Link.Kind == IndexDoc && v.Link.DocID == id {
				return []Category{v}, true
			}
			if sub, found := Find(v.Items, id); found {
				return append([]Category{v}, sub...), true
			}
		}
	}
	return nil, false
}
