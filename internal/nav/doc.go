// Package nav models documentation sidebars as ordered trees of navigation entries.
//
// An Entry is either a DocRef (a leaf pointing at a content document) or a Category
// (a labelled group with an optional index page and ordered children). Trees are
// built once at startup, validated against the content registry and then shared
// read-only by every renderer. Nothing in this package mutates a tree after it is
// returned to the caller.
package nav
