// Package render turns validated sidebars into the artifacts the site generator
// consumes: a routing table, sidebar HTML fragments and generated category index
// pages.
package render
