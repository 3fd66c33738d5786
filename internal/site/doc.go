// Package site runs the docsite build.
//
// A build is a fixed sequence of stages over one BuildState: discover content,
// load and validate navigation, build the route table, render sidebars, generated
// index pages and the landing feature section, verify every rendered link, and
// finally write all artifacts. Rendering stages only collect artifacts in memory;
// nothing reaches the output directory unless every earlier stage succeeded.
package site
