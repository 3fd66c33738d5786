// Package errors provides the classified error primitives used across docsite.
//
// A ClassifiedError carries a category (config, navigation, render, ...), a severity
// and structured context. Errors are built with a fluent builder:
//
//	err := errors.NavigationError("broken sidebar reference").
//		WithContext("sidebar", "docsSidebar").
//		WithContext("doc_id", "donors/how-to-donate").
//		Build()
//
// The CLI adapter maps categories to process exit codes.
package errors
