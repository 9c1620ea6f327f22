// Package catalog declares the enumeration groups the expander knows about.
// A Catalog is an ordered list of groups; each group is an ordered list of
// placeholder names numbered from 1 by position, independently of every other
// group. Catalogs are validated once at construction and never mutated
// afterwards, so a single value can be shared by any number of engines.
//
// FloatInfo returns the built-in catalog. Additional catalogs can be declared
// in Go with New or loaded from JSON/YAML documents with LoadFS.
package catalog
