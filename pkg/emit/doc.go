// Package emit renders a catalog's name to value table in formats other
// programs can consume directly: Go constants, a C header, a YAML catalog
// document or a plain text listing. Emitters are looked up by name through a
// Registry, mirroring how callers pick an output format on the command line.
package emit
