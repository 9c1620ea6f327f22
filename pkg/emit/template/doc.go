// Package template defines the template engine contract emitters render
// through. Adapters live in sub-packages.
package template
