// Package expand rewrites placeholder tokens such as {TMPL_TYPE_MAX} into the
// decimal value the catalog assigns to them.
//
// Substitution walks the catalog once, group by group and name by name,
// replacing every occurrence of a token before moving to the next name.
// Tokens that match no catalog entry are copied through untouched unless the
// engine runs in strict mode, in which case they are reported as
// UnknownPlaceholderError values. Text outside placeholder tokens is never
// interpreted.
package expand
