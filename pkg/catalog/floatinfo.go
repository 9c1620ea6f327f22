package catalog

// Group names of the built-in catalog.
const (
	GroupBitType    = "bittype"
	GroupType       = "type"
	GroupIdentifier = "identifier"
	GroupBool       = "bool"
	GroupSet        = "set"
)

// BitWidth is the number of per-bit codes generated for the bool and set
// groups.
const BitWidth = 64

// FloatInfo returns the built-in catalog used to expand the float inspector
// templates. Entries are numbered by position, so retiring an entry renumbers
// everything after it in the same group.
func FloatInfo() *Catalog {
	return MustNew(floatInfoGroups()...)
}

func floatInfoGroups() []Group {
	return []Group{
		NewGroup(GroupBitType,
			"TMPL_BITTYPE_MANTISSA",
			"TMPL_BITTYPE_EXPONENT",
			"TMPL_BITTYPE_SIGN",
			"TMPL_BITTYPE_REGIME",
			"TMPL_BITTYPE_OOB",
		),
		NewGroup(GroupType,
			// "TMPL_TYPE_BINARY8",
			"TMPL_TYPE_BINARY16",
			"TMPL_TYPE_BINARY32",
			"TMPL_TYPE_BINARY64",
			"TMPL_TYPE_POSIT8",
			"TMPL_TYPE_POSIT16",
			"TMPL_TYPE_POSIT32",
			"TMPL_TYPE_POSIT64",

			"TMPL_TYPE_MAX",
		),
		NewGroup(GroupIdentifier,
			"TMPL_IDENTIFIER_SIGN",
			"TMPL_IDENTIFIER_EXPONENT",
			"TMPL_IDENTIFIER_MANTISSA",
			"TMPL_IDENTIFIER_MBITS",
			"TMPL_IDENTIFIER_REGIME",
			"TMPL_IDENTIFIER_NORMALIZED",
			"TMPL_IDENTIFIER_EXPBIAS",
			"TMPL_IDENTIFIER_MAX",

			"TMPL_STRCODE_BITSTRING",
			"TMPL_STRCODE_BYTES_PRETTY",
			"TMPL_STRCODE_URLHASH",
			"TMPL_STRCODE_TYPENAME",
			"TMPL_STRCODE_TYPENAME_LONG",
			"TMPL_STRCODE_EXACT_BASE10",
			"TMPL_STRCODE_EXACT_BASE2",
			"TMPL_STRCODE_MATH",
			"TMPL_STRCODE_MAX",
		),
		NewGroup(GroupBool,
			"TMPL_BOOL_IS_NORMAL",
			"TMPL_BOOL_IS_DENORMAL",
			"TMPL_BOOL_IS_FRACTION",
			"TMPL_BOOL_IS_INTEGER",
			"TMPL_BOOL_IS_IEEE754",
			"TMPL_BOOL_IS_POSIT",
			"TMPL_BOOL_IS_ANY",
		).WithSequence("TMPL_INT_BITTYPE_", BitWidth),
		NewGroup(GroupSet,
			"TMPL_SET_ZERO",
			"TMPL_SET_ONE",
			"TMPL_SET_NAR",
			"TMPL_SET_INF",
			"TMPL_SET_QNAN",
			"TMPL_SET_SNAN",
			"TMPL_SET_MIN",
			"TMPL_SET_MAX",
			"TMPL_SET_EPS",
			"TMPL_SET_DENORM_MIN",
			"TMPL_SET_NEGATE",
			"TMPL_SET_PREV",
			"TMPL_SET_NEXT",
			"TMPL_SET_MANTISSA_INCREMENT",
			"TMPL_SET_MANTISSA_DECREMENT",
			"TMPL_SET_EXPONENT_INCREMENT",
			"TMPL_SET_EXPONENT_DECREMENT",
			"TMPL_SET_REGIME_INCREMENT",
			"TMPL_SET_REGIME_DECREMENT",
			"TMPL_SET_REPRSTR",
		).WithSequence("TMPL_SET_BIT_FLIP_", BitWidth),
	}
}
