package value

// Kind identifies the datatype of a runtime value.
type Kind uint8

const (
	// KindNone is the none sentinel.
	KindNone Kind = iota
	// KindChar is a single codepoint.
	KindChar
	// KindInt is a 64-bit integer.
	KindInt
	// KindWord is a named token.
	KindWord
	// KindBitset is a codepoint membership set.
	KindBitset
	// KindString is plain text over series storage.
	KindString
	// KindFile is a file path over series storage.
	KindFile
	// KindURL is a URL over series storage.
	KindURL
	// KindEmail is an email address over series storage.
	KindEmail
	// KindTag is markup-tag text over series storage.
	KindTag
	// KindBinary is raw bytes over series storage; binary series never widen.
	KindBinary
	// KindLogic is a boolean, produced by the predicate verbs.
	KindLogic
)

// String returns the datatype name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindChar:
		return "char"
	case KindInt:
		return "integer"
	case KindWord:
		return "word"
	case KindBitset:
		return "bitset"
	case KindString:
		return "string"
	case KindFile:
		return "file"
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	case KindTag:
		return "tag"
	case KindBinary:
		return "binary"
	case KindLogic:
		return "logic"
	default:
		return "unknown"
	}
}

// IsAnyString reports whether k is a text datatype over series storage
// (string, file, url, email, tag).
func (k Kind) IsAnyString() bool {
	return k >= KindString && k <= KindTag
}

// IsSeries reports whether k is backed by series storage (any string or
// binary).
func (k Kind) IsSeries() bool {
	return k.IsAnyString() || k == KindBinary
}
