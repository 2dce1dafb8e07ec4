package dispatch

// Verb enumerates the generic actions the dispatcher understands.
type Verb uint8

const (
	// VerbNone is the zero verb; dispatching it is always an error.
	VerbNone Verb = iota

	// Reflection and navigation.
	VerbHead
	VerbTail
	VerbHeadQ
	VerbTailQ
	VerbNext
	VerbBack
	VerbSkip
	VerbAt
	VerbIndex
	VerbLength

	// Comparison.
	VerbSame
	VerbEqual
	VerbStrictEqual

	// Picking and searching.
	VerbPick
	VerbPoke
	VerbFind
	VerbSelect

	// Construction.
	VerbCopy
	VerbMake
	VerbTo

	// Modification.
	VerbAppend
	VerbInsert
	VerbChange
	VerbTake
	VerbRemove
	VerbClear
	VerbSwap
	VerbReverse
	VerbSort
	VerbRandom
	VerbTrim
	VerbUppercase
	VerbLowercase

	// Binary bitwise.
	VerbAnd
	VerbOr
	VerbXor
	VerbComplement

	// PortActions is the threshold above which file- and url-kinded values
	// are delegated to the port actor rather than handled here.
	PortActions

	VerbOpen
	VerbClose
	VerbRead
	VerbWrite
	VerbQuery
	VerbDelete
	VerbRename
)

var verbNames = map[Verb]string{
	VerbHead:        "head",
	VerbTail:        "tail",
	VerbHeadQ:       "head?",
	VerbTailQ:       "tail?",
	VerbNext:        "next",
	VerbBack:        "back",
	VerbSkip:        "skip",
	VerbAt:          "at",
	VerbIndex:       "index?",
	VerbLength:      "length?",
	VerbSame:        "same?",
	VerbEqual:       "equal?",
	VerbStrictEqual: "strict-equal?",
	VerbPick:        "pick",
	VerbPoke:        "poke",
	VerbFind:        "find",
	VerbSelect:      "select",
	VerbCopy:        "copy",
	VerbMake:        "make",
	VerbTo:          "to",
	VerbAppend:      "append",
	VerbInsert:      "insert",
	VerbChange:      "change",
	VerbTake:        "take",
	VerbRemove:      "remove",
	VerbClear:       "clear",
	VerbSwap:        "swap",
	VerbReverse:     "reverse",
	VerbSort:        "sort",
	VerbRandom:      "random",
	VerbTrim:        "trim",
	VerbUppercase:   "uppercase",
	VerbLowercase:   "lowercase",
	VerbAnd:         "and",
	VerbOr:          "or",
	VerbXor:         "xor",
	VerbComplement:  "complement",
	VerbOpen:        "open",
	VerbClose:       "close",
	VerbRead:        "read",
	VerbWrite:       "write",
	VerbQuery:       "query",
	VerbDelete:      "delete",
	VerbRename:      "rename",
}

// String returns the source-level name of the verb.
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// VerbNamed resolves a verb by its source-level name. Returns VerbNone when
// the name is unknown.
func VerbNamed(name string) Verb {
	for v, n := range verbNames {
		if n == name {
			return v
		}
	}
	return VerbNone
}

// isMutating reports whether the verb modifies its target in place. The
// dispatcher refuses these on protected series before touching the engines.
func (v Verb) isMutating() bool {
	switch v {
	case VerbAppend, VerbInsert, VerbChange, VerbTake, VerbRemove, VerbClear,
		VerbSwap, VerbReverse, VerbSort, VerbPoke, VerbTrim,
		VerbUppercase, VerbLowercase:
		return true
	default:
		return false
	}
}
