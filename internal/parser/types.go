package parser

// Kind is the syntactic category assigned to a source line
type Kind int

const (
	KindEmpty Kind = iota
	KindComment
	KindMethodDecl
	KindIfWhileHeader
	KindCloseBrace
	KindReturn
	KindVarDecl
	KindAssignment
	KindMethodCall
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindComment:
		return "comment"
	case KindMethodDecl:
		return "method_decl"
	case KindIfWhileHeader:
		return "if_while_header"
	case KindCloseBrace:
		return "close_brace"
	case KindReturn:
		return "return"
	case KindVarDecl:
		return "var_decl"
	case KindAssignment:
		return "assignment"
	case KindMethodCall:
		return "method_call"
	default:
		return "unknown"
	}
}

// Meaningful reports whether a line of this kind counts as a statement
// when checking that a method ends with return
func (k Kind) Meaningful() bool {
	return k != KindEmpty && k != KindComment && k != KindCloseBrace
}

// ParsedLine is one classified source line
type ParsedLine struct {
	Number int // 1-based
	Kind   Kind
	Raw    string
}

// ParsedFile is the classified form of a source file
type ParsedFile struct {
	Path  string
	Lines []ParsedLine
}

// Stats counts lines per kind
func (f *ParsedFile) Stats() map[Kind]int {
	stats := make(map[Kind]int)
	for _, l := range f.Lines {
		stats[l.Kind]++
	}
	return stats
}
