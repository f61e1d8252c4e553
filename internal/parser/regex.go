package parser

import (
	"regexp"
	"strings"
)

const (
	typeAlt  = `(int|double|boolean|char|String)`
	identPat = `[A-Za-z_][A-Za-z0-9_]*`
)

// Line shapes. All tolerate surrounding whitespace.
var (
	CloseBrace    = compile(`^\s*}\s*$`)
	ReturnStmt    = compile(`^\s*return\s*;\s*$`)
	MethodDecl    = compile(`^\s*void\s+([A-Za-z][A-Za-z0-9_]*)\s*\((.*)\)\s*\{\s*$`)
	IfWhileHeader = compile(`^\s*(if|while)\s*\((.*)\)\s*\{\s*$`)
	VarDeclLine   = compile(`^\s*(final\s+)?` + typeAlt + `\s+(.+?)\s*;\s*$`)
	MethodCall    = compile(`^\s*([A-Za-z][A-Za-z0-9_]*)\s*\((.*)\)\s*;\s*$`)
)

// Tokens inside a line
var (
	ParamToken         = compile(`^\s*(final\s+)?` + typeAlt + `\s+(` + identPat + `)\s*$`)
	OneVarDeclToken    = compile(`^\s*(` + identPat + `)\s*(?:=\s*(.+?))?\s*$`)
	OneAssignmentToken = compile(`^\s*(` + identPat + `)\s*=\s*(.+?)\s*$`)
)

// Values
var (
	IntLiteral     = compile(`^[+-]?\d+$`)
	DoubleLiteral  = compile(`^[+-]?(?:\d+\.\d+|\d+\.|\.\d+|\d+)$`)
	BooleanLiteral = compile(`^(true|false)$`)
	CharLiteral    = compile(`^'[^']'$`)
	StringLiteral  = compile(`^"[^"]*"$`)
	Identifier     = compile(`^` + identPat + `$`)
)

// compile treats every ASCII whitespace byte, including \v, as \s
func compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(pattern, `\s`, `[\t\n\v\f\r ]`))
}

// ValidIdentifier applies the s-Java naming rules on top of Identifier:
// no bare "_", no leading "__", no leading digit.
func ValidIdentifier(name string) bool {
	if name == "" || name == "_" || strings.HasPrefix(name, "__") {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	return Identifier.MatchString(name)
}
