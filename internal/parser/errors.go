package parser

import "fmt"

// SyntaxError reports a line that does not fit any s-Java statement shape
type SyntaxError struct {
	Line   int
	Raw    string
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Line %d: %s", e.Line, e.Raw)
	}
	return fmt.Sprintf("Line %d: %s: %s", e.Line, e.Reason, e.Raw)
}

func syntaxErr(line int, raw, reason string) *SyntaxError {
	return &SyntaxError{Line: line, Raw: raw, Reason: reason}
}
