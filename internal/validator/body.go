package validator

import (
	"github.com/rs/zerolog/log"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/pkg/model"
)

// validateBodies is the second pass: every top-level method body is walked
// in source order with its own scope chain rooted at the global scope.
func (v *Validator) validateBodies() error {
	for i := 0; i < len(v.lines); {
		if v.lines[i].Kind != parser.KindMethodDecl {
			i++
			continue
		}
		end, err := v.walkMethod(i)
		if err != nil {
			return err
		}
		i = end
	}
	return nil
}

// walkMethod validates the body of the method declared at start and returns
// the index just past its closing brace.
func (v *Validator) walkMethod(start int) (int, error) {
	decl := v.lines[start]
	m := parser.MethodDecl.FindStringSubmatch(decl.Raw)
	if m == nil {
		return 0, errorf(decl.Number, "invalid method declaration")
	}
	method, ok := v.methods[m[1]]
	if !ok {
		return 0, errorf(decl.Number, "method %s was not collected", m[1])
	}

	current := model.NewScope(v.global)
	for _, p := range method.Params() {
		if err := current.Declare(p); err != nil {
			return 0, errorf(decl.Number, "%v", err)
		}
	}

	depth := 1
	hasReturn := false
	var last *parser.ParsedLine

	for i := start + 1; i < len(v.lines); i++ {
		line := v.lines[i]
		if line.Kind.Meaningful() {
			last = &v.lines[i]
		}

		switch line.Kind {
		case parser.KindCloseBrace:
			depth--
			if depth == 0 {
				if !hasReturn || last == nil || last.Kind != parser.KindReturn {
					return 0, errorf(line.Number, "method %s must end with a return statement", method.Name)
				}
				log.Debug().
					Str("method", method.Name).
					Int("line", decl.Number).
					Msg("method body validated")
				return i + 1, nil
			}
			current = current.Parent()

		case parser.KindVarDecl:
			if err := v.declare(line, current); err != nil {
				return 0, err
			}

		case parser.KindAssignment:
			if err := v.assign(line, current); err != nil {
				return 0, err
			}

		case parser.KindMethodCall:
			if err := v.call(line, current); err != nil {
				return 0, err
			}

		case parser.KindIfWhileHeader:
			if err := v.condition(line, current); err != nil {
				return 0, err
			}
			depth++
			current = model.NewScope(current)

		case parser.KindReturn:
			hasReturn = true

		case parser.KindMethodDecl:
			return 0, errorf(line.Number, "nested method declarations are not allowed")
		}
	}

	return 0, errorf(decl.Number, "method %s body is never closed", method.Name)
}
