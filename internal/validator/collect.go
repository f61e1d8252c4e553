package validator

import (
	"strings"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/pkg/model"
)

// collect is the first pass: globals, top-level assignments and method
// signatures. Method bodies are skipped.
func (v *Validator) collect() error {
	for i := 0; i < len(v.lines); {
		line := v.lines[i]

		switch line.Kind {
		case parser.KindEmpty, parser.KindComment:
			i++

		case parser.KindVarDecl:
			if err := v.declare(line, v.global); err != nil {
				return err
			}
			i++

		case parser.KindAssignment:
			if err := v.assign(line, v.global); err != nil {
				return err
			}
			i++

		case parser.KindMethodDecl:
			if err := v.registerMethod(line); err != nil {
				return err
			}
			end, err := v.methodEnd(i)
			if err != nil {
				return err
			}
			i = end

		case parser.KindMethodCall:
			return errorf(line.Number, "method calls are not allowed outside a method")

		case parser.KindIfWhileHeader, parser.KindReturn:
			return errorf(line.Number, "statement is only allowed inside a method")

		case parser.KindCloseBrace:
			return errorf(line.Number, "unexpected closing brace in global scope")

		default:
			return errorf(line.Number, "unexpected line kind %s", line.Kind)
		}
	}
	return nil
}

func (v *Validator) registerMethod(line parser.ParsedLine) error {
	m := parser.MethodDecl.FindStringSubmatch(line.Raw)
	if m == nil {
		return errorf(line.Number, "invalid method declaration")
	}
	name, params := m[1], m[2]

	if _, exists := v.methods[name]; exists {
		return errorf(line.Number, "method %s already declared", name)
	}

	method := model.NewMethod(name, line.Number)
	if parser.TrimSpace(params) != "" {
		for _, raw := range strings.Split(params, ",") {
			param, err := parseParam(raw, line.Number)
			if err != nil {
				return err
			}
			if err := method.AddParam(param); err != nil {
				return errorf(line.Number, "%v", err)
			}
		}
	}

	v.methods[name] = method
	return nil
}

func parseParam(raw string, lineNum int) (*model.Variable, error) {
	token := parser.TrimSpace(raw)
	m := parser.ParamToken.FindStringSubmatch(token)
	if m == nil {
		return nil, errorf(lineNum, "invalid parameter %q", token)
	}

	final := m[1] != ""
	typ, err := model.ParseType(m[2])
	if err != nil {
		return nil, errorf(lineNum, "%v", err)
	}
	name := m[3]
	if !parser.ValidIdentifier(name) {
		return nil, errorf(lineNum, "invalid parameter name %s", name)
	}

	param, err := model.NewVariable(name, typ, final, true)
	if err != nil {
		return nil, errorf(lineNum, "%v", err)
	}
	return param, nil
}

// methodEnd returns the index just past the closing brace of the method
// declared at start. A method declaration at depth 1 and every if/while
// header open a block.
func (v *Validator) methodEnd(start int) (int, error) {
	depth := 1
	for i := start + 1; i < len(v.lines); i++ {
		switch v.lines[i].Kind {
		case parser.KindMethodDecl:
			if depth == 1 {
				depth++
			}
		case parser.KindIfWhileHeader:
			depth++
		case parser.KindCloseBrace:
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, errorf(v.lines[start].Number, "method body is never closed")
}
