package validator

import (
	"strings"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/pkg/model"
)

// valueType resolves the type of a literal or an initialized variable.
// Int is tested before double since every int literal is also a double one.
func valueType(value string, scope *model.Scope, line int) (model.Type, error) {
	value = parser.TrimSpace(value)

	switch {
	case parser.IntLiteral.MatchString(value):
		return model.TypeInt, nil
	case parser.DoubleLiteral.MatchString(value):
		return model.TypeDouble, nil
	case parser.BooleanLiteral.MatchString(value):
		return model.TypeBoolean, nil
	case parser.CharLiteral.MatchString(value):
		return model.TypeChar, nil
	case parser.StringLiteral.MatchString(value):
		return model.TypeString, nil
	case parser.Identifier.MatchString(value):
		v, err := initialized(value, scope, line)
		if err != nil {
			return "", err
		}
		return v.Type(), nil
	}
	return "", errorf(line, "invalid value %s", value)
}

func initialized(name string, scope *model.Scope, line int) (*model.Variable, error) {
	v, ok := scope.Resolve(name)
	if !ok {
		return nil, errorf(line, "variable %s is not declared", name)
	}
	if !v.IsInitialized() {
		return nil, errorf(line, "variable %s may not be initialized", name)
	}
	return v, nil
}

// condition checks an if/while header. A condition is a ||/&& chain of
// boolean or numeric literals and initialized int, double or boolean
// variables.
func (v *Validator) condition(line parser.ParsedLine, scope *model.Scope) error {
	m := parser.IfWhileHeader.FindStringSubmatch(line.Raw)
	if m == nil {
		return errorf(line.Number, "invalid if/while statement")
	}
	return checkCondition(m[2], scope, line.Number)
}

func checkCondition(cond string, scope *model.Scope, line int) error {
	for _, disjunct := range strings.Split(cond, "||") {
		for _, raw := range strings.Split(disjunct, "&&") {
			el := parser.TrimSpace(raw)

			switch {
			case el == "":
				return errorf(line, "invalid condition: empty element")
			case parser.BooleanLiteral.MatchString(el),
				parser.IntLiteral.MatchString(el),
				parser.DoubleLiteral.MatchString(el):
				continue
			case parser.Identifier.MatchString(el):
				v, err := initialized(el, scope, line)
				if err != nil {
					return err
				}
				if !v.Type().IsConditional() {
					return errorf(line, "condition variable %s must be boolean, int or double, got %s", el, v.Type())
				}
			default:
				return errorf(line, "invalid condition element %s", el)
			}
		}
	}
	return nil
}
