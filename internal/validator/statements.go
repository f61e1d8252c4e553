package validator

import (
	"strings"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/pkg/model"
)

// declare handles a variable declaration line in scope. Only a binding in
// the same scope counts as a redeclaration.
func (v *Validator) declare(line parser.ParsedLine, scope *model.Scope) error {
	m := parser.VarDeclLine.FindStringSubmatch(line.Raw)
	if m == nil {
		return errorf(line.Number, "invalid variable declaration")
	}
	final := m[1] != ""
	typ, err := model.ParseType(m[2])
	if err != nil {
		return errorf(line.Number, "%v", err)
	}

	for _, raw := range strings.Split(m[3], ",") {
		decl := parser.TrimSpace(raw)
		tok := parser.OneVarDeclToken.FindStringSubmatch(decl)
		if tok == nil {
			return errorf(line.Number, "invalid variable declaration %q", decl)
		}
		name, value := tok[1], tok[2]

		if !parser.ValidIdentifier(name) {
			return errorf(line.Number, "invalid variable name %s", name)
		}
		if _, exists := scope.Lookup(name); exists {
			return errorf(line.Number, "variable %s already declared in this scope", name)
		}

		hasValue := value != ""
		if final && !hasValue {
			return errorf(line.Number, "final variable %s must be initialized", name)
		}
		if hasValue {
			vt, err := valueType(value, scope, line.Number)
			if err != nil {
				return err
			}
			if !typ.Accepts(vt) {
				return errorf(line.Number, "cannot assign %s to %s %s", vt, typ, name)
			}
		}

		variable, err := model.NewVariable(name, typ, final, hasValue)
		if err != nil {
			return errorf(line.Number, "%v", err)
		}
		if err := scope.Declare(variable); err != nil {
			return errorf(line.Number, "%v", err)
		}
	}
	return nil
}

// assign handles a comma separated assignment list. Targets are resolved
// through the scope chain and marked initialized in their owning scope.
func (v *Validator) assign(line parser.ParsedLine, scope *model.Scope) error {
	body := strings.TrimSuffix(parser.TrimSpace(line.Raw), ";")

	for _, raw := range strings.Split(body, ",") {
		part := parser.TrimSpace(raw)
		tok := parser.OneAssignmentToken.FindStringSubmatch(part)
		if tok == nil {
			return errorf(line.Number, "invalid assignment %q", part)
		}
		name, value := tok[1], tok[2]

		target, ok := scope.Resolve(name)
		if !ok {
			return errorf(line.Number, "variable %s is not declared", name)
		}
		if target.IsFinal() {
			return errorf(line.Number, "cannot assign to final variable %s", name)
		}

		vt, err := valueType(value, scope, line.Number)
		if err != nil {
			return err
		}
		if !target.Accepts(vt) {
			return errorf(line.Number, "cannot assign %s to %s %s", vt, target.Type(), name)
		}
		target.MarkInitialized()
	}
	return nil
}

// call checks a method call against the global method table
func (v *Validator) call(line parser.ParsedLine, scope *model.Scope) error {
	m := parser.MethodCall.FindStringSubmatch(line.Raw)
	if m == nil {
		return errorf(line.Number, "invalid method call")
	}
	name, rawArgs := m[1], m[2]

	method, ok := v.methods[name]
	if !ok {
		return errorf(line.Number, "method %s is not defined", name)
	}

	args := make([]model.Type, 0, method.Arity())
	if parser.TrimSpace(rawArgs) != "" {
		for _, raw := range strings.Split(rawArgs, ",") {
			arg := parser.TrimSpace(raw)
			if arg == "" {
				return errorf(line.Number, "empty argument in call to %s", name)
			}
			t, err := valueType(arg, scope, line.Number)
			if err != nil {
				return err
			}
			args = append(args, t)
		}
	}

	if err := method.CheckArgs(args); err != nil {
		return errorf(line.Number, "%v", err)
	}
	return nil
}
