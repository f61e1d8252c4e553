// Package model defines the semantic entities the s-Java validator works on:
// primitive types, variables, methods and the lexical scope tree that binds
// names to variables while a method body is walked.
package model

import "fmt"

// Type is one of the s-Java primitive type tags
type Type string

const (
	TypeInt     Type = "int"
	TypeDouble  Type = "double"
	TypeBoolean Type = "boolean"
	TypeChar    Type = "char"
	TypeString  Type = "String"
)

// AllTypes lists the type tags in declaration order
var AllTypes = []Type{TypeInt, TypeDouble, TypeBoolean, TypeChar, TypeString}

// ParseType converts a type keyword into a Type
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeInt, TypeDouble, TypeBoolean, TypeChar, TypeString:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown type %q", s)
}

// Accepts reports whether a value of type src may be stored in a slot of type t.
// Besides equality, double accepts int and boolean accepts int or double.
func (t Type) Accepts(src Type) bool {
	if t == src {
		return true
	}
	switch t {
	case TypeDouble:
		return src == TypeInt
	case TypeBoolean:
		return src == TypeInt || src == TypeDouble
	}
	return false
}

// IsConditional reports whether a variable of this type may appear in an
// if/while condition
func (t Type) IsConditional() bool {
	return t == TypeInt || t == TypeDouble || t == TypeBoolean
}

func (t Type) String() string {
	return string(t)
}
