/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package schema

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type pathAST struct {
	Elements []string `parser:"@Ident ( Sep @Ident )*"`
}

type constraintNameAST struct {
	PathType string `parser:"@Ident Dot"`
	Property string `parser:"@Ident Dot"`
	Action   string `parser:"@Ident"`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9]*(_[a-zA-Z0-9]+)*`},
	{Name: "Sep", Pattern: `__`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var (
	pathParser = participle.MustBuild[pathAST](
		participle.Lexer(pathLexer),
		participle.Elide("Whitespace"),
	)
	constraintNameParser = participle.MustBuild[constraintNameAST](
		participle.Lexer(pathLexer),
		participle.Elide("Whitespace"),
	)
)

// Splits path like `name__value` or `owner__name` into its elements
func SplitPath(path string) ([]string, error) {
	ast, err := pathParser.ParseString("", path)
	if err != nil {
		return nil, fmt.Errorf("%w: «%s»: %w", ErrUnknownSchemaPath, path, err)
	}
	return ast.Elements, nil
}

// Resolves uniqueness constraint path of the node schema.
//
// Accepted forms: `attr`, `attr__value`, `rel`, `rel__peerattr`.
// Any other form or unknown field is ErrUnknownSchemaPath
func ParseAttributePath(n *NodeSchema, path string) (AttributePath, error) {
	elements, err := SplitPath(path)
	if err != nil {
		return AttributePath{}, err
	}
	if len(elements) > 2 {
		return AttributePath{}, fmt.Errorf("%v: %w: «%s»: too many elements", n, ErrUnknownSchemaPath, path)
	}
	property := ""
	if len(elements) == 2 {
		property = elements[1]
	}

	if a, err := n.Attribute(elements[0]); err == nil {
		if property == "" {
			property = PropertyValue
		}
		if property != PropertyValue {
			return AttributePath{}, fmt.Errorf("%v: %w: «%s»: unknown attribute property «%s»", n, ErrUnknownSchemaPath, path, property)
		}
		return AttributePath{Attribute: a, AttributeProperty: property}, nil
	}
	if r, err := n.Relationship(elements[0]); err == nil {
		return AttributePath{Relationship: r, PeerAttribute: property}, nil
	}
	return AttributePath{}, fmt.Errorf("%v: %w: «%s»", n, ErrUnknownSchemaPath, path)
}

// Parses dotted constraint name like `attribute.regex.update`
func ParseConstraintName(name string) (ConstraintName, error) {
	ast, err := constraintNameParser.ParseString("", name)
	if err != nil {
		return ConstraintName{}, fmt.Errorf("%w: «%s»: %w", ErrInvalidConstraintName, name, err)
	}
	res := ConstraintName{PathType: PathType(ast.PathType), Property: ast.Property, Action: ast.Action}
	switch res.PathType {
	case PathTypeNode, PathTypeAttribute, PathTypeRelationship:
	default:
		return ConstraintName{}, fmt.Errorf("%w: «%s»: unknown path type «%s»", ErrInvalidConstraintName, name, ast.PathType)
	}
	return res, nil
}
