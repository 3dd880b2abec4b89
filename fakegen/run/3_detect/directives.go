package detect

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"

	"github.com/dave/dst"
)

// DirectivePrefix starts every comment the extractor interprets.
const DirectivePrefix = "//impfake:"

// directives holds the parsed impfake directives attached to one declaration.
type directives struct {
	defaults []defaultDirective
	group    string
	open     bool
	kind     TargetKind
}

type defaultDirective struct {
	param string
	expr  string
}

// directivesOf parses the directives in the comments attached to the given nodes.
func directivesOf(nodes ...dst.Node) (directives, error) {
	var comments []string

	for _, node := range nodes {
		if node == nil {
			continue
		}

		decs := node.Decorations()
		comments = append(comments, decs.Start.All()...)
		comments = append(comments, decs.End.All()...)
	}

	return parseDirectives(comments)
}

// parseDirectives interprets "//impfake:<verb> <args>" comment lines. Other comments are ignored.
//
//nolint:cyclop // One branch per directive verb
func parseDirectives(comments []string) (directives, error) {
	var parsed directives

	for _, comment := range comments {
		line := strings.TrimSpace(comment)
		if !strings.HasPrefix(line, DirectivePrefix) {
			continue
		}

		verb, rest, _ := strings.Cut(strings.TrimPrefix(line, DirectivePrefix), " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "default":
			def, err := parseDefault(rest)
			if err != nil {
				return directives{}, err
			}

			parsed.defaults = append(parsed.defaults, def)
		case "overload":
			if !token.IsIdentifier(rest) {
				return directives{}, fmt.Errorf("%w: overload group %q is not an identifier", ErrInvalidDirective, rest)
			}

			parsed.group = rest
		case "open":
			if rest != "" {
				return directives{}, fmt.Errorf("%w: open takes no arguments, got %q", ErrInvalidDirective, rest)
			}

			parsed.open = true
		case "kind":
			kind, err := ParseTargetKind(rest)
			if err != nil {
				return directives{}, err
			}

			parsed.kind = kind
		default:
			return directives{}, fmt.Errorf("%w: unknown directive %q", ErrInvalidDirective, line)
		}
	}

	return parsed, nil
}

// parseDefault parses "<param>=<expr>".
func parseDefault(text string) (defaultDirective, error) {
	param, expr, found := strings.Cut(text, "=")
	param = strings.TrimSpace(param)
	expr = strings.TrimSpace(expr)

	if !found || !token.IsIdentifier(param) || expr == "" {
		return defaultDirective{}, fmt.Errorf("%w: default must look like <param>=<expression>, got %q",
			ErrInvalidDirective, text)
	}

	_, err := parser.ParseExpr(expr)
	if err != nil {
		return defaultDirective{}, fmt.Errorf("%w: default for %s is not a Go expression: %w",
			ErrInvalidDirective, param, err)
	}

	return defaultDirective{param: param, expr: expr}, nil
}

// applyDefaults attaches default expressions to params. Defaults must name existing, non-variadic parameters and
// must cover a trailing run of the parameter list.
func applyDefaults(member string, params []Param, defaults []defaultDirective) error {
	for _, def := range defaults {
		index := -1

		for i, param := range params {
			if param.Name == def.param {
				index = i

				break
			}
		}

		if index < 0 {
			return fmt.Errorf("%w: %s has no parameter %q to default", ErrInvalidDirective, member, def.param)
		}

		if params[index].Variadic {
			return fmt.Errorf("%w: %s: variadic parameter %q cannot have a default",
				ErrInvalidDirective, member, def.param)
		}

		params[index].Default = def.expr
	}

	seenDefault := false

	for _, param := range params {
		if param.Default != "" {
			seenDefault = true

			continue
		}

		if seenDefault && !param.Variadic {
			return fmt.Errorf("%w: %s: parameter %q follows a defaulted parameter but has no default",
				ErrInvalidDirective, member, param.Name)
		}

		if seenDefault && param.Variadic {
			return fmt.Errorf("%w: %s: defaulted parameters cannot precede variadic %q",
				ErrInvalidDirective, member, param.Name)
		}
	}

	return nil
}
