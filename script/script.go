// Package script parses the line-oriented operation scripts replayed by the playground.
//
// A script holds one operation per line: a name followed by whitespace separated
// arguments. Arguments may be double-quoted to keep spaces, and a backslash inside
// quotes escapes the next character. A '#' outside quotes starts a comment.
package script

import (
	"bufio"
	"io"
	"strings"

	"github.com/alglib/alglib/filesystem"
	"github.com/cockroachdb/errors"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("script syntax error")

// Op is a single parsed operation.
type Op struct {
	// Line is the 1-based line the operation was read from.
	Line int      `json:"line"`
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// String renders the operation back into script form.
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	for _, arg := range o.Args {
		b.WriteByte(' ')
		if arg == "" || strings.ContainsAny(arg, " \t\"#\\") {
			b.WriteByte('"')
			b.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(arg))
			b.WriteByte('"')
			continue
		}
		b.WriteString(arg)
	}
	return b.String()
}

// Parse reads every operation from r. Names are lower-cased.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields, err := split(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(fields) == 0 {
			continue
		}

		ops = append(ops, Op{
			Line: line,
			Name: strings.ToLower(fields[0]),
			Args: fields[1:],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}

	return ops, nil
}

// ParseString is Parse over an in-memory script.
func ParseString(s string) ([]Op, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses the script at path on the active filesystem backend.
func ParseFile(path string) ([]Op, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open script %s", path)
	}
	defer f.Close()

	ops, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return ops, nil
}

func split(line string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		inField bool
		quoted  bool
	)

	flush := func() {
		if inField {
			fields = append(fields, current.String())
			current.Reset()
			inField = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quoted && r == '\\':
			if i+1 == len(runes) {
				return nil, errors.Wrap(ErrSyntax, "dangling escape")
			}
			i++
			current.WriteRune(runes[i])
		case quoted && r == '"':
			quoted = false
		case quoted:
			current.WriteRune(r)
		case r == '"':
			quoted, inField = true, true
		case r == '#':
			flush()
			return fields, nil
		case r == ' ' || r == '\t' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
			inField = true
		}
	}

	if quoted {
		return nil, errors.Wrap(ErrSyntax, "unterminated quote")
	}
	flush()
	return fields, nil
}
