package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/narytree/Trees"
	"github.com/google/shlex"
	"github.com/rs/zerolog"
)

// op is one line of a script.
//
//	insert <value> [under <parent>]
//	delete <value>
//	search <value>
//	clear
type op struct {
	line int
	verb string
	args []string
}

type syntaxError struct {
	line int
	msg  string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.msg)
}

// parseScript reads ops from r. Blank lines and unquoted comments starting with '#'
// are ignored.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		words, err := shlex.Split(sc.Text())
		if err != nil {
			return nil, &syntaxError{n, err.Error()}
		} else if len(words) == 0 {
			continue
		}
		o := op{line: n, verb: strings.ToLower(words[0]), args: words[1:]}
		if err := o.validate(); err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ops, nil
}

func (o op) validate() error {
	switch o.verb {
	case "insert":
		if len(o.args) == 1 || len(o.args) == 3 && strings.EqualFold(o.args[1], "under") {
			return nil
		}
		return &syntaxError{o.line, "usage: insert <value> [under <parent>]"}
	case "delete", "search":
		if len(o.args) == 1 {
			return nil
		}
		return &syntaxError{o.line, fmt.Sprintf("usage: %s <value>", o.verb)}
	case "clear":
		if len(o.args) == 0 {
			return nil
		}
		return &syntaxError{o.line, "usage: clear"}
	}
	return &syntaxError{o.line, fmt.Sprintf("unknown command %q", o.verb)}
}

// runner applies ops to a tree of strings.
type runner struct {
	tree   *Trees.NTree[string]
	log    zerolog.Logger
	out    io.Writer
	strict bool
	failed int
}

// run every op in order. Tree errors are logged and counted, the first one is returned
// right away if strict is set.
func (r *runner) run(ops []op) error {
	for _, o := range ops {
		if err := r.apply(o); err != nil {
			var te *Trees.TreeError
			if !errors.As(err, &te) {
				return err
			}
			r.failed++
			r.log.Warn().Int("line", o.line).Str("kind", te.Kind.String()).Msg(err.Error())
			if r.strict {
				return fmt.Errorf("line %d: %w", o.line, err)
			}
		}
	}
	return nil
}

func (r *runner) apply(o op) error {
	l := r.log.With().Int("line", o.line).Str("op", o.verb).Logger()
	switch o.verb {
	case "insert":
		v := o.args[0]
		if len(o.args) == 3 {
			if err := r.tree.InsertUnder(v, o.args[2]); err != nil {
				return err
			}
			l.Debug().Str("value", v).Str("parent", o.args[2]).Uint("height", r.tree.Height()).Msg("inserted")
			return nil
		}
		if err := r.tree.Insert(v); err != nil {
			return err
		}
		l.Debug().Str("value", v).Uint("height", r.tree.Height()).Msg("inserted")
	case "delete":
		if err := r.tree.Delete(o.args[0]); err != nil {
			return err
		}
		l.Debug().Str("value", o.args[0]).Uint("size", r.tree.Size()).Msg("deleted")
	case "search":
		if n := r.tree.BreadthFirstSearch(o.args[0]); n != nil {
			fmt.Fprintf(r.out, "%s: level %d, %d children\n", o.args[0], n.Level(), n.Degree())
		} else {
			fmt.Fprintf(r.out, "%s: not found\n", o.args[0])
		}
	case "clear":
		r.tree.Clear()
		l.Debug().Msg("cleared")
	}
	return nil
}
