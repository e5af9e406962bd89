package ast

import "strconv"

// Exp is a node of the fully-resolved expression tree. Concrete types: Id,
// Lit, App, Op.
type Exp interface {
	expNode()
	// render produces the canonical display of the node in a context whose
	// precedence is prec (0 = top level; see §4.3.4). String() is render(0).
	render(prec int) string
	String() string
}

// Id is a resolved identifier.
type Id struct {
	Name string
}

func (Id) expNode()                 {}
func (i Id) render(prec int) string { return i.Name }
func (i Id) String() string         { return i.render(0) }

// Lit is an integer literal.
type Lit struct {
	Value int64
}

func (Lit) expNode()                 {}
func (l Lit) render(prec int) string { return strconv.FormatInt(l.Value, 10) }
func (l Lit) String() string         { return l.render(0) }

// App is a function application, possibly hidden.
type App struct {
	Fn  Exp
	Arg Arg[Exp]
}

func (App) expNode() {}

func (a App) render(prec int) string {
	var s string
	if a.Arg.Hiding == Hidden {
		s = a.Fn.render(1) + " {" + a.Arg.Value.render(0) + "}"
	} else {
		s = a.Fn.render(1) + " " + a.Arg.Value.render(2)
	}
	if prec > 1 {
		return "(" + s + ")"
	}
	return s
}

func (a App) String() string { return a.render(0) }

// Op is a fully-resolved mixfix application.
type Op struct {
	Parts  []string
	Args   []Exp
	Fixity Fixity
}

func (Op) expNode() {}

func (o Op) render(prec int) string {
	args := make([]string, len(o.Args))
	for i, e := range o.Args {
		args[i] = e.render(1)
	}
	s := interleave(o.Parts, args, o.Fixity)
	closed := o.Fixity == FixClosed
	if !closed && prec > 0 {
		return "(" + s + ")"
	}
	return s
}

func (o Op) String() string { return o.render(0) }
