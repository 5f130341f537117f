package main

import (
	"fmt"

	"github.com/npillmayer/assoc/synced"
	"github.com/pterm/pterm"
)

// command is a D.REPL command with named arguments.
type command struct {
	name string
	args []string
	help string
	run  func(*Intp, []Token) error
}

var commands []command

func init() {
	commands = []command{
		{"add", []string{"a", "b"}, "append association (a,b)", cmdAdd},
		{"insert", []string{"i", "a", "b"}, "insert association (a,b) at position i", cmdInsert},
		{"set", []string{"i", "a", "b"}, "replace association at position i", cmdSet},
		{"del", []string{"i"}, "remove association at position i", cmdDel},
		{"rma", []string{"a"}, "remove association with first component a", cmdRemoveA},
		{"rmb", []string{"b"}, "remove association with second component b", cmdRemoveB},
		{"get", []string{"a"}, "look up second component for a", cmdGet},
		{"getb", []string{"b"}, "look up first component for b", cmdGetB},
		{"reverse", nil, "reverse order of associations", cmdReverse},
		{"clear", nil, "remove all associations", cmdClear},
		{"list", nil, "list associations", cmdList},
		{"tree", nil, "display associations as a tree", cmdTree},
		{"check", nil, "verify container integrity", cmdCheck},
		{"scope", []string{"name"}, "open a parameter scope", cmdScope},
		{"pop", nil, "close the current parameter scope", cmdPop},
		{"def", []string{"name", "value"}, "define a parameter in the current scope", cmdDef},
		{"params", nil, "show parameters visible in the current scope", cmdParams},
		{"load", nil, "replace associations by the visible parameters", cmdLoad},
		{"help", nil, "list commands", cmdHelp},
		{"quit", nil, "leave D.REPL", func(*Intp, []Token) error { return nil }},
	}
}

func commandNamed(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

// ---------------------------------------------------------------------------

func cmdAdd(intp *Intp, args []Token) error {
	return intp.c.Add(args[0].Text(), args[1].Text())
}

func cmdInsert(intp *Intp, args []Token) error {
	i, err := position(args[0])
	if err != nil {
		return err
	}
	return intp.c.Insert(i, args[1].Text(), args[2].Text())
}

func cmdSet(intp *Intp, args []Token) error {
	i, err := position(args[0])
	if err != nil {
		return err
	}
	return intp.c.Set(i, args[1].Text(), args[2].Text())
}

func cmdDel(intp *Intp, args []Token) error {
	i, err := position(args[0])
	if err != nil {
		return err
	}
	return intp.c.RemoveAt(i)
}

func cmdRemoveA(intp *Intp, args []Token) error {
	return intp.c.RemoveA(args[0].Text())
}

func cmdRemoveB(intp *Intp, args []Token) error {
	return intp.c.RemoveB(args[0].Text())
}

func cmdGet(intp *Intp, args []Token) error {
	b, ok := intp.c.LookupA(args[0].Text())
	if !ok {
		pterm.Info.Println("nil")
		return nil
	}
	pterm.Info.Println(b)
	return nil
}

func cmdGetB(intp *Intp, args []Token) error {
	var a string
	var ok bool
	switch c := intp.c.(type) {
	case *synced.UniqueSet[string, string]:
		a, ok = c.LookupB(args[0].Text())
	case *synced.Set[string, string]:
		var err error
		if a, ok, err = c.LookupB(args[0].Text()); err != nil {
			return err
		}
	}
	if !ok {
		pterm.Info.Println("nil")
		return nil
	}
	pterm.Info.Println(a)
	return nil
}

func cmdReverse(intp *Intp, _ []Token) error {
	return intp.c.Reverse()
}

func cmdClear(intp *Intp, _ []Token) error {
	intp.c.Clear()
	return nil
}

func cmdList(intp *Intp, _ []Token) error {
	values := intp.c.Values()
	if len(values) == 0 {
		pterm.Info.Println("empty")
		return nil
	}
	for i, x := range values {
		pterm.Info.Printf("%3d: %s\n", i, x)
	}
	return nil
}

func cmdTree(intp *Intp, _ []Token) error {
	pterm.Println(intp.mode)
	if intp.c.Count() == 0 {
		pterm.Info.Println("empty")
		return nil
	}
	root := pterm.NewTreeFromLeveledList(leveledAssociations(intp.c))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// leveledAssociations lists every association as a node labeled with its
// position and first component, with the second component as its child.
func leveledAssociations(c container) pterm.LeveledList {
	var ll pterm.LeveledList
	for i, x := range c.Values() {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("%d: %s", i, x.A()),
		})
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  x.B(),
		})
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func cmdCheck(intp *Intp, _ []Token) error {
	if err := intp.c.CheckIntegrity(); err != nil {
		return err
	}
	pterm.Info.Printf("ok, %d associations\n", intp.c.Count())
	return nil
}

// --- Parameter scopes ------------------------------------------------------

func cmdScope(intp *Intp, args []Token) error {
	_, err := intp.scopes.Push(args[0].Text())
	return err
}

func cmdPop(intp *Intp, _ []Token) error {
	_, err := intp.scopes.Pop()
	return err
}

func cmdDef(intp *Intp, args []Token) error {
	return intp.scopes.Top().Define(args[0].Text(), args[1].Text())
}

func cmdParams(intp *Intp, _ []Token) error {
	visible, err := intp.scopes.Top().Visible()
	if err != nil {
		return err
	}
	pterm.Info.Println(intp.scopes.Path())
	for _, x := range visible.All() {
		_, where := intp.scopes.Top().Lookup(x.A())
		pterm.Info.Printf("%-12s = %-12s (%s)\n", x.A(), x.B(), where.Name())
	}
	return nil
}

func cmdLoad(intp *Intp, _ []Token) error {
	if err := intp.load(); err != nil {
		return err
	}
	pterm.Info.Printf("loaded %d associations\n", intp.c.Count())
	return nil
}

// ---------------------------------------------------------------------------

func cmdHelp(*Intp, []Token) error {
	for _, cmd := range commands {
		usage := cmd.name
		for _, arg := range cmd.args {
			usage += " " + arg
		}
		pterm.Info.Printf("%-14s %s\n", usage, cmd.help)
	}
	return nil
}
