package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/params"
	"github.com/npillmayer/assoc/synced"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("D.REPL"), where users may enter commands
// to modify and inspect a container of string associations. D.REPL is
// intended as a sandbox for experiments with the containers of module assoc.
//
// Please refer to packages "dual" and "synced".
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	mode := flag.String("mode", "unique", "Container type [unique|set]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to DREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up container and pre-load it from arguments
	intp, err := NewIntp(*mode)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	args, err := params.ParseArgs(flag.Args())
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	intp.preload(args)
	//
	// set up REPL
	repl, err := readline.New("drepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// container is what D.REPL needs from a synchronized dual set of strings.
// Both synced.Set and synced.UniqueSet implement it.
type container interface {
	Count() int
	Add(a, b string) error
	Insert(i int, a, b string) error
	Set(i int, a, b string) error
	RemoveAt(i int) error
	RemoveA(a string) error
	RemoveB(b string) error
	LookupA(a string) (string, bool)
	Reverse() error
	Clear()
	Values() []assoc.Association[string, string]
	CheckIntegrity() error
	String() string
}

var (
	_ container = (*synced.Set[string, string])(nil)
	_ container = (*synced.UniqueSet[string, string])(nil)
)

// Intp is our interpreter object
type Intp struct {
	lastInput string
	mode      string
	repl      *readline.Instance
	c         container
	scopes    *params.Stack
}

// NewIntp creates an interpreter holding an empty container. mode selects the
// container type: "unique" for a two-sided set, "set" for a one-sided set.
func NewIntp(mode string) (*Intp, error) {
	intp := &Intp{mode: mode, scopes: params.NewStack()}
	switch mode {
	case "unique":
		intp.c = synced.NewUniqueSet[string, string]()
	case "set":
		intp.c = synced.NewSet[string, string]()
	default:
		return nil, fmt.Errorf("unknown container mode %q, use 'unique' or 'set'", mode)
	}
	return intp, nil
}

// preload defines args as global parameters and loads them into the
// container.
func (intp *Intp) preload(args *params.Table) {
	globals := intp.scopes.Globals().Params()
	args.Each(func(name, value string) {
		if err := globals.Add(name, value); err != nil {
			tracer().Errorf("cannot define %s=%s: %v", name, value, err)
		}
	})
	if err := intp.load(); err != nil {
		tracer().Errorf("%v", err)
	}
	tracer().Infof("Pre-loaded %d associations", intp.c.Count())
}

// load replaces the content of the container with the parameters visible in
// the current scope. Parameters the container rejects are skipped.
func (intp *Intp) load() error {
	visible, err := intp.scopes.Top().Visible()
	if err != nil {
		return err
	}
	intp.c.Clear()
	for _, x := range visible.All() {
		if err := intp.c.Add(x.A(), x.B()); err != nil {
			tracer().Errorf("cannot load %s=%s: %v", x.A(), x.B(), err)
		}
	}
	return nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line != "" {
			if _, err := intp.Eval(line); err != nil {
				tracer().Errorf("Error line %d: %v", lineno, err)
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command, given on a line by itself. It returns true if the
// user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	intp.lastInput = line
	tokens, err := Tokenize(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if len(tokens) == 0 { // comment only
		return false, nil
	}
	if tokens[0].Type != Word {
		err = fmt.Errorf("expected command, have %s", tokens[0])
		pterm.Error.Println(err.Error())
		return false, err
	}
	name := tokens[0].Text()
	cmd, ok := commandNamed(name)
	if !ok {
		err = fmt.Errorf("unknown command '%s', try 'help'", name)
		pterm.Error.Println(err.Error())
		return false, err
	}
	args := tokens[1:]
	if len(args) != len(cmd.args) {
		err = fmt.Errorf("usage: %s %s", cmd.name, strings.Join(cmd.args, " "))
		pterm.Error.Println(err.Error())
		return false, err
	}
	tracer().Debugf("executing %s %v", cmd.name, args)
	if err = cmd.run(intp, args); err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	return cmd.name == "quit", nil
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// position interprets a token as a position in the container.
func position(t Token) (int, error) {
	if t.Type != Num {
		return 0, fmt.Errorf("expected position, have %s", t)
	}
	return strconv.Atoi(t.Lexeme)
}
