package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"github.com/dshills/strand/internal/config"
	"github.com/dshills/strand/internal/dispatch"
	"github.com/dshills/strand/internal/runtime/random"
	"github.com/dshills/strand/internal/runtime/value"
	"github.com/dshills/strand/internal/script"
)

// Errors returned by the evaluator.
var (
	ErrUnterminated = errors.New("repl: unterminated literal")
	ErrUnknownWord  = errors.New("repl: unknown word")
	ErrBadLine      = errors.New("repl: cannot evaluate line")
)

// REPL reads lines, evaluates them against the dispatcher, and prints molded
// results.
type REPL struct {
	cfg     *config.Config
	log     *zap.Logger
	d       *dispatch.Dispatcher
	rng     *random.Source
	vars    map[string]value.Value
	history []string
	session string
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a session over in and out.
func NewREPL(cfg *config.Config, log *zap.Logger, in io.Reader, out io.Writer) *REPL {
	rng := random.New(cfg.Random.Seed)
	if cfg.Random.Secure {
		rng.SetSecure(true)
	}
	session := uuid.NewString()
	log = log.With(zap.String("session", session))

	return &REPL{
		cfg:     cfg,
		log:     log,
		d:       dispatch.New(dispatch.WithLogger(log), dispatch.WithRandom(rng)),
		rng:     rng,
		vars:    make(map[string]value.Value),
		session: session,
		in:      in,
		out:     out,
	}
}

// Run reads and evaluates lines until end of input or a quit command.
func (r *REPL) Run() error {
	r.log.Info("session started")
	scanner := bufio.NewScanner(r.in)

	for {
		fmt.Fprint(r.out, r.cfg.REPL.Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		r.remember(line)

		out, err := r.Eval(line)
		if err != nil {
			fmt.Fprintf(r.out, "** %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintf(r.out, "== %s\n", out)
		}
	}

	r.log.Info("session ended", zap.Int("lines", len(r.history)))
	return scanner.Err()
}

func (r *REPL) remember(line string) {
	r.history = append(r.history, line)
	if max := r.cfg.REPL.HistorySize; max > 0 && len(r.history) > max {
		r.history = r.history[len(r.history)-max:]
	}
}

// Eval evaluates one line and returns the molded result. Assignments and
// shell commands return an empty string.
func (r *REPL) Eval(line string) (string, error) {
	toks, err := tokenize(line)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", nil
	}

	// name: expr assigns the evaluated rest of the line.
	if name, ok := strings.CutSuffix(toks[0], ":"); ok && name != "" && len(toks) > 1 {
		out, err := r.evalTokens(toks[1:])
		if err != nil {
			return "", err
		}
		r.vars[name] = out
		return "", nil
	}

	switch toks[0] {
	case "vars":
		r.printVars()
		return "", nil
	case "stats":
		r.printStats()
		return "", nil
	case "help":
		r.printHelp()
		return "", nil
	}

	out, err := r.evalTokens(toks)
	if err != nil {
		return "", err
	}
	return value.Mold(out), nil
}

func (r *REPL) evalTokens(toks []string) (value.Value, error) {
	name, refs := splitRefinements(toks[0])
	verb := dispatch.VerbNamed(name)
	if verb == dispatch.VerbNone {
		if len(toks) == 1 {
			return r.evalToken(toks[0])
		}
		return nil, fmt.Errorf("%w: %q", ErrBadLine, strings.Join(toks, " "))
	}

	req := &dispatch.Request{Verb: verb}
	rest := toks[1:]

	if verb == dispatch.VerbMake || verb == dispatch.VerbTo {
		if len(rest) < 2 {
			return nil, fmt.Errorf("%w: %s needs a datatype and a source", ErrBadLine, name)
		}
		kind, ok := kindNamed(rest[0])
		if !ok {
			return nil, fmt.Errorf("%w: unknown datatype %q", ErrBadLine, rest[0])
		}
		req.MakeKind = kind
		rest = rest[1:]
	}

	args, err := r.evalArgs(rest)
	if err != nil {
		return nil, err
	}

	// Positional operands first, then one argument per value-taking
	// refinement in the order the refinements were written.
	need := operandCount(verb)
	if len(args) < need {
		return nil, fmt.Errorf("%w: %s needs %d arguments", ErrBadLine, name, need)
	}
	if verb == dispatch.VerbMake || verb == dispatch.VerbTo {
		req.Arg = args[0]
	} else {
		if need >= 1 {
			req.Value = args[0]
		}
		if need >= 2 {
			req.Arg = args[1]
		}
		if need >= 3 {
			req.Arg2 = args[2]
		}
	}
	args = args[need:]

	var cmp *script.Comparator
	defer func() {
		if cmp != nil {
			cmp.Close()
		}
	}()

	for _, ref := range refs {
		var err error
		args, cmp, err = r.applyRefinement(req, ref, args, cmp)
		if err != nil {
			return nil, err
		}
	}
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %d unused arguments", ErrBadLine, len(args))
	}

	return r.d.Dispatch(req)
}

func (r *REPL) applyRefinement(req *dispatch.Request, ref string, args []value.Value, cmp *script.Comparator) ([]value.Value, *script.Comparator, error) {
	takeArg := func() (value.Value, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: refinement %q needs a value", ErrBadLine, ref)
		}
		v := args[0]
		args = args[1:]
		return v, nil
	}
	takeInt := func() (int, error) {
		v, err := takeArg()
		if err != nil {
			return 0, err
		}
		n, ok := v.(value.Int)
		if !ok {
			return 0, fmt.Errorf("%w: refinement %q needs an integer", ErrBadLine, ref)
		}
		return int(n), nil
	}
	takeText := func() (string, error) {
		v, err := takeArg()
		if err != nil {
			return "", err
		}
		view, ok := v.(value.View)
		if !ok || !view.Tag.IsAnyString() {
			return "", fmt.Errorf("%w: refinement %q needs a string", ErrBadLine, ref)
		}
		return view.Text(), nil
	}

	var err error
	switch ref {
	case "case":
		req.Case = true
	case "last":
		req.Last = true
	case "reverse":
		req.Reverse = true
	case "tail":
		if req.Verb == dispatch.VerbTrim {
			req.TrimTail = true
		} else {
			req.Tail = true
		}
	case "match":
		req.Match = true
	case "only":
		if req.Verb == dispatch.VerbRandom {
			req.OnlyRandom = true
		} else {
			req.Only = true
		}
	case "seed":
		req.Seed = true
	case "secure":
		req.Secure = true
	case "head":
		req.TrimHead = true
	case "lines":
		req.TrimLines = true
	case "auto":
		req.TrimAuto = true
	case "all":
		req.TrimAll = true
	case "part":
		req.Part, err = takeArg()
	case "dup":
		req.Dup, err = takeInt()
	case "skip":
		req.Skip, err = takeInt()
	case "with":
		req.TrimWith, err = takeText()
	case "compare":
		var src string
		src, err = takeText()
		if err != nil {
			break
		}
		cmp, err = script.NewComparator(src)
		if err != nil {
			break
		}
		req.Compare = cmp.Func()
	default:
		err = fmt.Errorf("%w: unknown refinement %q", ErrBadLine, ref)
	}
	return args, cmp, err
}

func (r *REPL) evalArgs(toks []string) ([]value.Value, error) {
	out := make([]value.Value, 0, len(toks))
	for _, tok := range toks {
		v, err := r.evalToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *REPL) evalToken(tok string) (value.Value, error) {
	switch {
	case strings.HasPrefix(tok, `"`):
		return value.StringView(strings.Trim(tok, `"`))
	case strings.HasPrefix(tok, `#"`):
		rs := []rune(strings.TrimSuffix(tok[2:], `"`))
		if len(rs) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, tok)
		}
		return value.Char(rs[0]), nil
	case strings.HasPrefix(tok, "#{"):
		b, err := hex.DecodeString(strings.TrimSuffix(tok[2:], "}"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, tok)
		}
		return value.BinaryView(b), nil
	case strings.HasPrefix(tok, "%"):
		v, err := value.StringView(tok[1:])
		if err != nil {
			return nil, err
		}
		v.Tag = value.KindFile
		return v, nil
	case tok == "none":
		return value.None, nil
	}

	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return value.Int(n), nil
	}
	if v, ok := r.vars[tok]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWord, tok)
}

func (r *REPL) printVars() {
	names := make([]string, 0, len(r.vars))
	width := 0
	for name := range r.vars {
		names = append(names, name)
		if w := uniseg.StringWidth(name); w > width {
			width = w
		}
	}
	sort.Strings(names)

	for _, name := range names {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(name))
		fmt.Fprintf(r.out, "%s%s  %s\n", name, pad, value.Mold(r.vars[name]))
	}
}

func (r *REPL) printStats() {
	snap := r.d.Metrics().Snapshot()
	width := 0
	for _, vm := range snap {
		if w := uniseg.StringWidth(vm.Verb.String()); w > width {
			width = w
		}
	}
	for _, vm := range snap {
		name := vm.Verb.String()
		pad := strings.Repeat(" ", width-uniseg.StringWidth(name))
		fmt.Fprintf(r.out, "%s%s  %6d calls  %d errors\n", name, pad, vm.DispatchCount, vm.ErrorCount)
	}
	fmt.Fprintf(r.out, "total: %d dispatches, %d errors\n",
		r.d.Metrics().TotalDispatches(), r.d.Metrics().TotalErrors())
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, `Lines are verb invocations: verb[/refinement...] arg ...
  s: "some text"            assign a variable
  find/tail s "me"          search with refinements
  sort/compare s "function(a, b) return b:byte() - a:byte() end"
  vars | stats | help       shell commands
  quit | exit               leave`)
}

// operandCount is the number of positional operands a verb consumes.
func operandCount(v dispatch.Verb) int {
	switch v {
	case dispatch.VerbMake, dispatch.VerbTo:
		return 1
	case dispatch.VerbPoke:
		return 3
	case dispatch.VerbSkip, dispatch.VerbAt,
		dispatch.VerbSame, dispatch.VerbEqual, dispatch.VerbStrictEqual,
		dispatch.VerbPick, dispatch.VerbFind, dispatch.VerbSelect,
		dispatch.VerbAppend, dispatch.VerbInsert, dispatch.VerbChange,
		dispatch.VerbSwap, dispatch.VerbAnd, dispatch.VerbOr, dispatch.VerbXor:
		return 2
	default:
		return 1
	}
}

func kindNamed(word string) (value.Kind, bool) {
	switch word {
	case "string!":
		return value.KindString, true
	case "binary!":
		return value.KindBinary, true
	case "file!":
		return value.KindFile, true
	case "url!":
		return value.KindURL, true
	case "email!":
		return value.KindEmail, true
	case "tag!":
		return value.KindTag, true
	default:
		return value.KindNone, false
	}
}

func splitRefinements(tok string) (string, []string) {
	parts := strings.Split(tok, "/")
	return parts[0], parts[1:]
}

// tokenize splits a line into literal and word tokens. String, char, and
// binary literals may contain spaces; words end at whitespace.
func tokenize(line string) ([]string, error) {
	var toks []string
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '"':
			j := strings.IndexByte(line[i+1:], '"')
			if j < 0 {
				return nil, ErrUnterminated
			}
			toks = append(toks, line[i:i+j+2])
			i += j + 2
		case c == '#' && i+1 < len(line) && line[i+1] == '"':
			j := strings.IndexByte(line[i+2:], '"')
			if j < 0 {
				return nil, ErrUnterminated
			}
			toks = append(toks, line[i:i+j+3])
			i += j + 3
		case c == '#' && i+1 < len(line) && line[i+1] == '{':
			j := strings.IndexByte(line[i:], '}')
			if j < 0 {
				return nil, ErrUnterminated
			}
			toks = append(toks, line[i:i+j+1])
			i += j + 1
		default:
			j := i
			for j < len(line) && line[j] != ' ' && line[j] != '\t' {
				j++
			}
			toks = append(toks, line[i:j])
			i = j
		}
	}
	return toks, nil
}
