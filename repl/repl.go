/*
File    : minij/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive read-eval-print loop for MiniJ. It is
not part of the two contractual CLI modes (spec §6); it's a supplement
adapted from the teacher's REPL, extended with brace-depth tracking so a
multi-line class or method body can be typed incrementally before it's
parsed as a whole (the class grammar is inherently multi-line, unlike the
teacher's expression-at-a-time language).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/minij/eval"
	"github.com/akashmaji946/minij/object"
	"github.com/akashmaji946/minij/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/version/prompt text shown at startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a new Repl with the given display text.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to MiniJ!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "An unbalanced '{' keeps reading further lines until it closes")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop until the user exits or input ends.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	var buf strings.Builder
	depth := 0

	for {
		prompt := r.Prompt
		if depth > 0 {
			prompt = "... "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if depth == 0 {
			trimmed := strings.Trim(line, " \n\t\r")
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				writer.Write([]byte("Good Bye!\n"))
				break
			}
		}

		rl.SaveHistory(line)
		buf.WriteString(line)
		buf.WriteString("\n")
		depth += braceDelta(line)

		if depth > 0 {
			continue
		}

		source := buf.String()
		buf.Reset()
		depth = 0

		if strings.TrimSpace(source) == "" {
			continue
		}

		r.executeWithRecovery(writer, source, evaluator)
	}
}

// braceDelta counts the net change in brace nesting contributed by line,
// ignoring braces that appear inside a string or char literal.
func braceDelta(line string) int {
	delta := 0
	inString := false
	inChar := false
	escaped := false

	for _, ch := range line {
		switch {
		case escaped:
			escaped = false
		case (inString || inChar) && ch == '\\':
			escaped = true
		case inString:
			if ch == '"' {
				inString = false
			}
		case inChar:
			if ch == '\'' {
				inChar = false
			}
		case ch == '"':
			inString = true
		case ch == '\'':
			inChar = true
		case ch == '{':
			delta++
		case ch == '}':
			delta--
		}
	}
	return delta
}

// executeWithRecovery parses and evaluates source, recovering from any
// panic so a REPL session survives an interpreter bug instead of exiting.
func (r *Repl) executeWithRecovery(writer io.Writer, source string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	prog, err := parser.ParseSource(source)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	result := evaluator.Run(prog)
	if object.IsError(result) {
		redColor.Fprintf(writer, "Error: %s\n", result.(*object.Error).Message)
	}
}
