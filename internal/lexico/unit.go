package lexico

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

type CompilationStage int

const (
	CompilationStageNone CompilationStage = iota
	CompilationStageFailed
	CompilationStageScanned
)

type Unit struct {
	// file path as supplied by the user
	Filepath string
	// absolute path to the file
	AbsolutePath string
	// content of the file
	Content string
	// stores the compilation stage that this unit has reached
	Stage CompilationStage
	// config the unit was scanned with
	Config Config
	// tokens of said file, terminated by a single TokenTypeEOF
	Tokens []Token
	// start and end of each line in the source code
	Lines []Range
	// list of errors that's reported while scanning this unit
	Errors []Error
}

func LoadUnitFromFile(path string) (*Unit, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(absolutePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	res := NewUnit(path, string(content))
	res.AbsolutePath = absolutePath
	return res, nil
}

// NewUnit wraps in-memory source, name is only used when reporting.
func NewUnit(name, content string) *Unit {
	return &Unit{
		Filepath: name,
		Content:  content,
		Stage:    CompilationStageNone,
	}
}

// Scan tokenizes the whole unit. It reports whether the unit is free of
// lexical errors; scanning an already scanned unit is a no-op.
func (u *Unit) Scan(cfg Config) bool {
	if u.Stage != CompilationStageNone {
		return u.Stage != CompilationStageFailed
	}

	u.Config = cfg
	scanner := NewScanner(u, cfg)
	for {
		tkn := scanner.Scan()
		u.Tokens = append(u.Tokens, tkn)

		if tkn.Type == TokenTypeEOF {
			break
		}
	}

	if u.HasErrors() {
		u.Stage = CompilationStageFailed
		return false
	}
	u.Stage = CompilationStageScanned
	return true
}

func (u *Unit) HasErrors() bool {
	return len(u.Errors) > 0
}

// Err joins the lexical errors, nil for a clean unit.
func (u *Unit) Err() error {
	errs := make([]error, 0, len(u.Errors))
	for _, err := range u.Errors {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (u *Unit) DumpTokens() string {
	var buffer bytes.Buffer
	for _, tkn := range u.Tokens {
		fmt.Fprintf(&buffer, "Token: %q, Type: \"%s\", Line: %v:%v\n", tkn.Text, tkn.Type, tkn.Loc.Pos.Line, tkn.Loc.Pos.Column)
	}
	return buffer.String()
}

func (u *Unit) DumpErrors() string {
	var buffer bytes.Buffer
	for i, err := range u.Errors {
		if i > 0 {
			fmt.Fprintf(&buffer, "\n")
		}

		line := err.Loc.Pos.Line - 1
		if line >= 0 && line < len(u.Lines) && err.Loc.Rng.End > err.Loc.Rng.Begin {
			l := u.Lines[line]
			src := strings.TrimRight(u.Content[l.Begin:l.End], "\r")
			if u.Config.TabWidth > 0 {
				src = strings.ReplaceAll(src, "\t", strings.Repeat(" ", u.Config.TabWidth))
			}
			fmt.Fprintf(&buffer, ">> %s\n", src)
			fmt.Fprintf(&buffer, ">> ")
			for it := l.Begin; it < l.End; {
				c, size := utf8.DecodeRuneInString(u.Content[it:])

				switch {
				case c == '\r':
					// do nothing
				case it >= err.Loc.Rng.Begin && it < err.Loc.Rng.End:
					fmt.Fprintf(&buffer, "^")
				case c == '\t' && u.Config.TabWidth > 0:
					fmt.Fprintf(&buffer, "%s", strings.Repeat(" ", u.Config.TabWidth))
				case c == '\t':
					fmt.Fprintf(&buffer, "\t")
				default:
					fmt.Fprintf(&buffer, " ")
				}
				it += size
			}
			fmt.Fprintf(&buffer, "\n")
		}

		if u.Filepath != "" {
			fmt.Fprintf(&buffer, "%s: ", u.Filepath)
		}
		fmt.Fprintf(&buffer, "%s", err.Error())
	}
	return buffer.String()
}

func (u *Unit) errf(kind ErrorKind, loc Location, format string, a ...interface{}) {
	e := errf(kind, loc, format, a...)
	u.Errors = append(u.Errors, e)
}
