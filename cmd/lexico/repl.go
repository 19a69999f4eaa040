package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/MoustaphaSaad/taha2/lexico/internal/lexico"
)

const (
	historyFile = ".lexico_history"
	promptMain  = "lexico> "
)

func repl(logger *slog.Logger, w io.Writer, cfg lexico.Config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		f, err := os.Create(histPath)
		if err != nil {
			logger.Warn("could not save history", "path", histPath, "err", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	for n := 1; ; n++ {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		scanLine(w, cfg, n, line)
	}
}

func scanLine(w io.Writer, cfg lexico.Config, n int, line string) {
	unit := lexico.NewUnit(fmt.Sprintf("<repl:%d>", n), line)
	unit.Scan(cfg)
	for _, tkn := range unit.Tokens {
		if tkn.Type == lexico.TokenTypeEOF {
			break
		}
		fmt.Fprintf(w, "%-16s %q\n", tkn.Type, tkn.Text)
	}
	if unit.HasErrors() {
		fmt.Fprintln(w, unit.DumpErrors())
	}
}
