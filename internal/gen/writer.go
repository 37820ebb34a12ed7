package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Stale returns the names of files whose copy in dir is missing or differs
// from the generated content. Layout-only differences are ignored.
func Stale(files []GeneratedFile, dir string) ([]string, error) {
	var stale []string

	for _, file := range files {
		onDisk, err := os.ReadFile(filepath.Join(dir, file.Filename))
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, file.Filename)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file.Filename, err)
		}

		if bytes.Equal(onDisk, file.Content) {
			continue
		}

		if !sameTokens(onDisk, file.Content) {
			stale = append(stale, file.Filename)
		}
	}

	return stale, nil
}

type lexeme struct {
	tok token.Token
	lit string
}

// sameTokens compares two sources token by token, comments included.
func sameTokens(a, b []byte) bool {
	ta, tb := tokens(a), tokens(b)
	if len(ta) != len(tb) {
		return false
	}

	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}

	return true
}

func tokens(src []byte) []lexeme {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, src, nil, scanner.ScanComments)

	var res []lexeme
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			return res
		}

		// Automatic semicolons depend on line breaks only.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		res = append(res, lexeme{tok, lit})
	}
}
