package driver

import (
	"sexpfmt/internal/ast"
	"sexpfmt/internal/diag"
	"sexpfmt/internal/parser"
	"sexpfmt/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    ast.Node
	Bag     *diag.Bag
}

// Parse loads a file and parses it into a tree. A structural error comes
// back both as the returned error and as a rendered entry in Result.Bag;
// the partial result is still usable for diagnostics output.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	root, err := parser.Parse(file, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Root:    root,
		Bag:     bag,
	}
	if err != nil {
		return res, err
	}
	return res, nil
}
