package parser

import "github.com/sanity-io/litter"

var dumpOptions = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
}

// Dump renders any tree value (a statement list, a single node, tokens)
// as Go-like literal syntax for debugging.
func Dump(v any) string {
	return dumpOptions.Sdump(v)
}
