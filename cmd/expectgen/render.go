package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"
)

const header = "// Code generated by expectgen. DO NOT EDIT.\n"

// render produces the formatted source of the generated file.
func render(spec packageSpec, filename string) ([]byte, error) {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n\n", spec.Name)

	b.WriteString("import (\n")
	b.WriteString("\t\"reflect\"\n\n")
	fmt.Fprintf(&b, "\t%q\n", runtimePath)
	for _, imp := range spec.Imports {
		fmt.Fprintf(&b, "\t%s %q\n", imp.Name, imp.Path)
	}
	b.WriteString(")\n")

	vars := newVarNamer(spec.Taken)
	for _, d := range spec.Decls {
		typesVar := vars.name("expected" + upperFirst(d.Name))
		namesVar := vars.name(typesVar + "Names")

		b.WriteString("\nvar (\n")
		fmt.Fprintf(&b, "\t%s = []reflect.Type{\n", typesVar)
		for _, ref := range d.Refs {
			fmt.Fprintf(&b, "\t\treflect.TypeFor[%s](),\n", ref)
		}
		b.WriteString("\t}\n")
		fmt.Fprintf(&b, "\t%s = %s.TypeNames(%s...)\n", namesVar, runtimeName, typesVar)
		b.WriteString(")\n\n")

		fmt.Fprintf(&b, "// ExpectedComponents implements %s.Contract.\n", runtimeName)
		fmt.Fprintf(&b, "func (%s) ExpectedComponents() []reflect.Type { return %s }\n\n", d.Name, typesVar)
		fmt.Fprintf(&b, "// ExpectedComponentNames implements %s.Contract.\n", runtimeName)
		fmt.Fprintf(&b, "func (%s) ExpectedComponentNames() []string { return %s }\n", d.Name, namesVar)
	}

	b.WriteString("\nfunc init() {\n")
	for _, d := range spec.Decls {
		fmt.Fprintf(&b, "\t%s.Register[%s]()\n", runtimeName, d.Name)
	}
	b.WriteString("}\n")

	out, err := imports.Process(filename, []byte(b.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

// varNamer hands out unique package-level variable names.
type varNamer struct {
	used map[string]bool
}

// newVarNamer returns a namer that avoids the identifiers in taken.
func newVarNamer(taken []string) *varNamer {
	used := make(map[string]bool, len(taken))
	for _, name := range taken {
		used[name] = true
	}
	return &varNamer{used: used}
}

func (n *varNamer) name(base string) string {
	candidate := base
	for i := 2; n.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	n.used[candidate] = true
	return candidate
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
