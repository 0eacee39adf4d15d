package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/mod/module"
)

const (
	// directive marks a type declaration as expecting components.
	directive = "//ecs:expects"

	defaultOutput = "expects_gen.go"

	runtimePath = "github.com/oriumgames/expects"
	runtimeName = "expects"
)

var errNoExpectations = errors.New("declares no expected components")

// declaration is one declaring type and its resolved expectations.
type declaration struct {
	Name string
	Pos  token.Position

	// Refs are Go expressions naming the expected types in the generated
	// file, in declaration order.
	Refs []string
}

type importSpec struct {
	Name string
	Path string
}

// packageSpec is everything needed to render a generated file.
type packageSpec struct {
	Name    string
	Decls   []declaration
	Imports []importSpec

	// Taken lists the package-level identifiers already declared, sorted.
	Taken []string
}

// parsePackage scans the Go files of dir for //ecs:expects directives.
// Test files and the generator's own output are skipped.
func parsePackage(dir, pkgName, output string) (packageSpec, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(info os.FileInfo) bool {
		name := info.Name()
		return !strings.HasSuffix(name, "_test.go") && name != output
	}, parser.ParseComments)
	if err != nil {
		return packageSpec{}, fmt.Errorf("parse %s: %w", dir, err)
	}

	pkg, err := selectPackage(pkgs, pkgName, dir)
	if err != nil {
		return packageSpec{}, err
	}

	fileNames := make([]string, 0, len(pkg.Files))
	for name := range pkg.Files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	self, err := packageImportPath(dir)
	if err != nil {
		return packageSpec{}, err
	}

	local := localTypes(pkg)
	imports := newImportSet()
	spec := packageSpec{Name: pkg.Name, Taken: packageIdents(pkg)}

	for _, name := range fileNames {
		file := pkg.Files[name]
		aliases := parseImportAliases(file)
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, s := range gen.Specs {
				typeSpec, ok := s.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				args, found, err := directiveArgs(doc)
				if err != nil {
					return packageSpec{}, fmt.Errorf("%s: type %s: %w", fset.Position(typeSpec.Pos()), typeSpec.Name.Name, err)
				}
				if !found {
					continue
				}
				d, err := resolveDeclaration(typeSpec, args, aliases, local, self, imports)
				if err != nil {
					return packageSpec{}, fmt.Errorf("%s: type %s: %w", fset.Position(typeSpec.Pos()), typeSpec.Name.Name, err)
				}
				d.Pos = fset.Position(typeSpec.Pos())
				spec.Decls = append(spec.Decls, d)
			}
		}
	}

	spec.Imports = imports.sorted()
	return spec, nil
}

func selectPackage(pkgs map[string]*ast.Package, pkgName, dir string) (*ast.Package, error) {
	if pkgName != "" {
		pkg, ok := pkgs[pkgName]
		if !ok {
			return nil, fmt.Errorf("package %s not found in %s", pkgName, dir)
		}
		return pkg, nil
	}
	switch len(pkgs) {
	case 0:
		return nil, fmt.Errorf("no Go files in %s", dir)
	case 1:
		for _, pkg := range pkgs {
			return pkg, nil
		}
	}
	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("%s holds packages %s; select one with -package", dir, strings.Join(names, ", "))
}

// localTypes returns the names of all types declared at package level.
func localTypes(pkg *ast.Package) map[string]bool {
	local := make(map[string]bool)
	for _, file := range pkg.Files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, s := range gen.Specs {
				if typeSpec, ok := s.(*ast.TypeSpec); ok {
					local[typeSpec.Name.Name] = true
				}
			}
		}
	}
	return local
}

// packageIdents returns the sorted package-level identifiers of pkg, excluding
// methods and init functions.
func packageIdents(pkg *ast.Package) []string {
	seen := make(map[string]bool)
	for _, file := range pkg.Files {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil && d.Name.Name != "init" {
					seen[d.Name.Name] = true
				}
			case *ast.GenDecl:
				for _, s := range d.Specs {
					switch s := s.(type) {
					case *ast.TypeSpec:
						seen[s.Name.Name] = true
					case *ast.ValueSpec:
						for _, n := range s.Names {
							seen[n.Name] = true
						}
					}
				}
			}
		}
	}
	delete(seen, "_")

	idents := make([]string, 0, len(seen))
	for name := range seen {
		idents = append(idents, name)
	}
	sort.Strings(idents)
	return idents
}

// directiveArgs returns the type references listed by every directive line in
// doc, in order. found reports whether any directive was present.
func directiveArgs(doc *ast.CommentGroup) (args []string, found bool, err error) {
	if doc == nil {
		return nil, false, nil
	}
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, directive)
		if !ok {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			// Some other directive sharing the prefix, e.g. //ecs:expectsfoo.
			continue
		}
		found = true

		rest = strings.TrimSpace(rest)
		if rest == "" {
			continue
		}
		parts := strings.Split(rest, ",")
		for i, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				if i == len(parts)-1 {
					// Trailing comma.
					continue
				}
				return nil, true, fmt.Errorf("empty type reference in %q", c.Text)
			}
			args = append(args, part)
		}
	}
	return args, found, nil
}

func resolveDeclaration(typeSpec *ast.TypeSpec, args []string, aliases map[string]string, local map[string]bool, self string, imports *importSet) (declaration, error) {
	if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
		return declaration{}, errors.New("generic types cannot declare expected components")
	}
	if typeSpec.Assign.IsValid() {
		return declaration{}, errors.New("type aliases cannot declare expected components")
	}
	if _, ok := typeSpec.Type.(*ast.StructType); !ok {
		return declaration{}, errors.New("only struct types can declare expected components")
	}
	if len(args) == 0 {
		return declaration{}, fmt.Errorf("%w; list at least one component type after %s", errNoExpectations, directive)
	}

	d := declaration{Name: typeSpec.Name.Name}
	for _, arg := range args {
		ref, err := resolveRef(arg, aliases, local, self, imports)
		if err != nil {
			return declaration{}, err
		}
		d.Refs = append(d.Refs, ref)
	}
	return d, nil
}

// resolveRef turns a written type reference into an expression valid in the
// generated file, registering any import it needs. self is the import path of
// the package being generated for; references into it become short names.
func resolveRef(ref string, aliases map[string]string, local map[string]bool, self string, imports *importSet) (string, error) {
	if strings.Contains(ref, "/") {
		dot := strings.LastIndex(ref, ".")
		if dot < strings.LastIndex(ref, "/") {
			return "", fmt.Errorf("malformed type reference %q: want import/path.Type", ref)
		}
		importPath, name := ref[:dot], ref[dot+1:]
		if err := module.CheckImportPath(importPath); err != nil {
			return "", fmt.Errorf("type reference %q: %w", ref, err)
		}
		if self != "" && importPath == self {
			return resolveLocal(ref, name, local)
		}
		if err := checkForeignName(ref, name); err != nil {
			return "", err
		}
		return imports.add(importPath, "") + "." + name, nil
	}

	parts := strings.Split(ref, ".")
	switch len(parts) {
	case 1:
		return resolveLocal(ref, parts[0], local)
	case 2:
		pkgAlias, name := parts[0], parts[1]
		importPath, ok := aliases[pkgAlias]
		if !ok {
			return "", fmt.Errorf("unknown package %q in type reference %q; import it or use the full import path", pkgAlias, ref)
		}
		if err := checkForeignName(ref, name); err != nil {
			return "", err
		}
		return imports.add(importPath, pkgAlias) + "." + name, nil
	default:
		return "", fmt.Errorf("malformed type reference %q", ref)
	}
}

// resolveLocal checks that name is a type of the package being generated for.
func resolveLocal(ref, name string, local map[string]bool) (string, error) {
	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("malformed type reference %q", ref)
	}
	if !local[name] {
		return "", fmt.Errorf("unknown type %q; qualify types from other packages", ref)
	}
	return name, nil
}

func checkForeignName(ref, name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("malformed type reference %q", ref)
	}
	if !token.IsExported(name) {
		return fmt.Errorf("type reference %q names an unexported type", ref)
	}
	return nil
}

// parseImportAliases maps the names a file uses for its imports to their
// paths. Blank and dot imports are skipped.
func parseImportAliases(file *ast.File) map[string]string {
	aliases := make(map[string]string)
	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := defaultImportName(importPath)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			name = imp.Name.Name
		}
		aliases[name] = importPath
	}
	return aliases
}

var (
	majorVersion = regexp.MustCompile(`^v[0-9]+$`)

	// gopkgVersion matches gopkg.in style elements such as "yaml.v3".
	gopkgVersion = regexp.MustCompile(`^(.+)\.v[0-9]+$`)
)

// defaultImportName guesses the package name of an import path: the last
// element, skipping a major version suffix (either "/vN" or ".vN") and a
// "go-" prefix.
func defaultImportName(importPath string) string {
	elems := strings.Split(importPath, "/")
	name := elems[len(elems)-1]
	if majorVersion.MatchString(name) && len(elems) > 1 {
		name = elems[len(elems)-2]
	}
	if m := gopkgVersion.FindStringSubmatch(name); m != nil {
		name = m[1]
	}
	name = strings.TrimPrefix(name, "go-")
	name = strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}
		return r
	}, name)
	if !token.IsIdentifier(name) {
		return "pkg"
	}
	return name
}

// importSet assigns unique names to the imports of the generated file.
type importSet struct {
	byPath map[string]string
	used   map[string]bool
}

func newImportSet() *importSet {
	return &importSet{
		byPath: make(map[string]string),
		used: map[string]bool{
			"reflect":   true,
			runtimeName: true,
		},
	}
}

// add returns the name under which importPath is imported, preferring name.
func (s *importSet) add(importPath, name string) string {
	if existing, ok := s.byPath[importPath]; ok {
		return existing
	}
	if name == "" {
		name = defaultImportName(importPath)
	}
	candidate := name
	for i := 2; s.used[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	s.byPath[importPath] = candidate
	s.used[candidate] = true
	return candidate
}

func (s *importSet) sorted() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))
	for p, name := range s.byPath {
		specs = append(specs, importSpec{Name: name, Path: p})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Path < specs[j].Path })
	return specs
}
