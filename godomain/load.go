package godomain

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/microbean/microbean-assign/domain"
	"github.com/microbean/microbean-assign/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// ErrNotFound indicates that Lookup found no type of the given name.
var ErrNotFound = errors.New("type not found")

// Load loads the packages matching patterns and returns a Domain over them.
// Patterns are standard Go package patterns (e.g., "./...",
// "github.com/microbean/microbean-assign/domain").
func Load(patterns ...string) (*Domain, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	typed := make([]*types.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		typed = append(typed, pkg.Types)
	}
	return New(typed...), nil
}

// Lookup returns the type named name. Names are predeclared types such as
// "int" or "error", or a package path and a type name joined by a dot, such
// as "github.com/microbean/microbean-assign/domain.Kind". The last element
// of the package path may stand in for the whole path when it is unique
// among the loaded packages, as in "domain.Kind". Prefixes "*" and "[]"
// build pointer and slice types.
func (d *Domain) Lookup(name string) (domain.Type, error) {
	t, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	return d.Type(t), nil
}

func (d *Domain) lookup(name string) (types.Type, error) {
	switch {
	case strings.HasPrefix(name, "*"):
		elem, err := d.lookup(name[1:])
		if err != nil {
			return nil, err
		}
		return types.NewPointer(elem), nil
	case strings.HasPrefix(name, "[]"):
		elem, err := d.lookup(name[2:])
		if err != nil {
			return nil, err
		}
		return types.NewSlice(elem), nil
	}

	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		if tn, ok := types.Universe.Lookup(name).(*types.TypeName); ok {
			return tn.Type(), nil
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	pkgPath, typeName := name[:i], name[i+1:]
	var matches []*types.Package
	for _, pkg := range d.pkgs {
		if pkg.Path() == pkgPath {
			matches = []*types.Package{pkg}
			break
		}
		if common.PkgAlias(pkg.Path()) == pkgPath {
			matches = append(matches, pkg)
		}
	}
	switch {
	case common.IsEmpty(matches):
		return nil, fmt.Errorf("%w: %s: package %s is not loaded", ErrNotFound, name, pkgPath)
	case common.IsMultiple(matches):
		return nil, fmt.Errorf("%w: %s: package name %s is ambiguous", ErrNotFound, name, pkgPath)
	}

	tn, ok := matches[0].Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return tn.Type(), nil
}
