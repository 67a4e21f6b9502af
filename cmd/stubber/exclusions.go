package main

import (
	"github.com/spf13/pflag"

	"github.com/dhamidi/stubber/excluded"
	"github.com/dhamidi/stubber/project"
)

// exclusionFlags add to the excluded classes of the configuration.
type exclusionFlags struct {
	classes  []string
	lists    []string
	archives []string
	patterns []string
}

func (f *exclusionFlags) register(flags *pflag.FlagSet) {
	flags.StringArrayVar(&f.classes, "exclude", nil, "fully-qualified name of an excluded class (repeatable)")
	flags.StringArrayVar(&f.lists, "exclude-list", nil, "file with one excluded class name per line (repeatable)")
	flags.StringArrayVar(&f.archives, "exclude-archive", nil, "jar whose classes were excluded (repeatable)")
	flags.StringArrayVar(&f.patterns, "exclude-pattern", nil, "only count archive entries matching this pattern, e.g. java/awt/** (repeatable)")
}

// excludedSet loads the project configuration, merges the flags into it
// and builds the excluded class set.
func (f *exclusionFlags) excludedSet() (*project.Project, *excluded.Set, error) {
	proj, err := project.LoadFrom(rootDir)
	if err != nil {
		return nil, nil, err
	}

	proj.Excluded.Classes = append(proj.Excluded.Classes, f.classes...)
	proj.Excluded.Lists = append(proj.Excluded.Lists, f.lists...)
	proj.Excluded.Archives = append(proj.Excluded.Archives, f.archives...)
	proj.Excluded.Patterns = append(proj.Excluded.Patterns, f.patterns...)

	set, err := proj.ExcludedSet()
	if err != nil {
		return nil, nil, err
	}
	return proj, set, nil
}
