package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/domain"
	"github.com/microbean/microbean-assign/godomain"
	"github.com/microbean/microbean-assign/resolve"
)

func newSupertypesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "supertypes <pattern> <type>",
		Short: "Print the supertype closure of a type",
		Long:  "Loads the packages matching pattern and prints every supertype of type: non-interface types first, then interfaces from most to least specialized.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := godomain.Load(args[0])
			if err != nil {
				return err
			}
			t, err := d.Lookup(args[1])
			if err != nil {
				return err
			}
			ts, err := assign.NewTypes(d, assign.WithLogger(opts.logger(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}
			l, err := ts.Supertypes(t)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.format, newSupertypesResult(t, l))
		},
	}
}

func newAssignableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assignable <pattern> <receiver> <payload>",
		Short: "Report whether payload may flow into receiver",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := godomain.Load(args[0])
			if err != nil {
				return err
			}
			receiver, err := d.Lookup(args[1])
			if err != nil {
				return err
			}
			payload, err := d.Lookup(args[2])
			if err != nil {
				return err
			}
			m, err := assign.NewTypeMatcher(d)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts.format, assignableResult{
				Receiver:   receiver.String(),
				Payload:    payload.String(),
				Assignable: m.CovariantlyAssignable(receiver, payload),
				Identical:  m.Identical(receiver, payload),
			})
		},
	}
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <pattern> <candidates.yaml> <type> [qualifier...]",
		Short: "Resolve a requirement against candidates",
		Long: "Loads the packages matching pattern and the candidates file, then selects the candidates eligible for type with the given qualifiers. " +
			"A qualifier is a name, such as Default, or name=value, such as Named=primary.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := godomain.Load(args[0])
			if err != nil {
				return err
			}
			cf, err := resolve.LoadCandidates(args[1])
			if err != nil {
				return err
			}
			lookup := typeLookup(d)
			candidates, err := cf.Bind(lookup)
			if err != nil {
				return err
			}
			r, err := resolve.New(d, candidates, resolve.WithLogger(opts.logger(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}

			required, err := requirement(args[2], args[3:]).Bind(lookup)
			if err != nil {
				return err
			}

			result := resolveResult{Required: required.String()}
			for _, s := range r.Select(required) {
				result.Selected = append(result.Selected, s.String())
			}
			resolved, resolveErr := r.Resolve(required)
			if resolveErr != nil {
				result.Error = resolveErr.Error()
			} else {
				result.Resolved = resolved.String()
			}
			if err := writeResult(cmd.OutOrStdout(), opts.format, result); err != nil {
				return err
			}
			return resolveErr
		},
	}
}

// requirement builds a candidate spec from command line arguments.
func requirement(typeName string, qualifiers []string) resolve.CandidateSpec {
	spec := resolve.CandidateSpec{Type: typeName}
	for _, q := range qualifiers {
		name, value, ok := strings.Cut(q, "=")
		qs := resolve.QualifierSpec{Name: name}
		if ok {
			qs.Values = map[string]any{"value": value}
		}
		spec.Qualifiers = append(spec.Qualifiers, qs)
	}
	return spec
}

func typeLookup(d *godomain.Domain) resolve.TypeLookup {
	return func(name string) (domain.Type, error) {
		t, err := d.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", resolve.ErrUnknownType, err)
		}
		return t, nil
	}
}
