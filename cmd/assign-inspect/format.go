package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/microbean/microbean-assign/assign"
	"github.com/microbean/microbean-assign/domain"
)

var validFormats = []string{"text", "yaml"}

func validateFormat(format string) error {
	if slices.Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}

// textWriter is implemented by results that can render themselves as text.
type textWriter interface {
	writeText(w io.Writer) error
}

func writeResult(w io.Writer, format string, result textWriter) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()
	}
	return result.writeText(w)
}

type supertypeEntry struct {
	Type      string `yaml:"type"`
	Erased    string `yaml:"erased"`
	Interface bool   `yaml:"interface"`
}

type supertypesResult struct {
	Type       string           `yaml:"type"`
	Supertypes []supertypeEntry `yaml:"supertypes"`
}

func newSupertypesResult(t domain.Type, l assign.SupertypeList) supertypesResult {
	r := supertypesResult{Type: t.String()}
	idx := l.InterfaceIndex()
	for i, s := range l.All() {
		r.Supertypes = append(r.Supertypes, supertypeEntry{
			Type:      s.String(),
			Erased:    assign.ErasedName(s),
			Interface: idx >= 0 && i >= idx,
		})
	}
	return r
}

func (r supertypesResult) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tKIND")
	for i, s := range r.Supertypes {
		kind := "type"
		if s.Interface {
			kind = "interface"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, s.Type, kind)
	}
	return tw.Flush()
}

type assignableResult struct {
	Receiver   string `yaml:"receiver"`
	Payload    string `yaml:"payload"`
	Assignable bool   `yaml:"assignable"`
	Identical  bool   `yaml:"identical"`
}

func (r assignableResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s <- %s: assignable=%t identical=%t\n", r.Receiver, r.Payload, r.Assignable, r.Identical)
	return err
}

type resolveResult struct {
	Required string   `yaml:"required"`
	Selected []string `yaml:"selected"`
	Resolved string   `yaml:"resolved,omitempty"`
	Error    string   `yaml:"error,omitempty"`
}

func (r resolveResult) writeText(w io.Writer) error {
	fmt.Fprintf(w, "Required: %s\n", r.Required)
	fmt.Fprintln(w, "Selected:")
	for i, s := range r.Selected {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
	if r.Resolved != "" {
		fmt.Fprintf(w, "Resolved: %s\n", r.Resolved)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", r.Error)
	}
	return nil
}
