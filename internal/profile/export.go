package profile

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Encode.
const (
	FormatText = "text"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{FormatText, FormatTOML, FormatYAML}
}

// Encode writes p to w in the named format.
func Encode(w io.Writer, p Profile, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		_, err := io.WriteString(w, Describe(p))
		return err
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}

// Describe renders the profile the way the profile screen reads it.
func Describe(p Profile) string {
	var b strings.Builder
	fmt.Fprintln(&b, DisplayName(p))
	fmt.Fprintf(&b, "This user is %d years old\n", DisplayAge(p))
	fmt.Fprintf(&b, "Their gender is %s\n", DisplayGender(p))
	if !p.SignedIn {
		fmt.Fprintln(&b, "(signed out)")
	}
	return b.String()
}

func DisplayName(p Profile) string {
	if p.Name == nil {
		return "Your name here"
	}
	return *p.Name
}

func DisplayAge(p Profile) int {
	if p.Age == nil {
		return 0
	}
	return *p.Age
}

func DisplayGender(p Profile) string {
	if p.Gender == nil {
		return "Unknown"
	}
	return *p.Gender
}
