package main

// Prints the configuration the editor would start with: where the user
// config lives, the keyword bound to every command and the line number
// style.

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PrintInfo writes a summary table of the resolved configuration to w.
func PrintInfo(w io.Writer, path string, cfg UserConfig, errs []error) {
	fmt.Fprintf(w, "Config:       %s\n", path)
	fmt.Fprintf(w, "Line numbers: %s\n\n", cfg.LineNumbers)

	// Table header.
	fmt.Fprintf(w, "%-20s %-10s\n", "Command", "Keyword")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	names := make([]string, 0, len(verbNames))
	for name := range verbNames {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var keywords []string
		for keyword, verb := range cfg.Bindings {
			if verb == verbNames[name] {
				keywords = append(keywords, keyword)
			}
		}
		sort.Strings(keywords)
		keyword := strings.Join(keywords, ", ")
		if keyword == "" {
			keyword = "(unbound)"
		}
		fmt.Fprintf(w, "%-20s %-10s\n", name, keyword)
	}

	if len(errs) > 0 {
		fmt.Fprintln(w, "\nProblems:")
		for _, err := range errs {
			fmt.Fprintf(w, "  %v\n", err)
		}
	}
}
