/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/voedger/graphcheck/pkg/validators"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

func printJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printCheck(w io.Writer, r checkResponse) {
	if len(r.Violations) == 0 {
		fmt.Fprintf(w, "%s %s at %s\n", green("OK"), r.ConstraintName, r.SchemaPath)
		return
	}
	fmt.Fprintf(w, "%s %s at %s: %d violation(s)\n", red("FAIL"), r.ConstraintName, r.SchemaPath, len(r.Violations))
	printViolations(w, r.Violations)
}

func printViolations(w io.Writer, vv []*validators.SchemaViolation) {
	for _, v := range vv {
		fmt.Fprintf(w, "    %s\n", v.Message)
	}
}

// Returns ErrViolationsFound if there are violations
func violationsErr(cnt int) error {
	if cnt > 0 {
		return fmt.Errorf("%w: %d", ErrViolationsFound, cnt)
	}
	return nil
}
