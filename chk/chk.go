// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chk implements functions for checking and testing computations
package chk

import (
	"fmt"
	"os"
)

// Verbose turns verbose mode on, even during tests (see PrintTitle)
var Verbose = false

// Err returns a new error with a formatted message, gosl-style
func Err(msg string, prm ...interface{}) error {
	return fmt.Errorf(msg, prm...)
}

// Panic panics with a formatted message
func Panic(msg string, prm ...interface{}) {
	panic(fmt.Sprintf(msg, prm...))
}

// PanicSimple panics with a simple unformatted message
func PanicSimple(msg string) {
	panic(msg)
}

// PrintTitle prints a title with a horizontal line, used by tests
func PrintTitle(title string) {
	if Verbose {
		fmt.Fprintf(os.Stdout, "\n=== %s %s\n", title, dashes(60-len(title)))
	}
}

func dashes(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '='
	}
	return string(b)
}
