// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package io implements functions for formatted and colored console output
package io

import "fmt"

// Pf formats according to a format specifier and writes to standard output
func Pf(msg string, prm ...interface{}) {
	fmt.Printf(msg, prm...)
}

// Pl prints a new line
func Pl() {
	fmt.Println()
}

// Sf formats according to a format specifier and returns the string
func Sf(msg string, prm ...interface{}) string {
	return fmt.Sprintf(msg, prm...)
}

// PfYel prints formatted message in yellow
func PfYel(msg string, prm ...interface{}) {
	fmt.Printf("\033[33m"+msg+"\033[0m", prm...)
}

// PfRed prints formatted message in red
func PfRed(msg string, prm ...interface{}) {
	fmt.Printf("\033[31m"+msg+"\033[0m", prm...)
}

// PfGreen prints formatted message in green
func PfGreen(msg string, prm ...interface{}) {
	fmt.Printf("\033[32m"+msg+"\033[0m", prm...)
}

// PfCyan prints formatted message in cyan
func PfCyan(msg string, prm ...interface{}) {
	fmt.Printf("\033[36m"+msg+"\033[0m", prm...)
}
