// Package main demonstrates the mixfix library's functionality.
package main

import (
	"fmt"

	gomixfix "github.com/gomixfix/mixfix"
	"github.com/gomixfix/mixfix/debug"
	"github.com/gomixfix/mixfix/examples"
	"github.com/gomixfix/mixfix/rawreader"
)

func main() {
	input := "if x + y then - z ! else f {y} z"

	fmt.Println("=== RAW READER OUTPUT ===")
	raw, err := rawreader.Parse(input)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(raw.String())

	fmt.Println("\n=== MIXFIX OUTPUT ===")
	g := examples.NewArithmeticGrammar()
	exp, err := gomixfix.Parse(input, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(exp.String())

	fmt.Println("\n=== DEBUG DUMP ===")
	debug.Print(exp)

	fmt.Printf("\nmixfix version: %s\n", gomixfix.Version)
}
