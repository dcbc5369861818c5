// Command lvfuzzy evaluates fuzzy sets declared in a YAML definitions file
// and prints membership tables.
//
// Examples:
//
//	lvfuzzy eval -c ages.yaml
//	lvfuzzy union -c ages.yaml
//	lvfuzzy cut -c ages.yaml --set adult --alpha 0.5
//	LVFUZZY_CONFIG=ages.yaml lvfuzzy merge --op algebraic-sum
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Error("lvfuzzy failed", "err", err)
		os.Exit(1)
	}
}
