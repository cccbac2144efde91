package main

import (
	"github.com/richy-trading/richy/pkg/cmd"
)

func main() {
	cmd.Execute()
}
