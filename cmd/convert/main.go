package main

import (
	"fmt"
	"io"
	"os"

	"github.com/damon-houk/exchange-rate-converter/internal/application/service"
	"github.com/damon-houk/exchange-rate-converter/internal/infrastructure/logger"
)

func main() {
	run(os.Args[1:], os.Stdout)
}

// run executes the converter CLI. It expects exactly two arguments, input
// and output path; any other count prints the usage line and performs no
// conversion.
func run(args []string, out io.Writer) bool {
	if len(args) != 2 {
		fmt.Fprintln(out, "Usage: convert <input.csv> <output.json>")
		return false
	}

	log := logger.NewJSONLogger(os.Stderr, logger.ErrorLevel)
	converter := service.NewConversionService(out, log)
	return converter.Convert(args[0], args[1])
}
