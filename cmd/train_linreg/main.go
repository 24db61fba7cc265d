package main

import "flag"
import "fmt"
import "io"
import "log"
import "os"

import "github.com/pkg/errors"

import "github.com/neurlang/regression/datasets"
import "github.com/neurlang/regression/learning"
import "github.com/neurlang/regression/trainer"

const usage = `Usage: %[1]s [-summary] <input-target pairs file> [settings file]

<input-target pairs file> example (input-target.txt):
1 2
2 3
3 4
123 432
10 1
-10 37

[settings file] example (settings.txt):
w 0.0
b 0.0
alpha 0.00001
iterations 100000
log-every 100
output stdout

Settings:
  w           initial weight
  b           initial bias
  alpha       learning rate
  iterations  last iteration to train, inclusive, starting from 0
              (1000 trains 0..1000, which is 1001 iterations)
  log-every   iterations between log lines (100 logs 0, 100, 200, ...)
  output      file the log is written to (stdout when unspecified)
              the value stdout is reserved and always means standard output
  threads     goroutines computing the gradient, 0 uses every core (default 1)

The settings file is optional, the example above lists the defaults.
Any subset of the settings may be given, in any order, for example:
log-every 1000
w 100

Both files contain whitespace separated values.
`

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	diag := log.New(stderr, "", 0)

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	summary := flags.Bool("summary", false, "print cost and the least squares fit to stderr after training")
	flags.Usage = func() {
		fmt.Fprintf(stderr, usage, args[0])
	}
	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}
	if flags.NArg() < 1 || flags.NArg() > 2 {
		fmt.Fprintf(stderr, "Error: Invalid number of arguments provided.\n\n")
		flags.Usage()
		return 1
	}

	dataset, err := datasets.LoadPairs(flags.Arg(0))
	if err != nil {
		diag.Println("Error:", err)
		return 1
	}
	if err := dataset.Validate(); err != nil {
		diag.Println("Error:", errors.Wrap(err, flags.Arg(0)))
		return 1
	}

	var h = learning.Defaults()
	if flags.NArg() == 2 {
		h, err = learning.LoadSettings(flags.Arg(1), diag)
		if err != nil {
			diag.Println("Error:", err)
			return 1
		}
	}
	if err := h.Validate(); err != nil {
		diag.Println("Error:", err)
		return 1
	}

	sink, err := learning.OpenSink(h.Output, stdout)
	if err != nil {
		diag.Println("Error:", err)
		return 1
	}
	defer sink.Close()

	ws, err := trainer.NewLoopFunc(dataset, h, sink)()
	if err != nil {
		diag.Println("Error:", err)
		return 1
	}
	if err := sink.Close(); err != nil {
		diag.Println("Error:", errors.Wrap(err, "closing output file"))
		return 1
	}

	if *summary {
		diag.Println(trainer.NewEvaluateFunc(dataset)(ws))
	}
	return 0
}
