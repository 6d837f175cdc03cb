package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	geojson "github.com/andyprasetya/geojson"
	"github.com/andyprasetya/geojson/internal/logger"
	drvgojson "github.com/andyprasetya/geojson/source/gojson"
)

// errFailed is returned by commands that already logged why they failed.
var errFailed = errors.New("failed")

type app struct {
	Logger logger.Logger `group:"Logger options"`

	Driver string `long:"json-driver" env:"GEOJSON_JSON_DRIVER" description:"JSON tokenizer" choice:"go-json" choice:"encoding/json" default:"go-json"`

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	parser := flags.NewParser(a, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "geojson"

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"validate", "Validate GeoJSON documents", "Parse every FILE (\"-\" for stdin) and report the first issue of each invalid document.", &validateCommand{app: a}},
		{"convert", "Convert a GeoJSON document", "Decode FILE and write it back as JSON, YAML or BSON.", &convertCommand{app: a}},
		{"info", "Summarize a GeoJSON document", "Print the type, feature count and geometry histogram of FILE.", &infoCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		a.Logger.SetupWriter(stderr)
		if a.Driver == "encoding/json" {
			geojson.UseDefaultJSONDriver()
		} else {
			geojson.SetJSONDriver(drvgojson.Driver())
		}
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

// open returns the named file, or stdin for "-".
func (a *app) open(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(a.stdin), nil
	}
	return os.Open(name)
}
