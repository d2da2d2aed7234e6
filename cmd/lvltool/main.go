package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/leveledit/editor"
	"github.com/milk9111/leveledit/levels"
	"github.com/milk9111/leveledit/logger"
	"github.com/sirupsen/logrus"
)

const usage = `usage: lvltool <command> [flags] <args>

commands:
  info <level>              print a summary of a level
  convert <in> <out>        re-encode a level; the format follows the extension
  run -script s.tengo <lvl> apply a macro script and save the result
  new [-from name] <out>    write an empty or bundled level
`

var errUsage = errors.New("bad usage")

func main() {
	logger.Init()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Log.WithError(err).Fatal("lvltool")
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "info":
		return cmdInfo(rest, out)
	case "convert":
		return cmdConvert(rest)
	case "run":
		return cmdRun(rest)
	case "new":
		return cmdNew(rest)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func cmdInfo(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	lvl, err := levels.LoadFile(args[0])
	if err != nil {
		return err
	}
	printInfo(out, lvl)
	return nil
}

func printInfo(out io.Writer, lvl *levels.Level) {
	fmt.Fprintf(out, "name:           %s\n", lvl.Name)
	fmt.Fprintf(out, "author time:    %g\n", lvl.AuthorTime)
	fmt.Fprintf(out, "files required: %d\n", lvl.FilesRequired)
	fmt.Fprintf(out, "start:          (%g, %g) angle %g\n", lvl.Start.Position.X(), lvl.Start.Position.Y(), lvl.Start.Angle)

	keys, files := 0, 0
	for _, p := range lvl.Pickups {
		if p.Kind == levels.PickupFile {
			files++
		} else {
			keys++
		}
	}
	fmt.Fprintf(out, "pickups:        %d (%d key, %d file)\n", len(lvl.Pickups), keys, files)

	doors := 0
	for _, w := range lvl.Walls {
		if w.Kind == levels.WallDoor {
			doors++
		}
	}
	fmt.Fprintf(out, "walls:          %d (%d door)\n", len(lvl.Walls), doors)

	byKind := map[levels.ZoneKind]int{}
	for _, z := range lvl.Zones {
		byKind[z.Kind]++
	}
	fmt.Fprintf(out, "zones:          %d", len(lvl.Zones))
	sep := " ("
	for k := levels.ZoneEnd; k <= levels.ZoneDanger; k++ {
		if n := byKind[k]; n > 0 {
			fmt.Fprintf(out, "%s%d %s", sep, n, k)
			sep = ", "
		}
	}
	if sep == ", " {
		fmt.Fprint(out, ")")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "dialogs:        %d\n", len(lvl.Dialogs))
}

func cmdConvert(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	lvl, err := levels.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := levels.SaveFile(args[1], lvl); err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"from":   args[0],
		"to":     args[1],
		"format": levels.FormatForPath(args[1]).String(),
	}).Info("converted level")
	return nil
}

func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	script := fs.String("script", "", "tengo macro to apply")
	output := fs.String("o", "", "write the result here instead of over the input")
	create := fs.Bool("create", false, "start from an empty level when the input does not exist")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if *script == "" || fs.NArg() != 1 {
		return errUsage
	}
	path := fs.Arg(0)

	src, err := os.ReadFile(*script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := editor.NewEngine(nil)
	if err := engine.Load(path); err != nil {
		if !*create || !errors.Is(err, os.ErrNotExist) {
			return err
		}
		engine.Replace(levels.New(), path)
	}

	if err := editor.RunScript(engine, src); err != nil {
		return err
	}

	dest := *output
	if dest == "" {
		dest = path
	}
	if err := engine.Save(dest); err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"script": *script,
		"level":  dest,
	}).Info("script applied")
	return nil
}

func cmdNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	from := fs.String("from", "", "bundled level to copy")
	name := fs.String("name", "", "level name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	lvl := levels.New()
	if *from != "" {
		var err error
		if lvl, err = levels.LoadLevelFromFS(*from); err != nil {
			return fmt.Errorf("bundled level %q: %w", *from, err)
		}
	}
	if *name != "" {
		lvl.Name = *name
	}
	return levels.SaveFile(levels.NormalizePath(fs.Arg(0)), lvl)
}
