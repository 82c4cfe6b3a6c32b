package shell

import (
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"hopd/internal/errors"
	"hopd/pkg/calc"
	"hopd/pkg/passgen"
	"hopd/pkg/sysinfo"
)

// builtin is one shell command handled in-process
type builtin struct {
	name    string
	aliases []string
	usage   string
	about   string
	run     func(ctx context.Context, sh *Shell, args []string) error
}

// builtinTable lists the builtins in help order
var builtinTable = []builtin{
	{name: "cd", usage: "cd [dir]", about: "change directory, cd - goes back", run: runCd},
	{name: "back", usage: "back", about: "return to the previous directory", run: runBack},
	{name: "verbose", aliases: []string{"toggle-cd-verbose"}, usage: "verbose", about: "toggle the report after directory changes", run: runVerbose},
	{name: "history", usage: "history [-c]", about: "show the directory stack, -c clears it", run: runHistory},
	{name: "pwd", usage: "pwd", about: "print the current directory", run: runPwd},
	{name: "extract", usage: "extract <archive>...", about: "extract archives with the right tool", run: runExtract},
	{name: "compress", usage: "compress <archive> <input>...", about: "create an archive from inputs", run: runCompress},
	{name: "formats", usage: "formats", about: "list supported archive formats", run: runFormats},
	{name: "info", usage: "info", about: "show a short system report", run: runInfo},
	{name: "calc", usage: "calc <expression>", about: "evaluate an expression with bc", run: runCalc},
	{name: "genpass", usage: "genpass [-l n] [-n count] [-no-symbols]", about: "generate random passwords", run: runGenpass},
	{name: "help", usage: "help", about: "list available commands"},
	{name: "exit", aliases: []string{"quit"}, usage: "exit", about: "leave the shell", run: runExit},
}

// builtins resolves names and aliases to their entry
var builtins = make(map[string]*builtin, len(builtinTable))

func init() {
	for i := range builtinTable {
		b := &builtinTable[i]
		// assigned here to break the initialization cycle through
		// the table
		if b.name == "help" {
			b.run = runHelp
		}
		builtins[b.name] = b
		for _, alias := range b.aliases {
			builtins[alias] = b
		}
	}
}

func runCd(ctx context.Context, sh *Shell, args []string) error {
	if len(args) > 1 {
		return errors.New("cd: too many arguments")
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	if target == "-" {
		_, err := sh.session.GoBack(ctx)
		return err
	}
	return sh.session.ChangeDirectory(ctx, target)
}

func runBack(ctx context.Context, sh *Shell, args []string) error {
	_, err := sh.session.GoBack(ctx)
	return err
}

func runVerbose(ctx context.Context, sh *Shell, args []string) error {
	if sh.session.ToggleVerbose() {
		sh.ui.Info("verbose reporting on")
	} else {
		sh.ui.Info("verbose reporting off")
	}
	return nil
}

func runHistory(ctx context.Context, sh *Shell, args []string) error {
	if len(args) > 0 && args[0] == "-c" {
		sh.session.History().Clear()
		sh.ui.Info("history cleared")
		return nil
	}

	entries := sh.session.History().Entries()
	if len(entries) == 0 {
		sh.ui.Info("history is empty")
		return nil
	}
	for i := len(entries) - 1; i >= 0; i-- {
		sh.ui.Plain("%2d  %s", len(entries)-i, entries[i])
	}
	return nil
}

func runPwd(ctx context.Context, sh *Shell, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "cannot determine current directory")
	}
	sh.ui.Plain("%s", wd)
	return nil
}

func runExtract(ctx context.Context, sh *Shell, args []string) error {
	if len(args) == 0 {
		return errors.NewKind("usage: extract <archive>...", errors.MissingArgument)
	}
	for _, path := range args {
		report, err := sh.transcoder.Extract(ctx, path)
		if err != nil {
			return err
		}
		sh.ui.Extraction(report)
	}
	return nil
}

func runCompress(ctx context.Context, sh *Shell, args []string) error {
	if len(args) < 2 {
		return errors.NewKind("usage: compress <archive> <input>...", errors.MissingArgument)
	}
	report, err := sh.transcoder.Compress(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	sh.ui.Compression(report)
	return nil
}

func runFormats(ctx context.Context, sh *Shell, args []string) error {
	sh.ui.FormatTable(sh.transcoder.Table().Formats(), sh.transcoder.Availability())
	return nil
}

func runInfo(ctx context.Context, sh *Shell, args []string) error {
	sh.ui.Sysinfo(sysinfo.Collect(ctx, sh.runner))
	return nil
}

func runCalc(ctx context.Context, sh *Shell, args []string) error {
	if len(args) == 0 {
		return errors.NewKind("usage: calc <expression>", errors.MissingArgument)
	}
	result, err := calc.Eval(ctx, sh.runner, strings.Join(args, " "))
	if err != nil {
		return err
	}
	sh.ui.Plain("%s", result)
	return nil
}

func runGenpass(ctx context.Context, sh *Shell, args []string) error {
	set := flag.NewFlagSet("genpass", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	length := set.Int("l", passgen.DefaultLength, "password length")
	count := set.Int("n", 1, "how many passwords")
	noSymbols := set.Bool("no-symbols", false, "letters and digits only")
	if err := set.Parse(args); err != nil {
		return errors.Wrap(err, "genpass")
	}

	for i := 0; i < *count; i++ {
		pw, err := passgen.Generate(passgen.Options{Length: *length, Symbols: !*noSymbols})
		if err != nil {
			return err
		}
		sh.ui.Plain("%s", pw)
	}
	return nil
}

func runHelp(ctx context.Context, sh *Shell, args []string) error {
	sh.ui.Header("Commands")
	rows := make([][]string, 0, len(builtinTable)+1)
	for _, b := range builtinTable {
		rows = append(rows, []string{b.usage, b.about})
	}
	rows = append(rows, []string{"<anything else>", "run it as a system command"})
	sh.ui.Table(rows)
	return nil
}

func runExit(ctx context.Context, sh *Shell, args []string) error {
	return errExit
}
