package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/swf-transcoder/transcoder"
)

func main() {
	var (
		swfFile     = flag.String("swf", "", "Path to input movie")
		symbol      = flag.String("symbol", "", "Exported symbol name to extract")
		outFile     = flag.String("out", "", "Path to output movie")
		className   = flag.String("class", transcoder.DefaultClassName, "Class name exported by the output movie")
		list        = flag.Bool("list", false, "List exported symbols and exit")
		verbose     = flag.Bool("v", false, "Verbose extraction trace")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *swfFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: swfextract -swf <file.swf> -symbol <name> -out <file.swf>")
		fmt.Fprintln(os.Stderr, "       swfextract -swf <file.swf> -list")
		fmt.Fprintln(os.Stderr, "       swfextract -swf <file.swf> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		transcoder.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*swfFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*swfFile, *symbol, *outFile, *className, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(swfFile, symbol, outFile, className string, listOnly bool) error {
	data, err := os.ReadFile(swfFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if listOnly {
		exports, err := transcoder.ListExports(data)
		if err != nil {
			return err
		}
		if len(exports) == 0 {
			fmt.Println("no exported symbols")
			return nil
		}
		for _, e := range exports {
			fmt.Printf("%5d  %s\n", e.ID, e.Name)
		}
		return nil
	}

	if symbol == "" || outFile == "" {
		return fmt.Errorf("both -symbol and -out are required")
	}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	res, err := transcoder.Extract(data, []byte(symbol), out, transcoder.Options{ClassName: className})
	if err != nil {
		out.Close()
		os.Remove(outFile)
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	fmt.Printf("wrote %s (%d bytes)\n", outFile, res.FileLength)
	if res.Bounds != nil {
		b := res.Bounds
		fmt.Printf("bounds: %dx%d at (%d,%d) twips\n", b.Width, b.Height, b.X, b.Y)
	}
	return nil
}
