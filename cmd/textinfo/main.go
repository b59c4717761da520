package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Ilgrim/pennmush/buffer"
	"github.com/Ilgrim/pennmush/casemap"
	"github.com/Ilgrim/pennmush/charset"
	"github.com/Ilgrim/pennmush/pstr"
	"github.com/Ilgrim/pennmush/textscan"
	"github.com/Ilgrim/pennmush/walk"
)

func main() {
	var (
		text        = flag.String("text", "", "Text to inspect")
		file        = flag.String("file", "", "Read text from file ('-' for stdin)")
		op          = flag.String("op", "counts", "Operation: counts, tokens, upper, lower, initial, latin1, like, validate")
		sep         = flag.String("sep", " ", "Token separator (first byte is used)")
		esc         = flag.String("esc", "$", "LIKE escape character for -op like")
		limit       = flag.Int("limit", 0, "Builder length limit (0 keeps the default)")
		verbose     = flag.Bool("v", false, "Log charset conversion details")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *sep == "" {
		*sep = " "
	}
	if *esc == "" {
		*esc = "$"
	}
	if *limit > 0 {
		pstr.SetLimit(*limit)
	}
	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			charset.SetLogger(l)
			defer l.Sync()
		}
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	input, err := readInput(*text, *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Usage: textinfo -text <string> [-op counts|tokens|upper|lower|initial|latin1|like|validate]")
		fmt.Fprintln(os.Stderr, "       textinfo -file <path> -op tokens -sep '|'")
		fmt.Fprintln(os.Stderr, "       textinfo -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(input, *op, (*sep)[0], *esc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file == "" {
		return "", nil
	}
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func run(input, op string, sep byte, esc string) error {
	switch op {
	case "counts":
		printCounts(input)

	case "tokens":
		n := 0
		rest := input
		for {
			var tok string
			var more bool
			tok, rest, more = textscan.SplitToken(rest, sep)
			n++
			fmt.Printf("%3d: %q\n", n, tok)
			if !more {
				break
			}
		}
		fmt.Printf("\n%d token(s), separator %q\n", textscan.CountTokens(input, sep), sep)

	case "upper":
		fmt.Println(casemap.Upper(input))

	case "lower":
		fmt.Println(casemap.Lower(input))

	case "initial":
		fmt.Println(casemap.Initial(input))

	case "latin1":
		out := charset.UTF8ToLatin1String(input)
		fmt.Printf("latin1 bytes: % x\n", out)
		fmt.Printf("round trip:   %s\n", charset.Latin1ToUTF8String(out))

	case "like":
		r := rune(esc[0])
		fmt.Println(pstr.GlobToLike(input, r))

	case "validate":
		if charset.ValidUTF8(input) {
			fmt.Println("valid UTF-8")
			return nil
		}
		fmt.Println("invalid UTF-8")
		os.Exit(1)

	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func printCounts(input string) {
	fmt.Printf("Input: %s\n\n", input)
	fmt.Printf("bytes:         %d\n", len(input))
	fmt.Printf("codepoints:    %d\n", walk.CodepointCount(input))
	fmt.Printf("graphemes:     %d\n", walk.GraphemeCount(input))
	fmt.Printf("visible bytes: %d\n", textscan.VisibleLen(input))
	fmt.Printf("display cells: %d\n", runewidth.StringWidth(input))

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		b := buffer.NewLong()
		b.AppendString(input)
		b.FillToVisible('.', w)
		fmt.Printf("\npadded to %d columns:\n%s\n", w, b.String())
	}
}
