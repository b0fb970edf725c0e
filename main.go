package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Frusadev/mdparser/driver"
	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/spf13/pflag"
)

func main() {
	var inputPath string
	flags := pflag.NewFlagSet("mdparser", pflag.ExitOnError)
	flags.StringVarP(&inputPath, "input", "i", "", "input file path")
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if inputPath == "" {
		if err := RunPrompt(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		if err := RunFile(inputPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

var history = filepath.Join(xdg.DataHome, "mdparser", ".mdparser_history")

// RunPrompt renders each prompt line as HTML and prints it.
func RunPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		html, err := driver.RenderSource(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			continue
		}
		fmt.Println(html)
	}
}

// RunFile renders the whole document at path to stdout.
func RunFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	html, err := driver.RenderSource(string(bytes))
	if err != nil {
		return err
	}
	fmt.Println(html)

	return nil
}
