package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"go.lepak.sg/ordtree/tree/binary"
	"go.lepak.sg/ordtree/tree/iterator"
)

var (
	file    = flag.String("f", "", "read keys from this YAML file (a sequence of strings) instead of stdin")
	reverse = flag.Bool("r", false, "also print the keys in descending order")
)

func main() {
	flag.Parse()

	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "build:", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	var (
		keys []string
		err  error
	)
	if *file != "" {
		keys, err = readYAML(*file)
	} else {
		fmt.Fprint(stdout, "keys: ")
		keys, err = readWords(stdin)
	}
	if err != nil {
		return err
	}

	tr := binary.From(keys)

	fmt.Fprintln(stdout, "added:", keys)
	fmt.Fprintln(stdout, "walk:", tr.Walk())

	// the iterator should always agree with the walk
	i := tr.Iterator()
	fmt.Fprint(stdout, "iterator:")
	for i.Next() {
		fmt.Fprint(stdout, " ", i.Item())
	}
	fmt.Fprintln(stdout)

	if *reverse {
		fmt.Fprintln(stdout, "reverse:", iterator.Collect[string](tr.ReverseIterator()))
	}

	fmt.Fprintln(stdout, "tree:")
	fmt.Fprint(stdout, tr.String())
	return nil
}

func readWords(r io.Reader) ([]string, error) {
	raw, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading keys: %w", err)
	}

	return strings.Fields(raw), nil
}

func readYAML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	var keys []string
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parsing key file %s: %w", path, err)
	}
	return keys, nil
}
