package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arraykit/typemap/descriptor"
	"github.com/arraykit/typemap/mapper"
	"github.com/arraykit/typemap/registry"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a descriptor file (.json or .yaml)")
		canonical   = flag.Bool("canonical", false, "Print only the canonical wire form")
		list        = flag.Bool("list", false, "List predefined type names and exit")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		mapper.SetLogger(logger)
	}

	if *list {
		listNames()
		return
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: typemap -in <descriptor.json|yaml> [-canonical]")
		fmt.Fprintln(os.Stderr, "       typemap -list")
		fmt.Fprintln(os.Stderr, "       typemap -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*inFile, *canonical); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listNames() {
	fmt.Println("Predefined types (suffix LE or BE selects byte order, LE default):")
	for _, name := range registry.Names() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("\nReference bases:")
	fmt.Println("  H5T_STD_REF_OBJ")
	fmt.Println("  H5T_STD_REF_DSETREG")
}

func run(inFile string, canonicalOnly bool) error {
	data, err := loadDescriptor(inFile)
	if err != nil {
		return err
	}

	t, err := descriptor.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	canon, err := mapper.Canonicalize(t)
	if err != nil {
		return fmt.Errorf("canonicalize: %w", err)
	}
	canonJSON, err := descriptor.Marshal(canon)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if canonicalOnly {
		fmt.Println(string(canonJSON))
		return nil
	}

	fmt.Printf("Descriptor: %s\n", inFile)
	fmt.Printf("Canonical:  %s\n", canonJSON)

	dt, err := mapper.BuildTop(t)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	fmt.Printf("\nNative type: %s\n", dt)
	fmt.Printf("Item size:   %d bytes\n", dt.ItemSize())
	if n := dt.NumFields(); n > 0 {
		fmt.Printf("Fields:      %d\n", n)
	}

	back, err := mapper.ReflectTop(dt)
	if err != nil {
		return fmt.Errorf("reflect: %w", err)
	}
	backJSON, err := descriptor.Marshal(back)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Printf("\nRe-encoded:  %s\n", backJSON)
	return nil
}

// loadDescriptor reads a descriptor file, converting YAML input to its JSON
// equivalent so both share one parse path.
func loadDescriptor(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}
