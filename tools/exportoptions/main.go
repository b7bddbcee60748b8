// One-shot export of the options catalog to a JSON file, for clients that
// want the selectable tree without running the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"lpcgen/api/service"
	"lpcgen/api/system"

	"github.com/joho/godotenv"
)

func main() {
	output := flag.String("o", "api/options.json", "output file path")
	flag.Parse()

	_ = godotenv.Load()
	system.Init()

	svc := service.NewCatalogService(system.GetConfig().AssetRoot)
	options, err := svc.ListOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build options catalog:", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(options, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal options:", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(*output); len(dir) > 0 && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "create output dir:", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)
		os.Exit(1)
	}
	fmt.Println("options written to", *output)
}
