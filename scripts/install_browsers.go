// Installs the Chromium build Playwright drives. Run once per machine
// before the smoke suite:
//
//	go run ./scripts
package main

import (
	"fmt"
	"os"

	"github.com/playwright-community/playwright-go"
)

func main() {
	err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to install browsers: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("chromium installed")
}
