// sanitize-har removes card data and session material from HAR recordings
// before committing.
//
// Usage:
//
//	go run ./scripts/sanitize-har -scenario=transfer_with_phone
//	go run ./scripts/sanitize-har -input=recording.har.json -output=sanitized.har.json
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/testutil"
)

func main() {
	scenario := flag.String("scenario", "", "Scenario name (e.g., transfer_with_phone)")
	inputPath := flag.String("input", "", "Input HAR file path")
	outputPath := flag.String("output", "", "Output HAR file path (defaults to input path)")
	dryRun := flag.Bool("dry-run", false, "Show what would be redacted without modifying")
	flag.Parse()

	var inPath, outPath string
	switch {
	case *scenario != "":
		inPath = filepath.Join("internal", "automator", "transfer", "privatbank", "testdata", "recordings", *scenario+".har.json")
		outPath = inPath
	case *inputPath != "":
		inPath = *inputPath
		outPath = *inputPath
		if *outputPath != "" {
			outPath = *outputPath
		}
	default:
		flag.Usage()
		os.Exit(1)
	}

	har, err := testutil.LoadHAR(inPath)
	if err != nil {
		fmt.Printf("Error loading HAR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d entries from %s\n", len(har.Entries), inPath)

	sanitized := testutil.SanitizeHAR(har)

	changed := 0
	for i := range har.Entries {
		orig, san := har.Entries[i], sanitized.Entries[i]
		if orig.Request.URL != san.Request.URL ||
			orig.Request.Body() != san.Request.Body() ||
			orig.Response.Content.Text != san.Response.Content.Text {
			changed++
			fmt.Printf("  - entry %d: %s %s\n", i+1, orig.Request.Method, truncateURL(orig.Request.URL))
		}
	}
	fmt.Printf("Redacted data in %d entries\n", changed)

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes written.")
		return
	}

	if err := testutil.SaveHAR(outPath, sanitized); err != nil {
		fmt.Printf("Error saving HAR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sanitized HAR saved to: %s\n", outPath)
}

func truncateURL(url string) string {
	if len(url) > 80 {
		return url[:77] + "..."
	}
	return url
}
