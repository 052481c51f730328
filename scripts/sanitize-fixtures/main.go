// sanitize-fixtures redacts card numbers, CVV codes and phone numbers from
// captured wizard HTML fixtures before committing.
//
// Usage:
//
//	go run ./scripts/sanitize-fixtures [-dry-run]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/testutil"
)

func main() {
	dir := flag.String("dir", filepath.Join("internal", "automator", "transfer", "privatbank", "testdata", "fixtures"), "Fixtures directory")
	dryRun := flag.Bool("dry-run", false, "Show what would be changed without modifying files")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*dir, "*.html"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No HTML files found in %s\n", *dir)
		os.Exit(1)
	}

	fmt.Printf("🔒 Sanitizing fixtures in %s\n", *dir)
	if *dryRun {
		fmt.Println("    (DRY RUN - no files will be modified)")
	}
	fmt.Println()

	for _, file := range files {
		sanitizeFile(file, *dryRun)
	}

	fmt.Println()
	fmt.Println("✅ Sanitization complete!")
}

func sanitizeFile(path string, dryRun bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ Error reading %s: %v\n", path, err)
		return
	}

	original := string(content)
	sanitized := testutil.SanitizeText(original)
	filename := filepath.Base(path)

	if sanitized == original {
		fmt.Printf("📄 %s: No sensitive data found\n", filename)
		return
	}

	fmt.Printf("📄 %s: Found sensitive data\n", filename)
	if dryRun {
		return
	}
	if err := os.WriteFile(path, []byte(sanitized), 0o644); err != nil {
		fmt.Printf("    ❌ Error writing %s: %v\n", path, err)
		return
	}
	fmt.Println("    ✅ Sanitized and saved")
}
