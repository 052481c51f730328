// capture-fixtures saves the HTML and a screenshot of each sendmoney wizard
// step, for writing and debugging page tests.
//
// Usage:
//
//	go run ./scripts/capture-fixtures [-output=dir]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer/privatbank"
)

var capturePages = []PageCapture{
	{Name: "main_page", Instructions: "Wait for the empty main form"},
	{Name: "main_page_filled", Instructions: "Fill every field by hand, wait for the send button to turn active"},
	{Name: "confirmation_page", Instructions: "Press send and wait for step 2 (do NOT confirm)"},
}

type PageCapture struct {
	Name         string
	Instructions string
}

func main() {
	outputDir := flag.String("output", filepath.Join("internal", "automator", "transfer", "privatbank", "testdata", "fixtures"), "Output directory")
	bin := flag.String("bin", "", "Chrome binary (default: auto-detect)")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	l := launcher.New().
		Headless(false).
		Set("disable-blink-features", "AutomationControlled").
		Set("no-first-run").
		Set("window-size", "1920,1080")
	if *bin != "" {
		l = l.Bin(*bin)
	}

	b := rod.New().ControlURL(l.MustLaunch()).MustConnect()
	defer b.MustClose()

	page := stealth.MustPage(b)
	page.MustNavigate(privatbank.SendMoneyURL)

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("📋 Capturing sendmoney wizard into %s\n", *outputDir)
	fmt.Println("   Type 'skip' to skip a page, 'quit' to exit")

	for _, capture := range capturePages {
		fmt.Println("────────────────────────────────────────────────────────────────")
		fmt.Printf("📄 Capturing: %s.html\n", capture.Name)
		fmt.Printf("📝 Instructions: %s\n", capture.Instructions)
		fmt.Print("   Press ENTER when ready (or 'skip'/'quit'): ")

		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input == "quit" {
			break
		}
		if input == "skip" {
			continue
		}

		page.MustWaitDOMStable()

		screenshotPath := filepath.Join(*outputDir, capture.Name+".png")
		if buf, err := page.Screenshot(false, nil); err == nil {
			if err := os.WriteFile(screenshotPath, buf, 0o644); err != nil {
				fmt.Printf("   ⚠️  Error saving screenshot: %v\n", err)
			}
		}

		html, err := page.HTML()
		if err != nil {
			fmt.Printf("   ❌ Error capturing HTML: %v\n\n", err)
			continue
		}

		name := capture.Name
		summary, hasPhone, err := inspect(html)
		if err != nil {
			fmt.Printf("   ⚠️  Could not inspect HTML: %v\n", err)
		}
		if capture.Name == "confirmation_page" && !hasPhone {
			name = "confirmation_page_no_phone"
		}
		fmt.Printf("   🔎 %s\n", summary)

		htmlPath := filepath.Join(*outputDir, name+".html")
		if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
			fmt.Printf("   ❌ Error saving HTML: %v\n\n", err)
			continue
		}
		fmt.Printf("   ✅ Saved: %s\n", htmlPath)
	}

	fmt.Println("════════════════════════════════════════════════════════════════")
	fmt.Println("⚠️  IMPORTANT: Sanitize card data before committing!")
	fmt.Println("   Run: go run ./scripts/sanitize-fixtures")
}

// inspect summarizes the form controls of a captured step and reports
// whether the phone field is on it.
func inspect(html string) (string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false, err
	}

	hasPhone := doc.Find("#step2Phone").Length() > 0
	summary := fmt.Sprintf("%d input(s), %d select(s), receiver card inputs: %d, phone field: %t",
		doc.Find("input").Length(),
		doc.Find("select").Length(),
		doc.Find("#receiver_card input").Length(),
		hasPhone,
	)
	return summary, hasPhone, nil
}
