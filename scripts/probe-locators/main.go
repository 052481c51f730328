// probe-locators opens the sendmoney wizard in a visible browser and checks
// every locator of the registry against the live page. Run it whenever the
// site changes its layout.
//
// Usage:
//
//	go run ./scripts/probe-locators
//
// Navigate to each step when prompted, then press ENTER to probe it.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer/privatbank"
)

// expected number of matches per field; 0 means "at least one"
var expectedCount = map[privatbank.Field]int{
	privatbank.FieldSenderCardNumber:   4,
	privatbank.FieldReceiverCardNumber: 4,
}

type step struct {
	Name         string
	Instructions string
	Locators     privatbank.LocatorSet
}

func main() {
	steps := []step{
		{"Main page", "Wait for the main form to load", privatbank.MainPageLocators()},
		{"Confirmation page", "Fill the form by hand and press send, wait for step 2", privatbank.ConfirmationPageLocators()},
	}

	url := launcher.New().
		Headless(false).
		Set("disable-blink-features", "AutomationControlled").
		MustLaunch()
	b := rod.New().ControlURL(url).MustConnect()
	defer b.MustClose()

	page := stealth.MustPage(b)
	page.MustNavigate(privatbank.SendMoneyURL)
	driver := browser.NewRodDriver(page)

	reader := bufio.NewReader(os.Stdin)
	failures := 0

	for _, s := range steps {
		fmt.Println("────────────────────────────────────────────────────────────────")
		fmt.Printf("📄 %s: %s\n", s.Name, s.Instructions)
		fmt.Print("   Press ENTER when ready (or 'skip'): ")

		input, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(input)) == "skip" {
			continue
		}

		page.MustWaitDOMStable()
		current, _ := driver.CurrentURL()
		fmt.Printf("   🔗 URL: %s\n", current)

		fields := make([]string, 0, len(s.Locators))
		for f := range s.Locators {
			fields = append(fields, string(f))
		}
		sort.Strings(fields)

		for _, name := range fields {
			field := privatbank.Field(name)
			if !probe(driver, field, s.Locators[field]) {
				failures++
			}
		}
	}

	fmt.Println("════════════════════════════════════════════════════════════════")
	if failures > 0 {
		fmt.Printf("❌ %d locator(s) did not match\n", failures)
		os.Exit(1)
	}
	fmt.Println("✅ All probed locators matched")
}

func probe(driver *browser.RodDriver, field privatbank.Field, locator string) bool {
	els, err := driver.FindElements(locator)
	if err != nil {
		fmt.Printf("   ❌ %-22s error: %v\n", field, err)
		return false
	}

	want := expectedCount[field]
	ok := len(els) > 0 && (want == 0 || len(els) == want)
	// The phone field is legitimately absent for some sender cards.
	if field == privatbank.FieldPhoneNumber && len(els) == 0 {
		fmt.Printf("   ⚠️  %-22s absent (allowed)\n", field)
		return true
	}

	mark := "✅"
	if !ok {
		mark = "❌"
	}
	fmt.Printf("   %s %-22s %d match(es)  %s\n", mark, field, len(els), locator)
	return ok
}
