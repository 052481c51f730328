package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer/privatbank"
	"github.com/grez-lucas/sendmoney-automator/internal/config"
)

func main() {
	configPath := flag.String("config", "sendmoney.yaml", "Path to the YAML config file")
	initConfig := flag.Bool("init", false, "Write an example config to -config and exit")
	dryRun := flag.Bool("dry-run", false, "Fill the main form but do not submit it")
	flag.Parse()

	if *initConfig {
		if err := config.WriteExample(*configPath); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Example config written to %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	req, err := cfg.Request()
	if err != nil {
		logger.Error("invalid transfer request", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger, *dryRun, req); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, dryRun bool, req transfer.Request) error {
	l := launcher.New().Headless(cfg.Browser.Headless).
		Set("disable-blink-features", "AutomationControlled")
	if cfg.Browser.Bin != "" {
		l = l.Bin(cfg.Browser.Bin)
	}
	if cfg.Browser.UserDataDir != "" {
		l = l.UserDataDir(cfg.Browser.UserDataDir)
	}
	defer l.Cleanup()

	controlURL, err := l.Launch()
	if err != nil {
		logger.Error("failed to launch browser", "error", err)
		return err
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		logger.Error("failed to connect to browser", "error", err)
		return err
	}
	defer func() { _ = b.Close() }()

	page, err := stealth.Page(b)
	if err != nil {
		logger.Error("failed to create stealth page", "error", err)
		return err
	}

	typer := browser.TypeFast
	if cfg.Browser.HumanTyping {
		typer = browser.TypeHuman
	}
	driver := browser.NewRodDriver(page, browser.WithTyper(typer))

	sender := privatbank.NewSender(driver,
		privatbank.WithLogger(logger),
		privatbank.WithTimeout(cfg.Browser.WaitTimeout),
		privatbank.WithPoller(browser.NewPoller(browser.WithInterval(cfg.Browser.PollInterval))),
	)

	if dryRun {
		if _, err := sender.Prepare(req); err != nil {
			logger.Error("dry run failed", "error", err)
			return err
		}
		logger.Info("main form filled, not submitting (dry run)")
		fmt.Print("Press ENTER to close the browser: ")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
		return nil
	}

	res, err := sender.Send(req)
	if err != nil {
		return err
	}
	fmt.Printf("Transfer %s: %s\n", res.ID, res.State)
	return nil
}
