package browser

import (
	"fmt"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Options configures the launched browser.
type Options struct {
	Headed            bool
	NavigationTimeout time.Duration
}

// Browser wraps a launched Chromium instance and opens pages on it.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

// Launch starts Playwright and a Chromium browser.
func Launch(opts Options) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	br, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(!opts.Headed),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	return &Browser{pw: pw, browser: br, opts: opts}, nil
}

// NewPage opens a fresh page with a fixed desktop viewport.
func (b *Browser) NewPage() (Page, error) {
	p, err := b.browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 720},
	})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	return &page{p: p, opts: b.opts}, nil
}

// Close shuts down the browser and the Playwright driver.
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		_ = b.pw.Stop()
		return fmt.Errorf("close browser: %w", err)
	}
	return b.pw.Stop()
}

// page adapts a Playwright page to the Page interface.
type page struct {
	p    playwright.Page
	opts Options
}

func (pg *page) Navigate(url string) error {
	_, err := pg.p.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(float64(pg.opts.NavigationTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (pg *page) Clear(selector string) error {
	if err := pg.p.Locator(selector).First().Fill(""); err != nil {
		return fmt.Errorf("clear %s: %w", selector, err)
	}
	return nil
}

func (pg *page) Fill(selector, value string) error {
	if err := pg.p.Locator(selector).First().Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", selector, err)
	}
	return nil
}

func (pg *page) TypeSequential(selector, text string, delay time.Duration) error {
	err := pg.p.Locator(selector).First().PressSequentially(text, playwright.LocatorPressSequentiallyOptions{
		Delay: playwright.Float(float64(delay.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("type into %s: %w", selector, err)
	}
	return nil
}

func (pg *page) Value(selector string) (string, error) {
	value, err := pg.p.Locator(selector).First().InputValue()
	if err != nil {
		return "", fmt.Errorf("read value of %s: %w", selector, err)
	}
	return value, nil
}

func (pg *page) TextsMatching(pattern *regexp.Regexp) ([]string, error) {
	texts, err := pg.p.GetByText(pattern).AllInnerTexts()
	if err != nil {
		return nil, fmt.Errorf("collect matching texts: %w", err)
	}
	return texts, nil
}

func (pg *page) ControlValues(selector string) ([]string, error) {
	loc := pg.p.Locator(selector)
	count, err := loc.Count()
	if err != nil {
		return nil, fmt.Errorf("count controls %s: %w", selector, err)
	}
	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		value, err := loc.Nth(i).InputValue()
		if err != nil {
			return nil, fmt.Errorf("read control %d of %s: %w", i, selector, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func (pg *page) BodyText() (string, error) {
	text, err := pg.p.Locator("body").TextContent()
	if err != nil {
		return "", fmt.Errorf("read body text: %w", err)
	}
	return text, nil
}

func (pg *page) Screenshot(path string) error {
	_, err := pg.p.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("capture screenshot: %w", err)
	}
	return nil
}

func (pg *page) Wait(d time.Duration) {
	pg.p.WaitForTimeout(float64(d.Milliseconds()))
}

func (pg *page) Close() error {
	return pg.p.Close()
}
