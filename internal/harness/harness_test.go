package harness

import (
	"fmt"
	"regexp"
	"time"

	"stv/internal/browser"
)

// scriptedPage is a browser.Page fake whose output changes over time: each
// TextsMatching call consumes the next entry of samples (the last one is
// sticky). All interactions are appended to calls for order assertions.
type scriptedPage struct {
	samples []string
	idx     int
	calls   []string

	navErr   error
	clearErr error
	fillErr  error
	typeErr  error
}

func (p *scriptedPage) Navigate(url string) error {
	p.calls = append(p.calls, "navigate:"+url)
	return p.navErr
}

func (p *scriptedPage) Clear(selector string) error {
	p.calls = append(p.calls, "clear")
	return p.clearErr
}

func (p *scriptedPage) Fill(selector, text string) error {
	p.calls = append(p.calls, "fill:"+text)
	return p.fillErr
}

func (p *scriptedPage) TypeSequential(selector, text string, delay time.Duration) error {
	p.calls = append(p.calls, "type:"+text)
	return p.typeErr
}

func (p *scriptedPage) Value(selector string) (string, error) {
	return "", nil
}

func (p *scriptedPage) TextsMatching(pattern *regexp.Regexp) ([]string, error) {
	if len(p.samples) == 0 {
		return nil, nil
	}
	sample := p.samples[p.idx]
	if p.idx < len(p.samples)-1 {
		p.idx++
	}
	if sample == "" {
		return nil, nil
	}
	return []string{sample}, nil
}

func (p *scriptedPage) ControlValues(selector string) ([]string, error) {
	return nil, nil
}

func (p *scriptedPage) BodyText() (string, error) {
	return "", nil
}

func (p *scriptedPage) Screenshot(path string) error {
	p.calls = append(p.calls, "screenshot")
	return nil
}

func (p *scriptedPage) Wait(d time.Duration) {
	p.calls = append(p.calls, fmt.Sprintf("wait:%s", d))
}

func (p *scriptedPage) Close() error {
	p.calls = append(p.calls, "close")
	return nil
}

// fakeFactory hands out scripted pages in order; the last page is sticky.
type fakeFactory struct {
	pages []*scriptedPage
	err   error
	idx   int
}

func (f *fakeFactory) NewPage() (browser.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.idx]
	if f.idx < len(f.pages)-1 {
		f.idx++
	}
	return page, nil
}
