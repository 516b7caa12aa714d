package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// Block is one rendered comment as scraped from the page.
type Block struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Badge  bool   `json:"badge"`
}

// Collector produces batches of comment blocks, one batch per
// scroll/settle cycle. The callback receives each batch as soon as it is
// extracted; the caller owns all aggregation.
type Collector interface {
	Collect(ctx context.Context, pageURL string, onBatch func([]Block)) error
}

// Options controls the browser session and the scroll loop.
type Options struct {
	Headless    bool
	MaxRounds   int
	SettleMs    int
	StallRounds int
}

// ChromeCollector drives a headless Chrome over the video page: navigate,
// dismiss the consent dialog if one appears, then scroll until the page
// stops growing or MaxRounds is reached, extracting comment blocks
// after each settle.
type ChromeCollector struct {
	opts Options
	log  zerolog.Logger
}

func NewChromeCollector(opts Options, log zerolog.Logger) *ChromeCollector {
	return &ChromeCollector{opts: opts, log: log}
}

// consentJS clicks the first visible accept button, best effort. The
// dialog only shows up in some regions, so a miss is not an error.
const consentJS = `(() => {
  const labels = ["accept all", "i agree", "tümünü kabul et", "kabul et"];
  for (const b of document.querySelectorAll('button, [role="button"]')) {
    const t = (b.textContent || b.getAttribute("aria-label") || "").trim().toLowerCase();
    if (labels.some((l) => t.includes(l))) { b.click(); return true; }
  }
  return false;
})()`

// extractJS pulls every currently rendered comment thread: author, body
// text, and whether a paid (Super Thanks) chip is attached.
const extractJS = `(() => {
  const out = [];
  for (const th of document.querySelectorAll("ytd-comment-thread-renderer")) {
    const body = th.querySelector("#content-text");
    if (!body) continue;
    const author = th.querySelector("#author-text");
    const badge = !!th.querySelector('#paid-comment-chip, [id*="paid-comment"], .paid-comment');
    out.push({
      author: author ? author.textContent.trim() : "",
      text: body.textContent || "",
      badge: badge,
    });
  }
  return out;
})()`

// isDeadline reports whether the error just means the whole-run deadline
// fired. The driver may stop supplying batches at any point; everything
// collected so far must still make it into the report, so this is a
// normal stop, not a failure.
func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func (c *ChromeCollector) Collect(ctx context.Context, pageURL string, onBatch func([]Block)) error {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.opts.Headless),
		chromedp.Flag("mute-audio", true),
		chromedp.WindowSize(1280, 2000),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	settle := time.Duration(c.opts.SettleMs) * time.Millisecond

	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(settle),
	); err != nil {
		return fmt.Errorf("navigate %s: %w", pageURL, err)
	}

	var consented bool
	if err := chromedp.Run(browserCtx, chromedp.Evaluate(consentJS, &consented)); err != nil {
		return fmt.Errorf("dismiss consent dialog: %w", err)
	}
	if consented {
		c.log.Debug().Msg("consent dialog dismissed")
		if err := chromedp.Run(browserCtx, chromedp.Sleep(settle)); err != nil {
			return err
		}
	}

	var lastHeight, stall int
	for round := 0; round < c.opts.MaxRounds; round++ {
		var height int
		err := chromedp.Run(browserCtx,
			chromedp.Evaluate(`window.scrollBy(0, window.innerHeight * 4)`, nil),
			chromedp.Sleep(settle),
			chromedp.Evaluate(`document.documentElement.scrollHeight`, &height),
		)
		if err != nil {
			if isDeadline(err) {
				c.log.Debug().Int("round", round).Msg("run deadline reached, stopping scroll")
				return nil
			}
			return fmt.Errorf("scroll round %d: %w", round, err)
		}

		var blocks []Block
		if err := chromedp.Run(browserCtx, chromedp.Evaluate(extractJS, &blocks)); err != nil {
			if isDeadline(err) {
				c.log.Debug().Int("round", round).Msg("run deadline reached, stopping scroll")
				return nil
			}
			return fmt.Errorf("extract comment blocks: %w", err)
		}
		c.log.Debug().Int("round", round).Int("blocks", len(blocks)).Int("height", height).Msg("batch collected")
		onBatch(blocks)

		if height == lastHeight {
			stall++
		} else {
			stall = 0
		}
		lastHeight = height
		if stall >= c.opts.StallRounds {
			c.log.Debug().Int("round", round).Msg("page height stable, stopping scroll")
			break
		}
	}
	return nil
}
