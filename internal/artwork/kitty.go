// Package artwork displays cover art in the terminal. Failures anywhere in
// this path never affect playback or search.
package artwork

import (
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// DefaultPlacement is the icat placement used for cover art.
const DefaultPlacement = "30x30@0x0"

// KittyDisplay renders images through kitty's icat kitten. Outside a kitty
// window every call is a no-op.
type KittyDisplay struct {
	placement string
	logger    zerolog.Logger
	run       func(name string, args ...string) error
}

// NewKittyDisplay creates a kitty-backed artwork display.
func NewKittyDisplay(logger zerolog.Logger) *KittyDisplay {
	return &KittyDisplay{
		placement: DefaultPlacement,
		logger:    logger.With().Str("component", "artwork").Logger(),
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Supported reports whether the terminal can display images.
func (d *KittyDisplay) Supported() bool {
	return os.Getenv("KITTY_WINDOW_ID") != ""
}

// Display shows the image at the given URL. It returns nothing: an
// unsupported terminal or a failed icat invocation is logged and ignored.
func (d *KittyDisplay) Display(url string) {
	if url == "" || !d.Supported() {
		return
	}

	// icat fetches the URL itself; run it off the UI loop so a slow fetch
	// never blocks input handling.
	go func() {
		err := d.run("kitty", "+kitten", "icat",
			"--align", "left",
			"--place", d.placement,
			url)
		if err != nil {
			d.logger.Debug().Err(err).Str("url", url).Msg("Failed to display artwork")
		}
	}()
}

// Clear removes any displayed image.
func (d *KittyDisplay) Clear() {
	if !d.Supported() {
		return
	}
	go func() {
		if err := d.run("kitty", "+kitten", "icat", "--clear"); err != nil {
			d.logger.Debug().Err(err).Msg("Failed to clear artwork")
		}
	}()
}
