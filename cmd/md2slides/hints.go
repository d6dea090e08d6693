package main

import (
	"errors"
	"os"

	"github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/deck"
	"github.com/alnah/go-md2slides/internal/hints"
)

// hintFor returns a suggestion for a failed deck or setting, or "".
func hintFor(err error, flags *cliFlags) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		name := flags.common.config
		if name == "" {
			name = os.Getenv("MD2SLIDES_CONFIG")
		}
		return hints.ForConfigNotFound(name)
	case errors.Is(err, md2slides.ErrThemeNotFound):
		themes, _ := md2slides.Themes(flags.render.assetPath)
		names := make([]string, len(themes))
		for i, t := range themes {
			names[i] = t.Name
		}
		return hints.ForThemeNotFound(names)
	case errors.Is(err, md2slides.ErrUnknownStyle):
		return hints.ForUnknownStyle()
	case errors.Is(err, deck.ErrUnsupportedDeck):
		return hints.ForUnsupportedDeck()
	case errors.Is(err, ErrOutputCollision):
		return hints.ForOutputCollision()
	case errors.Is(err, md2slides.ErrWriteOutput):
		return hints.ForOutputDirectory(flags.output)
	}
	return ""
}
