package game

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/falling-confetti/internal/config"
)

// promptCount asks for an exact count in a native entry dialog. Cancelling
// the dialog is not an error.
func (g *Game) promptCount() error {
	text, err := zenity.Entry(
		fmt.Sprintf("Number of confetti pieces (0-%d)", config.SliderMax),
		zenity.Title("Falling Confetti"),
		zenity.EntryText(strconv.Itoa(g.ctrl.Slider().Value())),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	log.Printf("typed count %q", text)
	return g.ctrl.SetTyped(text)
}

// ShowFatal reports an unrecoverable error in a native dialog before exit.
func ShowFatal(err error) {
	if dErr := zenity.Error(err.Error(), zenity.Title("Falling Confetti")); dErr != nil {
		log.Printf("error dialog: %v", dErr)
	}
}
