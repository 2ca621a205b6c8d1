package rentalsvc

import (
	"time"

	"github.com/EstevanMarcatti/DISKFINAL2/model"
	"github.com/EstevanMarcatti/DISKFINAL2/util/dates"
)

// StatusColor classifies a note into its urgency tier.
//
// Retrieved notes are always red, whatever their age. Active notes are
// tiered by the truncating day difference between rental date and now:
// up to 7 days green, up to 30 yellow, older purple. A rental date that
// will not parse counts as age zero rather than poisoning the listing.
func StatusColor(rentalDate string, status model.RentalStatus, now time.Time) model.StatusColor {
	if status == model.RentalRetrieved {
		return model.ColorRed
	}

	d, ok := dates.Parse(rentalDate)
	if !ok {
		return model.ColorGreen
	}

	days := dates.DaysBetween(d, now)
	switch {
	case days <= 7:
		return model.ColorGreen
	case days <= 30:
		return model.ColorYellow
	default:
		return model.ColorPurple
	}
}
