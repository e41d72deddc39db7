package alert

import (
	"fmt"

	"SurgeAlertBot/internal/models"
)

// FormatMessage renders the Telegram HTML body for a short-surge alert.
func FormatMessage(a models.Alert) string {
	return fmt.Sprintf(
		"🚨 <b>SHORT ALERT</b> 🚨\n"+
			"Symbol: <b>%s</b>\n"+
			"Price surged: <b>%.2f%%</b> in last hour\n"+
			"RSI: <b>%.2f</b>\n"+
			"Volume spike: <b>%.2fx</b>\n"+
			"Potential short opportunity!\n"+
			"<a href='%s'>Chart Link</a>",
		a.Symbol, a.ReturnPct, a.RSI, a.VolumeSpike, a.ChartURL)
}
