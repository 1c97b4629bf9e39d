package display

import (
	"fmt"
	"time"

	"github.com/rpggio/clock/internal/domain/session"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Banner is the line shown by watch for an active session.
func Banner(jobName string, elapsed time.Duration) string {
	return fmt.Sprintf("Session <<%s>> active time: %s",
		cases.Upper(language.Und).String(jobName),
		session.FormatDuration(elapsed))
}
