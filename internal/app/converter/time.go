package converter

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return carbon.CreateFromStdTime(t).ToRfc3339String(carbon.UTC)
}
