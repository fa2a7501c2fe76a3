package util

import (
	"fmt"
	"os/user"
	"time"
)

func GetAppName() string {
	return "AutoWatermark"
}

func GetAppDescription() string {
	return "Add a watermark to a pdf file."
}

// DefaultWatermarkText returns "<date time>: <user>", the text suggested when the user gives none.
func DefaultWatermarkText(now time.Time) string {
	name := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	return fmt.Sprintf("%s: %s", now.Format("2006-01-02 15:04:05"), name)
}
