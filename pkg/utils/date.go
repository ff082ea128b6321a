package utils

import "time"

const DayLayout = "2006-01-02"

func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}
