/*
File : kodi-script-go/std/time.go
*/

// This file defines the date and time builtin functions for the
// KodiScript language. Timestamps are milliseconds since the Unix epoch,
// carried as ordinary numbers; calendar fields use the local time zone.
package std

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/issadicko/kodi-script-go/objects"
)

const millisPerDay = 24 * 60 * 60 * 1000

var timeMethods = []*Builtin{
	{Name: "now", Callback: now},             // Current timestamp in milliseconds
	{Name: "date", Callback: dateFunc},       // "Y-m-d" for a timestamp (default now)
	{Name: "time", Callback: timeFunc},       // "H:i:s" for a timestamp (default now)
	{Name: "datetime", Callback: datetime},   // "Y-m-d H:i:s" for a timestamp (default now)
	{Name: "timestamp", Callback: timestamp}, // Parses a date string to milliseconds
	{Name: "formatDate", Callback: formatDate},

	{Name: "year", Callback: yearFunc},     // Calendar year
	{Name: "month", Callback: monthFunc},   // Month 1-12
	{Name: "day", Callback: dayFunc},       // Day of month
	{Name: "hour", Callback: hourFunc},     // Hour 0-23
	{Name: "minute", Callback: minuteFunc}, // Minute 0-59
	{Name: "second", Callback: secondFunc}, // Second 0-59
	{Name: "dayOfWeek", Callback: dayOfWeek},

	{Name: "addDays", Callback: addDays},   // Timestamp shifted by whole days
	{Name: "addHours", Callback: addHours}, // Timestamp shifted by whole hours
	{Name: "diffDays", Callback: diffDays}, // Whole-day difference between timestamps
}

// timestampLayouts are the accepted formats for `timestamp`, most
// specific first.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// argTime resolves an optional timestamp argument to a local time;
// without an argument the current time is used.
func argTime(args []KodiObject) time.Time {
	if len(args) == 0 {
		return time.Now()
	}
	return time.UnixMilli(int64(objects.ToNumber(args[0])))
}

// now returns the current timestamp in milliseconds since the epoch.
func now(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 0 {
		return createError("wrong number of arguments to `now`. got=%d, want=0", len(args))
	}
	return &Number{Value: float64(time.Now().UnixMilli())}
}

// dateFunc formats a timestamp (default: now) as "Y-m-d".
func dateFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) > 1 {
		return createError("wrong number of arguments to `date`. got=%d, want=0 or 1", len(args))
	}
	return &String{Value: argTime(args).Format("2006-01-02")}
}

// timeFunc formats a timestamp (default: now) as "H:i:s".
func timeFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) > 1 {
		return createError("wrong number of arguments to `time`. got=%d, want=0 or 1", len(args))
	}
	return &String{Value: argTime(args).Format("15:04:05")}
}

// datetime formats a timestamp (default: now) as "Y-m-d H:i:s".
func datetime(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) > 1 {
		return createError("wrong number of arguments to `datetime`. got=%d, want=0 or 1", len(args))
	}
	return &String{Value: argTime(args).Format("2006-01-02 15:04:05")}
}

// timestamp parses a date string in local time and returns the timestamp
// in milliseconds. Without an argument it behaves like `now`.
func timestamp(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) > 1 {
		return createError("wrong number of arguments to `timestamp`. got=%d, want=0 or 1", len(args))
	}
	if len(args) == 0 {
		return &Number{Value: float64(time.Now().UnixMilli())}
	}

	str := strings.TrimSpace(args[0].ToString())
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, str, time.Local); err == nil {
			return &Number{Value: float64(t.UnixMilli())}
		}
	}
	return createError("cannot parse date string %q", str)
}

// formatDate renders a timestamp using a date format string with the
// characters Y (four-digit year), m, d, H, i, s (zero-padded fields),
// D (short weekday name), N (ISO weekday 1-7), and w (weekday 0-6,
// Sunday first). Any other character passes through verbatim. The
// default format is "Y-m-d H:i:s".
func formatDate(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) < 1 || len(args) > 2 {
		return createError("wrong number of arguments to `formatDate`. got=%d, want=1 or 2", len(args))
	}
	t := time.UnixMilli(int64(objects.ToNumber(args[0])))
	format := "Y-m-d H:i:s"
	if len(args) == 2 {
		format = args[1].ToString()
	}

	var sb strings.Builder
	for _, c := range format {
		switch c {
		case 'Y':
			sb.WriteString(fmt.Sprintf("%04d", t.Year()))
		case 'm':
			sb.WriteString(fmt.Sprintf("%02d", int(t.Month())))
		case 'd':
			sb.WriteString(fmt.Sprintf("%02d", t.Day()))
		case 'H':
			sb.WriteString(fmt.Sprintf("%02d", t.Hour()))
		case 'i':
			sb.WriteString(fmt.Sprintf("%02d", t.Minute()))
		case 's':
			sb.WriteString(fmt.Sprintf("%02d", t.Second()))
		case 'D':
			sb.WriteString(t.Weekday().String()[:3])
		case 'N':
			iso := int(t.Weekday())
			if iso == 0 {
				iso = 7
			}
			sb.WriteString(strconv.Itoa(iso))
		case 'w':
			sb.WriteString(strconv.Itoa(int(t.Weekday())))
		default:
			sb.WriteRune(c)
		}
	}
	return &String{Value: sb.String()}
}

// calendarField implements the year/month/day/hour/minute/second family
// over an optional timestamp argument.
func calendarField(name string, args []KodiObject, field func(time.Time) int) KodiObject {
	if len(args) > 1 {
		return createError("wrong number of arguments to `%s`. got=%d, want=0 or 1", name, len(args))
	}
	return &Number{Value: float64(field(argTime(args)))}
}

func yearFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return calendarField("year", args, func(t time.Time) int { return t.Year() })
}

func monthFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return calendarField("month", args, func(t time.Time) int { return int(t.Month()) })
}

func dayFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return calendarField("day", args, func(t time.Time) int { return t.Day() })
}

func hourFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return calendarField("hour", args, func(t time.Time) int { return t.Hour() })
}

func minuteFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return calendarField("minute", args, func(t time.Time) int { return t.Minute() })
}

func secondFunc(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return calendarField("second", args, func(t time.Time) int { return t.Second() })
}

// dayOfWeek returns 0 for Sunday through 6 for Saturday.
func dayOfWeek(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	return calendarField("dayOfWeek", args, func(t time.Time) int { return int(t.Weekday()) })
}

// addDays shifts a timestamp by a whole number of days.
func addDays(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `addDays`. got=%d, want=2", len(args))
	}
	return &Number{Value: objects.ToNumber(args[0]) + objects.ToNumber(args[1])*millisPerDay}
}

// addHours shifts a timestamp by a whole number of hours.
func addHours(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `addHours`. got=%d, want=2", len(args))
	}
	return &Number{Value: objects.ToNumber(args[0]) + objects.ToNumber(args[1])*60*60*1000}
}

// diffDays returns the whole-day difference between two timestamps,
// truncated toward zero.
func diffDays(rt Runtime, writer io.Writer, args ...KodiObject) KodiObject {
	if len(args) != 2 {
		return createError("wrong number of arguments to `diffDays`. got=%d, want=2", len(args))
	}
	diff := objects.ToNumber(args[0]) - objects.ToNumber(args[1])
	return &Number{Value: math.Trunc(diff / millisPerDay)}
}
