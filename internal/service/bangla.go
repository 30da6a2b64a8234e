package service

import (
	"strconv"
	"strings"
	"time"
)

// Bengali label tables for the bn-BD display strings the site renders.
// A full localization framework is out of scope; these literals cover
// every string the timetable produces.

var banglaWeekdays = [7]string{
	"রবিবার",
	"সোমবার",
	"মঙ্গলবার",
	"বুধবার",
	"বৃহস্পতিবার",
	"শুক্রবার",
	"শনিবার",
}

var banglaMonths = [12]string{
	"জানুয়ারি",
	"ফেব্রুয়ারি",
	"মার্চ",
	"এপ্রিল",
	"মে",
	"জুন",
	"জুলাই",
	"আগস্ট",
	"সেপ্টেম্বর",
	"অক্টোবর",
	"নভেম্বর",
	"ডিসেম্বর",
}

var banglaDigits = [10]string{"০", "১", "২", "৩", "৪", "৫", "৬", "৭", "৮", "৯"}

// BanglaDigits converts the ASCII digits of n into Bengali numerals.
func BanglaDigits(n int) string {
	raw := strconv.Itoa(n)
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteString(banglaDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BanglaWeekday returns the bn-BD weekday name for t.
func BanglaWeekday(t time.Time) string {
	return banglaWeekdays[int(t.Weekday())]
}

// BanglaDateLabel renders t as "<day> <month>" in Bengali, matching the
// site's short date display.
func BanglaDateLabel(t time.Time) string {
	return BanglaDigits(t.Day()) + " " + banglaMonths[int(t.Month())-1]
}
