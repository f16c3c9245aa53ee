// Package chart assembles natal charts: zodiac signs, equal houses, aspects,
// and the full chart pipeline on top of the astro ephemeris.
package chart

import (
	"math"
	"strings"

	"github.com/litescript/ls-natal/internal/astro"
)

// Sign is one of the twelve tropical zodiac signs.
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Signs lists the signs in zodiac order starting at 0° Aries.
var Signs = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// Index returns the sign's position in zodiac order, or -1 if unknown.
func (s Sign) Index() int {
	for i, z := range Signs {
		if z == s {
			return i
		}
	}
	return -1
}

// Title returns the capitalized sign name.
func (s Sign) Title() string {
	return titleCase(string(s))
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SignPosition places an ecliptic longitude within its sign.
type SignPosition struct {
	Sign         Sign    `json:"sign"`
	Degrees      float64 `json:"degrees"`       // [0, 30) within the sign
	TotalDegrees float64 `json:"total_degrees"` // [0, 360) on the ecliptic
}

// DegreesToSign converts an ecliptic longitude to a sign and degrees within it.
func DegreesToSign(totalDegrees float64) SignPosition {
	deg := astro.NormalizeDegrees(totalDegrees)
	idx := int(math.Floor(deg / 30))
	if idx > 11 {
		idx = 11
	}
	return SignPosition{
		Sign:         Signs[idx],
		Degrees:      deg - float64(idx)*30,
		TotalDegrees: deg,
	}
}

// sunSignBoundary is the first day of a sign in the traditional calendar table.
type sunSignBoundary struct {
	sign  Sign
	month int
	day   int
}

// Traditional tropical date boundaries. Capricorn appears twice because it
// straddles the new year.
var sunSignDates = [13]sunSignBoundary{
	{Capricorn, 1, 1},
	{Aquarius, 1, 20},
	{Pisces, 2, 19},
	{Aries, 3, 21},
	{Taurus, 4, 20},
	{Gemini, 5, 21},
	{Cancer, 6, 21},
	{Leo, 7, 23},
	{Virgo, 8, 23},
	{Libra, 9, 23},
	{Scorpio, 10, 23},
	{Sagittarius, 11, 22},
	{Capricorn, 12, 22},
}

// SunSignByDate returns the Sun sign for a birthday using the traditional
// calendar boundaries. No astronomy is involved, so cusp birthdays can
// disagree with the computed Sun longitude by a day.
func SunSignByDate(month, day int) Sign {
	for i := len(sunSignDates) - 1; i >= 0; i-- {
		b := sunSignDates[i]
		if month > b.month || (month == b.month && day >= b.day) {
			return b.sign
		}
	}
	return Capricorn
}
