package utils

import "time"

// Greeting picks a salutation by the hour of t
//
//	[0, 6)   night
//	[6, 12)  morning
//	[12, 18) afternoon
//	[18, 24) evening
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 6:
		return "Good night"
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
