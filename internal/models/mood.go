package models

import "strings"

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodCalm      Mood = "calm"
	MoodEnergetic Mood = "energetic"
	MoodSad       Mood = "sad"
	MoodAnxious   Mood = "anxious"
	MoodIrritable Mood = "irritable"
	MoodTired     Mood = "tired"
	MoodSensitive Mood = "sensitive"
	MoodOther     Mood = "other"
)

func ParseMood(raw string) Mood {
	switch mood := Mood(strings.ToLower(strings.TrimSpace(raw))); mood {
	case MoodHappy, MoodCalm, MoodEnergetic, MoodSad, MoodAnxious, MoodIrritable, MoodTired, MoodSensitive:
		return mood
	default:
		return MoodOther
	}
}

func (mood Mood) Known() bool {
	return mood != MoodOther && ParseMood(string(mood)) == mood
}
