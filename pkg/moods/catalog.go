package moods

import (
	"errors"
)

var (
	ErrMoodNotFound  = errors.New("mood not found")
	ErrStyleNotFound = errors.New("response style not found")
)

const (
	Sad     MoodValue = "sad"
	Angry   MoodValue = "angry"
	Anxious MoodValue = "anxious"
	Happy   MoodValue = "happy"
	Tired   MoodValue = "tired"
	Complex MoodValue = "complex"
	Calm    MoodValue = "calm"
	Wronged MoodValue = "wronged"
)

const (
	Friend    StyleValue = "friend"
	Counselor StyleValue = "counselor"
	Zen       StyleValue = "zen"
	Gentle    StyleValue = "gentle"
)

var moodCatalog = [...]MoodTag{
	{Emoji: "😔", Label: "悲伤", Value: Sad},
	{Emoji: "😡", Label: "生气", Value: Angry},
	{Emoji: "😟", Label: "焦虑", Value: Anxious},
	{Emoji: "😊", Label: "开心", Value: Happy},
	{Emoji: "😴", Label: "疲惫", Value: Tired},
	{Emoji: "😶", Label: "复杂", Value: Complex},
	{Emoji: "😌", Label: "平静", Value: Calm},
	{Emoji: "🥺", Label: "委屈", Value: Wronged},
}

var styleCatalog = [...]ResponseStyle{
	{Name: "朋友语气", Description: "温暖亲切，像好朋友一样聊天", Value: Friend},
	{Name: "心理咨询师", Description: "专业理性，提供建设性建议", Value: Counselor},
	{Name: "佛系语气", Description: "淡然智慧，帮助放下执念", Value: Zen},
	{Name: "温柔治愈", Description: "柔和安慰，给予温暖支持", Value: Gentle},
}

// Moods returns the mood catalog in display order. The slice is a copy.
func Moods() []MoodTag {
	out := make([]MoodTag, len(moodCatalog))
	copy(out, moodCatalog[:])
	return out
}

// Styles returns the response style catalog in display order. The slice is a copy.
func Styles() []ResponseStyle {
	out := make([]ResponseStyle, len(styleCatalog))
	copy(out, styleCatalog[:])
	return out
}

// LookupMood finds the catalog mood with the given value.
func LookupMood(value MoodValue) (MoodTag, error) {
	for _, m := range moodCatalog {
		if m.Value == value {
			return m, nil
		}
	}
	return MoodTag{}, ErrMoodNotFound
}

// LookupStyle finds the catalog style with the given value.
func LookupStyle(value StyleValue) (ResponseStyle, error) {
	for _, s := range styleCatalog {
		if s.Value == value {
			return s, nil
		}
	}
	return ResponseStyle{}, ErrStyleNotFound
}

// IsCatalogStyle reports whether s is exactly one of the catalog styles.
func IsCatalogStyle(s ResponseStyle) bool {
	for _, c := range styleCatalog {
		if c == s {
			return true
		}
	}
	return false
}

// DefaultMood is used when the user does not pick a mood: a mixed feeling.
func DefaultMood() MoodTag {
	m, _ := LookupMood(Complex)
	return m
}

// DefaultStyle is the first catalog style.
func DefaultStyle() ResponseStyle {
	return styleCatalog[0]
}
