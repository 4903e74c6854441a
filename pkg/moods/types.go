package moods

// MoodValue identifies a mood tag in the catalog.
type MoodValue string

// StyleValue identifies a response style in the catalog.
type StyleValue string

// MoodTag describes how the user felt when writing an entry.
type MoodTag struct {
	Emoji string    `json:"emoji"`
	Label string    `json:"label"`
	Value MoodValue `json:"value"`
}

// ResponseStyle selects the tone used for the reply to an entry.
type ResponseStyle struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Value       StyleValue `json:"value"`
}

// MoodEntry is a single diary record: what the user wrote and the reply it received.
type MoodEntry struct {
	ID            string        `json:"id"`
	Content       string        `json:"content"`
	Mood          MoodTag       `json:"mood"`
	AIResponse    string        `json:"aiResponse"`
	ResponseStyle ResponseStyle `json:"responseStyle"`
	Timestamp     int64         `json:"timestamp"` // epoch milliseconds
	Date          string        `json:"date"`      // YYYY-MM-DD
}

// DailyQuote is the quote surfaced for one calendar day.
type DailyQuote struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date"`
	Liked   bool   `json:"liked"`
}
