package journal

type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodCalm       Mood = "calm"
	MoodThoughtful Mood = "thoughtful"
	MoodTired      Mood = "tired"
	MoodMotivated  Mood = "motivated"
	MoodSad        Mood = "sad"
	MoodExcited    Mood = "excited"
	MoodGrateful   Mood = "grateful"
)

var AllMoods = []Mood{
	MoodHappy,
	MoodCalm,
	MoodThoughtful,
	MoodTired,
	MoodMotivated,
	MoodSad,
	MoodExcited,
	MoodGrateful,
}

func (m Mood) IsValid() bool {
	if m == "" {
		return true
	}
	for _, v := range AllMoods {
		if m == v {
			return true
		}
	}
	return false
}
