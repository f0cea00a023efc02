package seedmodels

// SeedSentence defines the structure for a sentence in the JSON seed file.
type SeedSentence struct {
	No       int    `json:"no"`
	EN       string `json:"en"`
	KO       string `json:"ko"`
	AudioURL string `json:"audio_url"`
}
