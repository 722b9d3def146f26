package models

// Video is the catalog metadata for a single video, fetched once per
// investigation and never persisted.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channel_title"`
	Duration     string `json:"duration"` // ISO-8601 token, e.g. PT3M33S
	ViewCount    uint64 `json:"view_count"`
}

// Verdict is what could be read back out of the model's free-text answer.
type Verdict struct {
	Bias       string `json:"bias"`
	Factuality string `json:"factuality"`
}
