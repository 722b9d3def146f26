package youtubedetective

import (
	"math/rand/v2"
	"testing"

	"video-detective/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComposeReport(t *testing.T) {
	video := &models.Video{
		ID:           "dQw4w9WgXcQ",
		Title:        "Sample",
		ChannelTitle: "Chan",
		Duration:     "PT1H23M45S",
		ViewCount:    5000,
	}

	got := ComposeReport(4242, video, "Key Points:\n- one", "😽 *Jaime's Take:* ok")

	want := "🕵️ *INVESTIGATION REPORT #4242*\n" +
		"━━━━━━━━━━━━━━━━━━\n\n" +
		"*Title:* Sample\n" +
		"*Channel:* Chan\n" +
		"*Duration:* 1h 23m 45s\n" +
		"*Views:* 5.0K\n" +
		"*Link:* https://youtube.com/watch?v=dQw4w9WgXcQ\n\n" +
		"Key Points:\n- one\n\n" +
		"━━━━━━━━━━━━━━━━━━\n" +
		"😽 *Jaime's Take:* ok"

	assert.Equal(t, want, got)
}

func TestComposeReportUnknownDuration(t *testing.T) {
	video := &models.Video{ID: "abcdefghijk", Title: "T", ChannelTitle: "C", Duration: "P1D"}
	assert.Contains(t, ComposeReport(1000, video, "", ""), "*Duration:* Unknown\n*Views:* 0\n")
}

func TestReportNumberRange(t *testing.T) {
	d := newDice(rand.New(rand.NewPCG(3, 4)))
	for i := 0; i < 1000; i++ {
		n := d.reportNumber()
		if n < 1000 || n > 9999 {
			t.Fatalf("report number %d out of range", n)
		}
	}
}
