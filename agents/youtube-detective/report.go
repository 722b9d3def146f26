package youtubedetective

import (
	"fmt"
	"strings"

	"video-detective/agents/youtube-detective/youtube"
	"video-detective/internal/models"
)

const divider = "━━━━━━━━━━━━━━━━━━"

// ComposeReport lays out the final reply in Telegram legacy Markdown. The
// analysis text is included verbatim.
func ComposeReport(number int, video *models.Video, analysis, reaction string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🕵️ *INVESTIGATION REPORT #%d*\n", number)
	fmt.Fprintf(&b, "%s\n\n", divider)
	fmt.Fprintf(&b, "*Title:* %s\n", video.Title)
	fmt.Fprintf(&b, "*Channel:* %s\n", video.ChannelTitle)
	fmt.Fprintf(&b, "*Duration:* %s\n", youtube.FormatDuration(video.Duration))
	fmt.Fprintf(&b, "*Views:* %s\n", youtube.FormatViews(video.ViewCount))
	fmt.Fprintf(&b, "*Link:* %s\n\n", youtube.WatchURL(video.ID))
	fmt.Fprintf(&b, "%s\n\n", analysis)
	fmt.Fprintf(&b, "%s\n", divider)
	b.WriteString(reaction)

	return b.String()
}
