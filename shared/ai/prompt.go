package ai

import (
	"fmt"

	"video-detective/internal/models"
)

// BuildInvestigationPrompt renders the fixed instruction the model is asked
// to answer. Nothing checks that the answer follows the template; ParseVerdict
// copes with answers that don't.
func BuildInvestigationPrompt(video *models.Video) string {
	return fmt.Sprintf(`
Analyze this YouTube video and provide a professional assessment:

Title: %s
Channel: %s
Description: %s

**FORMAT YOUR RESPONSE EXACTLY LIKE THIS:**

Key Points:
- [First main point - be specific and clear]
- [Second main point]
- [Third main point]
- [Fourth main point]
- [Fifth main point]

Quick Analysis:
Bias: [Low/Moderate/High]
[Brief professional explanation]

Factuality: [Factual/Opinion/Mixed]
[Brief professional assessment]

Type: [News/Educational/Entertainment/Commentary]

Keep it concise and professional. Each bullet should be 1-2 sentences max.
`,
		video.Title,
		video.ChannelTitle,
		video.Description,
	)
}
