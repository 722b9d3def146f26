package youtubedetective

const startMessage = `
🕵️ *Detective Jaime - YouTube Investigator*

Professional video content analysis with a feline touch.

*Services Offered:*
✓ Comprehensive video summaries
✓ Bias detection & assessment
✓ Fact-checking analysis
✓ Content credibility evaluation

*How It Works:*
Simply send any YouTube link and receive a detailed investigation report.

*Example:*
` + "`https://youtube.com/watch?v=...`" + `

Ready to investigate? Send me a link! 🐟
`

const helpMessage = `
🔍 *Investigation Services*

*What I Analyze:*
- 5-point content summaries
- Bias levels (Low/Moderate/High)
- Factuality assessment (Factual/Opinion/Mixed)
- Content type classification
- Overall credibility verdict

*How to Use:*
1️⃣ Send me any YouTube link
2️⃣ Wait for the investigation (5-10 seconds)
3️⃣ Receive comprehensive analysis

*Available Commands:*
/start - Introduction
/help - This guide
/about - About Detective Jaime

*Note:* Analysis based on video title, description, and metadata. For best results, works with videos that have detailed descriptions.
`

const aboutMessage = `
🐱 *About Detective Jaime*

*Background:*
Graduate of the Feline Investigation Academy, specializing in digital content analysis and pattern recognition.

*Expertise:*
YouTube content investigation, bias detection, misinformation identification, and credibility assessment.

*Mission:*
To help users make informed decisions about online video content through professional, unbiased analysis.

*Methods:*
Combines AI-powered content analysis with pattern recognition to detect bias, assess factuality, and evaluate source credibility.

*Status:* Active duty, 24/7 investigations available

🐟 *Powered by:* Gemini AI + YouTube Data API
`

const analyzingMessage = "🤖 Running analysis algorithms..."

var loadingMessages = []string{
	"🔍 Investigating the evidence...",
	"🕵️ Detective Jaime on the case...",
	"👃 Analyzing content patterns...",
	"📋 Gathering intelligence...",
}

var notALinkMessages = []string{
	"🤔 That's not a YouTube link. Please send a valid YouTube URL for analysis.",
	"❓ I need a YouTube link to investigate. Try: youtube.com/watch?v=...",
	"🐟 Send me a YouTube link and I'll analyze it for you!",
}

var commandReplies = map[string]string{
	"start": startMessage,
	"help":  helpMessage,
	"about": aboutMessage,
}
