package generator

import "strings"

const scriptTemplate = `# {title}
**Video Script for {niche} | {videoLength} Duration**

---

## HOOK / OPENING (0-15 seconds)
**[ENERGY: High, engaging tone]**

"What if I told you that {titleLower} could completely change your perspective? Stick around because in the next {runtime}, I'm going to show you exactly how!"

**[Visual cue: Eye-catching graphics/text overlay]**

---

## INTRODUCTION (15-45 seconds)
**[ENERGY: {tone}, welcoming]**

"Hey everyone! Welcome back to the channel! If you're new here, I'm [YOUR NAME], and I help people [BRIEF CHANNEL DESCRIPTION].

Today we're diving deep into {titleLower}, and by the end of this video, you'll have a complete understanding of why this matters and how you can apply it immediately.

But first, if you find value in these videos, please hit that like button - it really helps the channel grow!"

---

## MAIN CONTENT

### Point 1: The Foundation
**[ENERGY: Educational, clear]**

"Let's start with the basics. When we talk about {titleLower}, most people think [COMMON MISCONCEPTION]. But here's what's really happening..."

**[Visual cue: Supporting graphics/examples]**

### Point 2: The Key Insight
**[ENERGY: Revealing, slightly conspiratorial]**

"Now here's where it gets interesting. The thing that nobody talks about is [KEY INSIGHT]. This is crucial because..."

**[Visual cue: Highlight this section with text/graphics]**

### Point 3: Practical Application
**[ENERGY: Actionable, motivating]**

"Alright, so how do you actually implement this? Here are the three steps you need to follow:

1. **First step**: [SPECIFIC ACTION]
2. **Second step**: [SPECIFIC ACTION]
3. **Third step**: [SPECIFIC ACTION]

I've personally seen this work for [EXAMPLE/STORY], and I know it can work for you too."

---

## CALL TO ACTION & CLOSING
**[ENERGY: Enthusiastic, community-building]**

"And that's a wrap on {titleLower}! I hope this was helpful and gave you some actionable insights you can use right away.

Now I want to hear from YOU - have you tried this approach before? What were your results? Drop a comment below and let me know!

If this video helped you out, smash that like button, subscribe for more content like this, and ring the notification bell so you never miss an upload.

I've got some amazing videos coming up that I think you'll love, so make sure you're subscribed!

Thanks for watching, and I'll see you in the next one!"

**[End screen: Subscribe button + related videos]**

---

## PRODUCTION NOTES:
- **Tone**: {tone}
- **Target Duration**: {videoLength}
- **Niche**: {niche}
- **Key Focus**: Engagement and value delivery
- **Remember**: Add personal anecdotes and specific examples where indicated`

// renderScript produces a video script. The videoLength field selects the
// spoken runtime mentioned in the hook.
func renderScript(f fields) string {
	title := f.raw("title")
	niche := f.get("niche", "general")
	videoLength := f.get("videoLength", "medium")
	tone := f.get("tone", "conversational")

	var runtime string
	switch videoLength {
	case "short":
		runtime = "60 seconds"
	case "medium":
		runtime = "5 minutes"
	default:
		runtime = "15 minutes"
	}

	return strings.NewReplacer(
		"{titleLower}", strings.ToLower(title),
		"{title}", title,
		"{niche}", niche,
		"{videoLength}", videoLength,
		"{tone}", tone,
		"{runtime}", runtime,
	).Replace(scriptTemplate)
}
