package generator

import "strings"

const socialLinkedInTemplate = `🚀 Excited to share insights about {topic}!

In today's fast-paced world, understanding {topic} has become more crucial than ever. Here's what I've learned:

📈 Key takeaway #1: The importance of staying informed and adapting to changes
💡 Key takeaway #2: Building meaningful connections within the community
🎯 Key takeaway #3: Implementing practical strategies that deliver results

What's your experience with {topic}? I'd love to hear your thoughts in the comments!

{hashtags}`

const socialTwitterTemplate = `🔥 Hot take on {topic}:

The landscape is shifting faster than ever. Those who adapt win, those who don't... well, you know.

3 things that matter right now:
→ Stay curious
→ Build relationships
→ Take action

What's your take? 👇

{hashtags}`

const socialInstagramTemplate = `✨ Let's talk about {topic} ✨

Swipe to see why this matters more than you think! 📸

Life has taught me that {topic} isn't just a trend—it's a game changer. Whether you're just starting out or you've been at this for years, there's always something new to discover.

💫 Remember: Progress over perfection
🌟 Your journey is unique
🔥 Small steps lead to big changes

Tag someone who needs to see this! 👇

{hashtags}`

const socialFacebookTemplate = `Hey everyone! 👋

I've been thinking a lot about {topic} lately, and I wanted to share some thoughts with you all.

{topic} has been such an important part of my journey, and I know many of you are on similar paths. The thing that strikes me most is how much we can learn from each other's experiences.

Here's what I've discovered:
• The power of community support
• The importance of staying consistent
• How small changes can lead to big results

I'm curious - what's been your biggest lesson with {topic}? Drop a comment below! I read every single one. 💬

Hope everyone's having an amazing day! ❤️

{hashtags}`

// renderSocialMedia produces a platform-specific post. Unknown platforms
// fall back to the LinkedIn variant. Hashtags are included unless the
// hashtags field is explicitly "false".
func renderSocialMedia(f fields) string {
	topic := f.raw("topic")
	platform := f.get("platform", "linkedin")

	var body string
	var tags []string
	tagBase := "#" + strings.ReplaceAll(topic, " ", "")
	switch platform {
	case "twitter":
		body = socialTwitterTemplate
		tags = []string{tagBase, "#Growth", "#Innovation"}
	case "instagram":
		body = socialInstagramTemplate
		tags = []string{tagBase, "#Motivation", "#Growth", "#Inspiration", "#LifeLessons", "#Mindset"}
	case "facebook":
		body = socialFacebookTemplate
		tags = []string{tagBase, "#Community", "#Growth", "#Sharing"}
	default:
		body = socialLinkedInTemplate
		tags = []string{tagBase, "#Innovation", "#Growth", "#ProfessionalDevelopment", "#Networking"}
	}

	hashtags := ""
	if f.get("hashtags", "true") != "false" {
		hashtags = strings.Join(tags, " ")
	}

	out := strings.NewReplacer(
		"{topic}", topic,
		"{hashtags}", hashtags,
	).Replace(body)
	return strings.TrimRight(out, "\n ")
}
