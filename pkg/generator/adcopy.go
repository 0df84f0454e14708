package generator

import "strings"

const adCopyTemplate = `🚀 **{product} - Transform Your Life Today!**

**Headline:** Get {product} and See Results in Just 7 Days!

**Primary Text:**
Tired of struggling with {audience}-related challenges? {product} is here to change everything.

✅ Proven results backed by thousands of satisfied customers
✅ Easy to use - perfect for busy {audience}
✅ 30-day money-back guarantee
✅ Join over 10,000+ happy customers

**Why Choose {product}?**
- Industry-leading solution designed specifically for {audience}
- Fast, reliable, and effective
- Expert customer support 24/7
- Limited-time special pricing

**Call to Action:**
{cta}

**Secondary Headlines:**
• "The #1 Choice for {audience}"
• "Don't Wait - Limited Time Offer!"
• "Thousands Already Transformed Their Lives"

**Platform-Specific Optimization ({platform}):**
{platformNotes}

**Trust Signals:**
⭐⭐⭐⭐⭐ "Best purchase I've ever made!" - Sarah M.
🏆 Winner of 2024 Excellence Award
🔒 Secure checkout with SSL encryption

---

*Optimized for {platform} targeting {audience} with focus on {goal}*`

// renderAdCopy produces advertising copy. The goal field selects the call
// to action and the platform field selects the optimization subsection.
func renderAdCopy(f fields) string {
	product := f.raw("product")
	platform := f.get("platform", "multi-platform")
	audience := f.get("audience", "everyday customers")
	goal := f.get("goal", "results")

	var cta string
	switch goal {
	case "sales":
		cta = "Order Now - 50% Off Today Only!"
	case "leads":
		cta = "Get Your Free Quote in 60 Seconds!"
	case "awareness":
		cta = "Learn More About Our Revolutionary Solution!"
	default:
		cta = "Take Action Today!"
	}

	var platformNotes string
	switch platform {
	case "facebook":
		platformNotes = "📱 Mobile-optimized with eye-catching visuals\n🎯 Targeted to your exact demographic\n💬 Engaging format that drives comments and shares"
	case "google":
		platformNotes = "🔍 SEO-optimized for search relevance\n📊 Data-driven headlines for maximum CTR\n💡 Keyword-rich content for better quality scores"
	case "instagram":
		platformNotes = "📸 Visual-first approach with story integration\n#️⃣ Trending hashtags included\n✨ Influencer-style authentic messaging"
	default:
		platformNotes = "📈 Multi-platform compatible format"
	}

	return strings.NewReplacer(
		"{product}", product,
		"{platform}", platform,
		"{audience}", audience,
		"{goal}", goal,
		"{cta}", cta,
		"{platformNotes}", platformNotes,
	).Replace(adCopyTemplate)
}
