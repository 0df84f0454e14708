package generator

import "strings"

const contentShortTemplate = `# {topic}

## Introduction

{topic} has become increasingly important in today's digital landscape. Understanding its fundamentals is crucial for success.

## Key Points

**Understanding the Basics**: The foundation of {topic} lies in grasping its core principles and practical applications in real-world scenarios.

**Best Practices**: Implementing effective strategies requires careful planning, thorough research, and consistent execution of proven methodologies.

**Common Challenges**: Many practitioners face obstacles when working with {topic}, but these can be overcome with the right approach and mindset.

## Implementation

To successfully implement {topic}:
- Start with clear objectives
- Research current trends
- Create structured plans
- Monitor your progress regularly

## Conclusion

{topic} offers significant opportunities for those willing to invest time and effort. By following these guidelines and maintaining consistency, you'll be well-positioned to achieve your goals and see meaningful results.

---
*Generated with {tone} tone - Short format*`

const contentMediumTemplate = `# {topic}

## Introduction

{topic} has become increasingly important in today's rapidly evolving digital landscape. This comprehensive guide will explore the essential aspects you need to understand to succeed in this field. Whether you're a beginner or looking to enhance your existing knowledge, this overview will provide valuable insights.

## Understanding the Fundamentals

The foundation of {topic} lies in understanding its core principles and applications. These fundamentals serve as building blocks for more advanced concepts and practical implementations. By mastering these basics, you create a solid foundation for future growth and development.

### Core Principles

The essential principles include systematic approaches, strategic thinking, and practical application of theoretical knowledge. These elements work together to create a comprehensive framework for success.

## Best Practices and Strategies

Implementing effective strategies for {topic} requires careful planning, thorough research, and consistent execution. The most successful practitioners follow proven methodologies while remaining adaptable to changing circumstances and emerging trends.

### Strategic Planning

- Conduct thorough research and analysis
- Set clear, measurable objectives
- Develop detailed implementation timelines
- Create contingency plans for potential challenges

### Execution Excellence

Focus on consistent implementation of your strategies. Regular monitoring and adjustment ensure that you stay on track toward your goals while remaining flexible enough to adapt to new opportunities or obstacles.

## Common Challenges and Solutions

Many face obstacles when working with {topic}, but these can be overcome with the right approach and mindset. Understanding potential pitfalls helps you prepare effective solutions and maintain momentum toward your objectives.

The key is to view challenges as learning opportunities rather than roadblocks. This perspective shift enables continuous improvement and long-term success.

## Conclusion

{topic} offers tremendous opportunities for those willing to invest the time and effort to master it. By following these guidelines, maintaining consistency, and staying committed to continuous learning, you'll be well-positioned to achieve success and make meaningful progress in your endeavors.

---
*Generated with {tone} tone - Medium format*`

const contentLongTemplate = `# {topic}

## Introduction

{topic} has become increasingly important in today's rapidly evolving digital landscape, fundamentally transforming how we approach business, technology, and innovation. This comprehensive guide will explore the essential aspects you need to understand to succeed in this complex and dynamic field. Whether you're a complete beginner taking your first steps or an experienced professional looking to enhance your existing knowledge and skills, this detailed overview will provide valuable insights, practical strategies, and actionable recommendations.

The landscape of {topic} continues to evolve at an unprecedented pace, driven by technological advancement, changing consumer behaviors, and emerging market opportunities. Understanding these dynamics is crucial for anyone looking to make a meaningful impact in this space.

## Understanding the Fundamentals

The foundation of {topic} lies in understanding its core principles, methodologies, and practical applications across various contexts and industries. These fundamentals serve as essential building blocks for more advanced concepts and sophisticated implementations. By thoroughly mastering these basics, you create a solid foundation that supports future growth, development, and innovation.

### Core Principles and Frameworks

The essential principles include systematic approaches to problem-solving, strategic thinking methodologies, and the practical application of theoretical knowledge in real-world scenarios. These elements work synergistically to create a comprehensive framework for sustainable success and continuous improvement.

Understanding these frameworks requires dedicated study, hands-on practice, and consistent application across different scenarios. The most successful practitioners develop a deep intuitive understanding that goes beyond surface-level knowledge.

### Historical Context and Evolution

The development of {topic} has been influenced by numerous factors, including technological breakthroughs, economic shifts, and changing social dynamics. This historical perspective provides valuable context for understanding current trends and anticipating future developments.

## Best Practices and Strategic Approaches

Implementing effective strategies for {topic} requires careful planning, thorough research, systematic execution, and continuous optimization. The most successful practitioners follow proven methodologies while remaining adaptable to changing circumstances, emerging trends, and unexpected opportunities or challenges.

### Strategic Planning and Analysis

Effective strategic planning begins with comprehensive research and analysis of the current landscape, competitive environment, and market dynamics. This foundational work includes:

- Conducting thorough market research and competitive analysis
- Setting clear, measurable, and achievable objectives
- Developing detailed implementation timelines with realistic milestones
- Creating comprehensive contingency plans for potential challenges
- Establishing key performance indicators and measurement frameworks

### Implementation Excellence and Optimization

Focus on consistent, high-quality implementation of your strategies while maintaining flexibility to adapt and optimize based on results and feedback. Regular monitoring, analysis, and adjustment ensure that you stay on track toward your goals while remaining responsive to new opportunities or obstacles that may emerge.

Successful implementation requires attention to detail, consistent execution, and the ability to learn from both successes and failures. The most effective practitioners develop systems and processes that support sustainable growth and continuous improvement.

## Advanced Strategies and Techniques

Beyond the fundamentals, mastering {topic} requires understanding advanced strategies and sophisticated techniques that can provide competitive advantages and accelerate progress toward your objectives. These advanced approaches often involve:

### Innovation and Creative Problem-Solving

Developing innovative solutions requires thinking beyond conventional approaches and exploring new possibilities. This involves fostering creativity, encouraging experimentation, and creating environments that support innovation and calculated risk-taking.

### Technology Integration and Optimization

Leveraging technology effectively can significantly enhance your capabilities and efficiency. This includes staying current with emerging technologies, understanding their potential applications, and implementing them strategically to support your objectives.

## Common Challenges and Comprehensive Solutions

Many practitioners face significant obstacles when working with {topic}, but these challenges can be overcome with the right approach, mindset, and strategic planning. Understanding potential pitfalls helps you prepare effective solutions and maintain momentum toward your objectives, even when facing unexpected difficulties.

Common challenges include resource constraints, technical complexity, market volatility, and competitive pressures. The key is to view these challenges as learning opportunities rather than insurmountable roadblocks. This perspective shift enables continuous improvement, resilience, and long-term success.

### Risk Management and Mitigation

Developing comprehensive risk management strategies helps minimize potential negative impacts while positioning you to capitalize on opportunities. This includes identifying potential risks, assessing their likelihood and impact, and developing appropriate mitigation strategies.

## Future Trends and Opportunities

The future of {topic} promises exciting developments and new opportunities for those who stay informed and adaptable. Emerging trends suggest continued growth, innovation, and evolution in this space, creating numerous opportunities for forward-thinking practitioners.

Staying ahead of these trends requires continuous learning, strategic networking, and active participation in relevant communities and discussions. The most successful practitioners position themselves at the forefront of emerging developments.

## Conclusion and Next Steps

{topic} offers tremendous opportunities for those willing to invest the time, effort, and dedication required to master its complexities and nuances. By following these comprehensive guidelines, maintaining consistency in your approach, and staying committed to continuous learning and improvement, you'll be well-positioned to achieve significant success and make meaningful progress in your endeavors.

The journey toward mastery is ongoing, requiring persistence, adaptability, and a commitment to excellence. Success in {topic} comes not from perfection, but from consistent effort, continuous learning, and the courage to take calculated risks and learn from both successes and failures.

Remember that expertise develops over time through deliberate practice, thoughtful reflection, and persistent effort. Stay focused on your long-term objectives while remaining flexible in your approach and open to new learning opportunities.

---
*Generated with {tone} tone - Long format (1000+ words)*`

// renderContent produces a blog post or article. The length field selects
// one of three template variants; anything other than short or medium
// falls through to the long variant.
func renderContent(f fields) string {
	topic := f.raw("topic")
	tone := f.get("tone", "professional")
	var body string
	switch f.raw("length") {
	case "short":
		body = contentShortTemplate
	case "medium":
		body = contentMediumTemplate
	default:
		body = contentLongTemplate
	}
	return strings.NewReplacer(
		"{topic}", topic,
		"{tone}", tone,
	).Replace(body)
}
