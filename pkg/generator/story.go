package generator

import "strings"

const storyTemplate = `# The {genre} of {protagonist}

## Chapter 1: The Beginning

{protagonist} had always been different from others in {setting}. While everyone else seemed content with their ordinary lives, {protagonist} felt a restless energy, a calling that whispered of greater things to come.

It was on a particularly unremarkable Tuesday morning when everything changed. The conflict that would define {protagonist}'s journey began with {conflict}.

## Chapter 2: The Call to Adventure

The letter, written in elegant script on parchment that seemed to shimmer in the morning light, contained words that would forever alter {protagonist}'s destiny:

"Dear {protagonist},

Your true journey begins now. What you've always known to be real is merely the surface of a much deeper truth. {setting} holds secrets that only you can uncover.

Meet me at the old oak tree when the moon is highest tonight. Come alone, and bring only your courage.

A Friend in the Shadows"

{protagonist} read the letter three times, each reading making the words feel more real, more urgent. This was the moment they had been waiting for their entire life, even if they hadn't known it.

## Chapter 3: The First Challenge

As midnight approached, {protagonist} made their way to the ancient oak tree that stood at the edge of {setting}. The moonlight filtered through its gnarled branches, casting dancing shadows on the ground below.

A figure emerged from behind the massive trunk—someone {protagonist} had never seen before, yet somehow recognized.

"You came," the stranger said, their voice carrying the weight of centuries. "I wondered if you would have the courage."

"Who are you?" {protagonist} asked, surprised by the steadiness of their own voice.

"I am the keeper of secrets, the guardian of truths. And you, {protagonist}, are the one we've been waiting for. The one who can overcome {conflict}."

## Chapter 4: The Revelation

What followed was a revelation that shook {protagonist} to their core. Everything they thought they knew about {setting}, about themselves, was merely the tip of an iceberg floating in an ocean of hidden realities.

The stranger explained that {conflict} was only the beginning, and only someone with {protagonist}'s unique abilities could prevent disaster. It wouldn't be easy—there would be trials, challenges that would test not just their strength, but their character, their resolve, their very soul.

## Chapter 5: The Journey Begins

As dawn broke over {setting}, {protagonist} made their choice. They would accept this calling, embrace this destiny that had been thrust upon them.

The stranger smiled, and for the first time, {protagonist} saw hope in those ancient eyes.

"Then let us begin," the stranger said. "Your true adventure starts now."

And as they walked together into the rising sun, {protagonist} felt a change within themselves—no longer just an ordinary person from {setting}, but a hero whose story was just beginning to unfold.

## Epilogue

Little did {protagonist} know that this was only the first step in a journey that would take them to the very edges of imagination, where they would discover powers they never knew they possessed and face challenges that would define not just their own fate, but the fate of all who called {setting} home.

The adventure had begun, and there was no turning back.

---

*Genre: {genre} | Setting: {setting} | Conflict: {conflict}*`

// renderStory produces a short story. Every optional field has a fixed
// fallback so the narrative reads coherently with only a protagonist.
func renderStory(f fields) string {
	return strings.NewReplacer(
		"{protagonist}", f.raw("protagonist"),
		"{genre}", f.get("genre", "Adventure"),
		"{setting}", f.get("setting", "their small town"),
		"{conflict}", f.get("conflict", "a mysterious letter arriving at their doorstep"),
	).Replace(storyTemplate)
}
