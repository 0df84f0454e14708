package generator

import "strings"

const rapTemplate = `[Verse 1]
Started from the bottom, now we talking {topic}
Every single day, I'm grinding, never gonna stop it
People said I couldn't make it, but I proved them wrong
Now I'm spitting fire, this is my victory song

[Chorus]
{topic} on my mind, {topic} in my heart
Every single moment, this is just the start
Rise above the noise, never fall apart
{topic} is the flame that lights up in the dark

[Verse 2]
Looking at the mirror, see the hunger in my eyes
{topic} gave me wings, now I'm reaching for the skies
Every single rhyme, every single flow
Telling my story, letting everybody know

[Bridge]
When the world gets heavy, and the path unclear
{topic} keeps me strong, eliminates the fear
This is more than music, this is how I live
{topic} is the reason I got more to give

[Outro]
So remember my name, remember my song
{topic} made me who I am, this is where I belong
Keep the rhythm going, let the music play
This is my anthem, this is my way

---

*Generated with {style} style and {mood} mood.*`

func renderRap(f fields) string {
	return strings.NewReplacer(
		"{topic}", f.raw("topic"),
		"{style}", f.get("style", "classic"),
		"{mood}", f.get("mood", "confident"),
	).Replace(rapTemplate)
}
