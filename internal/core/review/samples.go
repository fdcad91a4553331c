package review

import "math/rand/v2"

// sampleReviews is the fixed demo corpus for the sample-load action.
var sampleReviews = []string{
	"This movie was an absolute masterpiece. The cinematography was stunning, the performances were heartfelt, and I was completely absorbed from the opening scene to the final credits.",
	"A complete waste of two hours. The plot made no sense, the dialogue was wooden, and not even the talented cast could save this disaster of a script.",
	"It was fine, I guess. Some scenes dragged on a bit but the soundtrack was decent. Not something I would watch again, but not terrible either.",
	"One of the best films I've seen this year! The director took real risks with the pacing and every single one paid off. I laughed, I cried, I already bought tickets to see it again.",
	"The trailer promised so much more than the film delivered. Flat characters, predictable twists, and an ending that felt rushed and unearned. Very disappointing.",
}

// Sample returns one of the fixed example reviews, chosen uniformly.
func Sample() string {
	return sampleReviews[rand.IntN(len(sampleReviews))]
}

// Samples returns the full demo corpus.
func Samples() []string {
	out := make([]string, len(sampleReviews))
	copy(out, sampleReviews)
	return out
}
