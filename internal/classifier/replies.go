// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package classifier

// Keyword lists are matched as lower-case substrings.
var (
	crisisKeywords  = []string{"hurt myself", "end it", "suicide", "die"}
	anxietyKeywords = []string{"anxious", "anxiety", "stress", "worried", "panic"}
	sadnessKeywords = []string{"sad", "depressed", "lonely", "down"}
)

const (
	CrisisReply = "I'm really concerned about what you're sharing. Your life matters, and there are people who want to help. " +
		"Please reach out to a mental health professional or crisis helpline immediately. " +
		"In many countries, you can call emergency services or a suicide prevention hotline. You don't have to face this alone."

	AnxietyReply = "I hear that you're feeling anxious right now. That must be really difficult. " +
		"Would you like to try a calming breathing exercise? It can help ground you in this moment. " +
		"Remember, you're not alone in this."

	SadnessReply = "I'm sorry you're feeling this way. Your feelings are valid, and it's okay to not be okay sometimes. " +
		"Can you tell me a bit more about what's been weighing on your heart?"

	DefaultReply = "Thank you for sharing that with me. I'm here to listen and support you. " +
		"How are you feeling right now? Take your time, there's no rush."

	// WelcomeFallback greets the user when the backend welcome message is unavailable.
	WelcomeFallback = "Hello, I'm here for you. How are you feeling today?"
)
