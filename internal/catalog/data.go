package catalog

import "github.com/ayoisaiah/moodlift/internal/emotion"

// suggestions maps each emotion to its fixed list of candidate activities.
var suggestions = map[emotion.Label][]Activity{
	emotion.Happy: {
		{
			Title:       "Dance Party",
			Description: "Turn up your favorite music and dance like nobody's watching!",
		},
		{
			Title:       "Gratitude Journal",
			Description: "Write down 5 things you're grateful for today.",
		},
		{
			Title:       "Random Acts of Kindness",
			Description: "Do something nice for someone else to spread the joy.",
		},
		{
			Title:       "Creative Project",
			Description: "Start a fun art project or craft that makes you smile.",
		},
		{
			Title:       "Nature Walk",
			Description: "Take a walk outside and appreciate the beauty around you.",
		},
		{
			Title:       "Call a Friend",
			Description: "Share your good mood with someone you care about.",
		},
		{
			Title:       "Photo Album Time",
			Description: "Look through old happy photos or create a new digital album.",
		},
		{
			Title:       "Compliment Chain",
			Description: "Compliment three people today and watch the positivity spread.",
		},
	},
	emotion.Sad: {
		{
			Title:       "Comfort Movie",
			Description: "Watch a favorite film that always lifts your spirits.",
		},
		{
			Title:       "Gentle Movement",
			Description: "Try some light yoga or stretching to release tension.",
		},
		{
			Title:       "Cozy Reading",
			Description: "Curl up with a good book and a warm drink.",
		},
		{
			Title:       "Mindful Breathing",
			Description: "Practice deep breathing for a few minutes to center yourself.",
		},
		{
			Title:       "Soothing Music",
			Description: "Listen to calming music that resonates with you.",
		},
		{
			Title:       "Warm Bath",
			Description: "Take a relaxing bath with essential oils or bath salts.",
		},
		{
			Title:       "Tear It Out",
			Description: "Let yourself cry. Tears are a natural way for the body to release sadness.",
		},
		{
			Title:       "Memory Lane Walk",
			Description: "Take a walk to a place that holds a good memory and reflect gently.",
		},
		{
			Title:       "Self-Compassion Meditation",
			Description: "Try a guided meditation focused on kindness toward yourself.",
		},
		{
			Title:       "Create a Comfort Box",
			Description: "Fill a box with things that make you feel safe and supported — photos, scents, notes, or textures.",
		},
		{
			Title:       "Watch the Sky",
			Description: "Sit somewhere quiet and just watch the clouds or stars — let your mind rest.",
		},
	},
	emotion.Angry: {
		{
			Title:       "Physical Release",
			Description: "Go for a run or do some high-intensity exercise to release energy.",
		},
		{
			Title:       "Journaling",
			Description: "Write down your thoughts to process your feelings.",
		},
		{
			Title:       "Stress Ball",
			Description: "Squeeze a stress ball or punch a pillow to release tension safely.",
		},
		{
			Title:       "Deep Breathing",
			Description: "Practice 4-7-8 breathing to calm your nervous system.",
		},
		{
			Title:       "Nature Break",
			Description: "Step outside for fresh air and a change of scenery.",
		},
		{
			Title:       "Progressive Relaxation",
			Description: "Tense and release each muscle group to release physical tension.",
		},
		{
			Title:       "Scream Therapy (Safely)",
			Description: "Let out a scream into a pillow or secluded place to release anger.",
		},
		{
			Title:       "Cold Splash",
			Description: "Splash cold water on your face to reset your body and mind.",
		},
	},
	emotion.Surprised: {
		{
			Title:       "Mindful Moment",
			Description: "Take a moment to ground yourself and process the surprise.",
		},
		{
			Title:       "Creative Expression",
			Description: "Channel your energy into drawing or writing about your feelings.",
		},
		{
			Title:       "Curiosity Exploration",
			Description: "Learn something new about a topic that interests you.",
		},
		{
			Title:       "Spontaneous Adventure",
			Description: "Do something unplanned but fun to embrace the unexpected.",
		},
		{
			Title:       "Photo Walk",
			Description: "Take photos of interesting things you normally wouldn't notice.",
		},
		{
			Title:       "New Recipe",
			Description: "Try cooking something you've never made before.",
		},
		{
			Title:       "Voice Memo Journaling",
			Description: "Record your initial thoughts to process the moment.",
		},
		{
			Title:       "Surprise Someone Else",
			Description: "Turn the energy around and plan a small surprise for a friend.",
		},
	},
	emotion.Neutral: {
		{
			Title:       "Skill Building",
			Description: "Learn something new or practice a skill you've been wanting to improve.",
		},
		{
			Title:       "Declutter Space",
			Description: "Organize a small area of your home for a sense of accomplishment.",
		},
		{
			Title:       "Mindful Walking",
			Description: "Take a walk and pay attention to all your senses.",
		},
		{
			Title:       "Goal Setting",
			Description: "Reflect on your goals and plan some next steps.",
		},
		{
			Title:       "Podcast Time",
			Description: "Listen to an interesting podcast on a topic you enjoy.",
		},
		{
			Title:       "People Watching",
			Description: "Sit in a public place and observe the world around you.",
		},
		{
			Title:       "Digital Detox",
			Description: "Take a short break from screens to reset your mind.",
		},
		{
			Title:       "Tea Time",
			Description: "Make a cup of tea and enjoy it with no distractions.",
		},
	},
	emotion.Fear: {
		{
			Title:       "Grounding Exercise",
			Description: "Practice the 5-4-3-2-1 technique to ground yourself in the present.",
		},
		{
			Title:       "Calming Visualization",
			Description: "Imagine a peaceful place where you feel safe and secure.",
		},
		{
			Title:       "Gentle Stretching",
			Description: "Release tension with slow, gentle stretches.",
		},
		{
			Title:       "Support Call",
			Description: "Call a trusted friend or family member for support.",
		},
		{
			Title:       "Comfort Object",
			Description: "Hold or use an object that brings you comfort and security.",
		},
		{
			Title:       "Positive Affirmations",
			Description: "Repeat calming affirmations that help you feel safe.",
		},
		{
			Title:       "Slow Rocking",
			Description: "Sit and gently rock yourself to soothe your nervous system.",
		},
		{
			Title:       "Create a Safety Plan",
			Description: "Write down steps that help you feel more in control.",
		},
	},
	emotion.Disgust: {
		{
			Title:       "Fresh Air",
			Description: "Open windows or go outside for fresh air to clear your mind.",
		},
		{
			Title:       "Clean Space",
			Description: "Tidy up your immediate environment to create a fresh feeling.",
		},
		{
			Title:       "Pleasant Scents",
			Description: "Use essential oils or candles with scents you enjoy.",
		},
		{
			Title:       "Hand Washing Ritual",
			Description: "Practice mindful hand washing as a cleansing ritual.",
		},
		{
			Title:       "Fresh Outfit",
			Description: "Change into clean, comfortable clothes to refresh your body.",
		},
		{
			Title:       "Mental Cleanse",
			Description: "Write down negative thoughts and rip up the paper to release them.",
		},
		{
			Title:       "Sensory Reset",
			Description: "Focus on pleasant textures, sounds, or visuals to reset your senses.",
		},
		{
			Title:       "Boundary Setting",
			Description: "Reflect on and write down healthy boundaries you want to maintain.",
		},
	},
}
