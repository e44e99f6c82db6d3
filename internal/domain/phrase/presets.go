package phrase

// RelayPhrases returns the built-in relay phrases, translated for every
// supported language.
func RelayPhrases() []Phrase {
	return []Phrase{
		{
			ID:    "greeting",
			Label: "Hello, how are you?",
			Texts: map[string]string{
				"hi-IN": "नमस्ते, आप कैसे हैं?",
				"bn-IN": "নমস্কার, আপনি কেমন আছেন?",
				"ta-IN": "வணக்கம், நீங்கள் எப்படி இருக்கிறீர்கள்?",
				"te-IN": "నమస్కారం, మీరు ఎలా ఉన్నారు?",
				"gu-IN": "નમસ્તે, તમે કેમ છો?",
				"kn-IN": "ನಮಸ್ಕಾರ, ನೀವು ಹೇಗಿದ್ದೀರಿ?",
				"ml-IN": "നമസ്കാരം, സുഖമാണോ?",
				"mr-IN": "नमस्कार, तुम्ही कसे आहात?",
				"pa-IN": "ਸਤ ਸ੍ਰੀ ਅਕਾਲ, ਤੁਸੀਂ ਕਿਵੇਂ ਹੋ?",
				"od-IN": "ନମସ୍କାର, ଆପଣ କେମିତି ଅଛନ୍ତି?",
				"en-IN": "Hello, how are you?",
			},
		},
		{
			ID:    "thanks",
			Label: "Thank you so much",
			Texts: map[string]string{
				"hi-IN": "बहुत बहुत धन्यवाद",
				"bn-IN": "অনেক ধন্যবাদ",
				"ta-IN": "மிக்க நன்றி",
				"te-IN": "చాలా ధన్యవాదాలు",
				"gu-IN": "ખૂબ ખૂબ આભાર",
				"kn-IN": "ತುಂಬಾ ಧನ್ಯವಾದಗಳು",
				"ml-IN": "വളരെ നന്ദി",
				"mr-IN": "खूप खूप धन्यवाद",
				"pa-IN": "ਬਹੁਤ ਬਹੁਤ ਧੰਨਵਾਦ",
				"od-IN": "ବହୁତ ଧନ୍ୟବାଦ",
				"en-IN": "Thank you so much",
			},
		},
		{
			ID:    "goodnight",
			Label: "Good night",
			Texts: map[string]string{
				"hi-IN": "शुभ रात्रि",
				"bn-IN": "শুভ রাত্রি",
				"ta-IN": "இனிய இரவு",
				"te-IN": "శుభ రాత్రి",
				"gu-IN": "શુભ રાત્રિ",
				"kn-IN": "ಶುಭ ರಾತ್ರಿ",
				"ml-IN": "ശുഭ രാത്രി",
				"mr-IN": "शुभ रात्री",
				"pa-IN": "ਸ਼ੁਭ ਰਾਤ",
				"od-IN": "ଶୁଭ ରାତ୍ରି",
				"en-IN": "Good night",
			},
		},
	}
}

// Scenes returns the built-in scripted scenes.
func Scenes() []Scene {
	return []Scene{
		{
			ID:          "bedtime",
			Emoji:       "🌙",
			Title:       "Bedtime Story",
			Subtitle:    "Soft, slow and sleepy",
			Pace:        0.85,
			Temperature: 0.5,
			Texts: []SceneText{
				{
					LanguageCode: "hi-IN",
					Text:         "बहुत समय पहले, एक छोटे से गाँव में एक नन्ही चिड़िया रहती थी। हर रात वह चाँद से बातें करती थी।",
					Transliteration: "Bahut samay pehle, ek chhote se gaon mein ek nanhi chidiya rehti thi. " +
						"Har raat woh chaand se baatein karti thi.",
					EnglishMeaning: "Long ago, in a small village, there lived a tiny bird. Every night she talked to the moon.",
				},
				{
					LanguageCode: "en-IN",
					Text:         "Long ago, in a small village, there lived a tiny bird. Every night she talked to the moon.",
				},
				{
					LanguageCode:    "ta-IN",
					Text:            "ஒரு காலத்தில், ஒரு சிறிய கிராமத்தில் ஒரு குட்டி பறவை வாழ்ந்தது.",
					Transliteration: "Oru kaalathil, oru siriya kiraamathil oru kutti paravai vaazhnthathu.",
					EnglishMeaning:  "Once upon a time, in a small village, there lived a little bird.",
				},
			},
		},
		{
			ID:          "cricket",
			Emoji:       "🏏",
			Title:       "Cricket Commentary",
			Subtitle:    "Last ball, six needed",
			Pace:        1.25,
			Temperature: 0.8,
			Texts: []SceneText{
				{
					LanguageCode:    "hi-IN",
					Text:            "आखिरी गेंद, छह रन चाहिए... और यह गया छक्का! क्या शानदार शॉट है!",
					Transliteration: "Aakhri gend, chhah run chahiye... aur yeh gaya chhakka! Kya shaandaar shot hai!",
					EnglishMeaning:  "Last ball, six needed... and that's a six! What a magnificent shot!",
				},
				{
					LanguageCode: "en-IN",
					Text:         "Last ball, six needed... and that's a six! What a magnificent shot!",
				},
				{
					LanguageCode:    "bn-IN",
					Text:            "শেষ বল, ছয় রান দরকার... আর এটা ছক্কা! কী দুর্দান্ত শট!",
					Transliteration: "Shesh bol, chhoy run dorkar... ar eta chhokka! Ki durdanto shot!",
					EnglishMeaning:  "Last ball, six runs needed... and it's a six! What a superb shot!",
				},
			},
		},
		{
			ID:          "chai",
			Emoji:       "☕",
			Title:       "Chai Invitation",
			Subtitle:    "Warm and neighbourly",
			Pace:        1.0,
			Temperature: 0.6,
			Texts: []SceneText{
				{
					LanguageCode:    "mr-IN",
					Text:            "अहो, या ना! गरम गरम चहा तयार आहे.",
					Transliteration: "Aho, ya na! Garam garam chaha tayaar aahe.",
					EnglishMeaning:  "Hey, come on in! Hot tea is ready.",
				},
				{
					LanguageCode:    "hi-IN",
					Text:            "अरे, आइए ना! गरम गरम चाय तैयार है।",
					Transliteration: "Arey, aaiye na! Garam garam chai taiyaar hai.",
					EnglishMeaning:  "Hey, do come in! Hot tea is ready.",
				},
				{
					LanguageCode: "en-IN",
					Text:         "Hey, do come in! Hot tea is ready.",
				},
			},
		},
	}
}
