package client

// translationLanguages maps language names to the ISO codes the translation
// service accepts. Detection model labels are a subset of these names, which
// is what lets a detected language feed straight into a translation request.
var translationLanguages = map[string]string{
	// Major European languages
	"English": "en", "French": "fr", "Spanish": "es", "German": "de",
	"Italian": "it", "Portuguese": "pt", "Russian": "ru", "Dutch": "nl",
	"Swedish": "sv", "Turkish": "tr", "Greek": "el", "Danish": "da",
	"Polish": "pl", "Czech": "cs", "Romanian": "ro", "Hungarian": "hu",
	"Finnish": "fi", "Norwegian": "no", "Ukrainian": "uk", "Bulgarian": "bg",
	"Croatian": "hr", "Serbian": "sr", "Slovak": "sk", "Slovenian": "sl",
	"Lithuanian": "lt", "Latvian": "lv", "Estonian": "et", "Icelandic": "is",
	"Irish": "ga", "Welsh": "cy", "Maltese": "mt", "Luxembourgish": "lb",

	// Asian languages
	"Hindi": "hi", "Japanese": "ja", "Chinese": "zh", "Korean": "ko",
	"Tamil": "ta", "Malayalam": "ml", "Kannada": "kn", "Telugu": "te",
	"Bengali": "bn", "Marathi": "mr", "Gujarati": "gu", "Punjabi": "pa",
	"Urdu": "ur", "Nepali": "ne", "Sinhala": "si", "Thai": "th",
	"Vietnamese": "vi", "Indonesian": "id", "Malay": "ms", "Filipino": "tl",
	"Burmese": "my", "Khmer": "km", "Lao": "lo", "Mongolian": "mn",

	// Middle Eastern and African languages
	"Arabic": "ar", "Hebrew": "he", "Persian": "fa", "Pashto": "ps",
	"Kurdish": "ku", "Amharic": "am", "Swahili": "sw", "Afrikaans": "af",
	"Zulu": "zu", "Xhosa": "xh", "Yoruba": "yo", "Hausa": "ha",

	// Other languages
	"Esperanto": "eo", "Basque": "eu", "Catalan": "ca", "Galician": "gl",
	"Armenian": "hy", "Georgian": "ka", "Azerbaijani": "az", "Kazakh": "kk",
	"Uzbek": "uz", "Tajik": "tg", "Belarusian": "be", "Macedonian": "mk",
	"Albanian": "sq", "Bosnian": "bs", "Moldovan": "ro", "Kyrgyz": "ky",
}
