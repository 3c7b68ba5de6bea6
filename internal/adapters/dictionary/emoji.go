package dictionary

import "github.com/baditaflorin/go_ajemi/internal/core/domain"

// repeated spellings are homophones; the first one is the primary glyph
var emojiEntries = []domain.Entry{
	{Spelling: "a", Glyph: "🅰️"},
	{Spelling: "akesi", Glyph: "🦎"},
	{Spelling: "akesi", Glyph: "🐸"},
	{Spelling: "ala", Glyph: "❌"},
	{Spelling: "alasa", Glyph: "🏹"},
	{Spelling: "ale", Glyph: "🌌"},
	{Spelling: "anpa", Glyph: "🧎"},
	{Spelling: "anpa", Glyph: "🙇"},
	{Spelling: "ante", Glyph: "🔀"},
	{Spelling: "anu", Glyph: "🤷"},
	{Spelling: "awen", Glyph: "⚓"},
	{Spelling: "e", Glyph: "⏩"},
	{Spelling: "en", Glyph: "🤝"},
	{Spelling: "esun", Glyph: "🛒"},
	{Spelling: "ijo", Glyph: "🐚"},
	{Spelling: "ike", Glyph: "😔"},
	{Spelling: "ike", Glyph: "👎"},
	{Spelling: "ilo", Glyph: "🔦"},
	{Spelling: "insa", Glyph: "🗳️"},
	{Spelling: "jaki", Glyph: "💩"},
	{Spelling: "jan", Glyph: "🧑"},
	{Spelling: "jelo", Glyph: "🍋"},
	{Spelling: "jo", Glyph: "👜"},
	{Spelling: "kala", Glyph: "🐟"},
	{Spelling: "kala", Glyph: "🐙"},
	{Spelling: "kalama", Glyph: "👏"},
	{Spelling: "kama", Glyph: "🛬"},
	{Spelling: "kasi", Glyph: "🌱"},
	{Spelling: "ken", Glyph: "💪"},
	{Spelling: "kepeken", Glyph: "✍️"},
	{Spelling: "kili", Glyph: "🍎"},
	{Spelling: "kiwen", Glyph: "💎"},
	{Spelling: "ko", Glyph: "🍦"},
	{Spelling: "kon", Glyph: "💨"},
	{Spelling: "kule", Glyph: "🌈"},
	{Spelling: "kulupu", Glyph: "👥"},
	{Spelling: "kute", Glyph: "👂"},
	{Spelling: "la", Glyph: "ℹ️"},
	{Spelling: "la", Glyph: "💁"},
	{Spelling: "lape", Glyph: "😴"},
	{Spelling: "laso", Glyph: "☘️"},
	{Spelling: "lawa", Glyph: "👑"},
	{Spelling: "len", Glyph: "🧣"},
	{Spelling: "lete", Glyph: "❄️"},
	{Spelling: "li", Glyph: "▶️"},
	{Spelling: "lili", Glyph: "🐁"},
	{Spelling: "linja", Glyph: "🧶"},
	{Spelling: "lipu", Glyph: "🍁"},
	{Spelling: "loje", Glyph: "👅"},
	{Spelling: "lon", Glyph: "⏺️"},
	{Spelling: "lon", Glyph: "✅"},
	{Spelling: "lon", Glyph: "🫴"},
	{Spelling: "luka", Glyph: "🖐️"},
	{Spelling: "lukin", Glyph: "👀"},
	{Spelling: "lupa", Glyph: "🚪"},
	{Spelling: "ma", Glyph: "🏝️"},
	{Spelling: "mama", Glyph: "🍼"},
	{Spelling: "mani", Glyph: "🐮"},
	{Spelling: "meli", Glyph: "👩"},
	{Spelling: "meli", Glyph: "🚺"},
	{Spelling: "mi", Glyph: "👇"},
	{Spelling: "mi", Glyph: "🅿️"},
	{Spelling: "mije", Glyph: "👨"},
	{Spelling: "mije", Glyph: "🚹"},
	{Spelling: "moku", Glyph: "🍜"},
	{Spelling: "moli", Glyph: "😵"},
	{Spelling: "monsi", Glyph: "🍑"},
	{Spelling: "mu", Glyph: "🐽"},
	{Spelling: "mun", Glyph: "🌙"},
	{Spelling: "musi", Glyph: "🎭"},
	{Spelling: "mute", Glyph: "👐"},
	{Spelling: "nanpa", Glyph: "#️⃣"},
	{Spelling: "nasa", Glyph: "🌀"},
	{Spelling: "nasin", Glyph: "🛤️"},
	{Spelling: "nena", Glyph: "🗻"},
	{Spelling: "ni", Glyph: "⬇️"},
	{Spelling: "ni", Glyph: "⬆️"},
	{Spelling: "ni", Glyph: "⬅️"},
	{Spelling: "ni", Glyph: "➡️"},
	{Spelling: "nimi", Glyph: "📛"},
	{Spelling: "noka", Glyph: "🦵"},
	{Spelling: "o", Glyph: "🅾️"},
	{Spelling: "olin", Glyph: "💕"},
	{Spelling: "ona", Glyph: "👈"},
	{Spelling: "ona", Glyph: "♋️"},
	{Spelling: "open", Glyph: "🎬"},
	{Spelling: "pakala", Glyph: "💥"},
	{Spelling: "pali", Glyph: "🏗️"},
	{Spelling: "palisa", Glyph: "📏"},
	{Spelling: "pan", Glyph: "🍞"},
	{Spelling: "pana", Glyph: "🙌"},
	{Spelling: "pi", Glyph: "📎"},
	{Spelling: "pilin", Glyph: "❤️"},
	{Spelling: "pimeja", Glyph: "🎱"},
	{Spelling: "pini", Glyph: "🏁"},
	{Spelling: "pini", Glyph: "🛑"},
	{Spelling: "pipi", Glyph: "🐛"},
	{Spelling: "poka", Glyph: "👯"},
	{Spelling: "poki", Glyph: "📦"},
	{Spelling: "pona", Glyph: "😌"},
	{Spelling: "pona", Glyph: "👍"},
	{Spelling: "pu", Glyph: "🧘"},
	{Spelling: "sama", Glyph: "⚖️"},
	{Spelling: "seli", Glyph: "🔥"},
	{Spelling: "selo", Glyph: "🍌"},
	{Spelling: "seme", Glyph: "❓"},
	{Spelling: "sewi", Glyph: "☁️"},
	{Spelling: "sijelo", Glyph: "🧍"},
	{Spelling: "sike", Glyph: "⭕"},
	{Spelling: "sin", Glyph: "✨"},
	{Spelling: "sina", Glyph: "👆"},
	{Spelling: "sina", Glyph: "6️⃣"},
	{Spelling: "sinpin", Glyph: "🗿"},
	{Spelling: "sitelen", Glyph: "🎨"},
	{Spelling: "sitelen", Glyph: "🖼️"},
	{Spelling: "sona", Glyph: "🧠"},
	{Spelling: "soweli", Glyph: "🦔"},
	{Spelling: "suli", Glyph: "🐘"},
	{Spelling: "suno", Glyph: "☀️"},
	{Spelling: "supa", Glyph: "🛏️"},
	{Spelling: "suwi", Glyph: "🍬"},
	{Spelling: "tan", Glyph: "↩️"},
	{Spelling: "taso", Glyph: "🚦"},
	{Spelling: "taso", Glyph: "🚥"},
	{Spelling: "tawa", Glyph: "🛫"},
	{Spelling: "telo", Glyph: "💧"},
	{Spelling: "tenpo", Glyph: "🕒"},
	{Spelling: "toki", Glyph: "💬"},
	{Spelling: "tomo", Glyph: "🏠"},
	{Spelling: "tu", Glyph: "⏸️"},
	{Spelling: "unpa", Glyph: "🍆"},
	{Spelling: "uta", Glyph: "👄"},
	{Spelling: "utala", Glyph: "⚔️"},
	{Spelling: "utala", Glyph: "🆚"},
	{Spelling: "walo", Glyph: "🐑"},
	{Spelling: "wan", Glyph: "1️⃣"},
	{Spelling: "waso", Glyph: "🐦"},
	{Spelling: "wawa", Glyph: "⚡"},
	{Spelling: "weka", Glyph: "🆑"},
	{Spelling: "wile", Glyph: "🙏"},
	{Spelling: "wile", Glyph: "🧲"},
	{Spelling: "epiku", Glyph: "😁"},
	{Spelling: "jasima", Glyph: "🪞"},
	{Spelling: "jasima", Glyph: "🪩"},
	{Spelling: "kijetesantakalu", Glyph: "🦡"},
	{Spelling: "kijetesantakalu", Glyph: "🦝"},
	{Spelling: "kin", Glyph: "*️⃣"},
	{Spelling: "kipisi", Glyph: "✂️"},
	{Spelling: "kokosila", Glyph: "🐊"},
	{Spelling: "ku", Glyph: "🔬"},
	{Spelling: "lanpan", Glyph: "🤳"},
	{Spelling: "leko", Glyph: "🧱"},
	{Spelling: "meso", Glyph: "😑"},
	{Spelling: "misikeke", Glyph: "💊"},
	{Spelling: "monsuta", Glyph: "👻"},
	{Spelling: "n", Glyph: "🆖"},
	{Spelling: "namako", Glyph: "🌶️"},
	{Spelling: "oko", Glyph: "👁️"},
	{Spelling: "soko", Glyph: "🍄"},
	{Spelling: "tonsi", Glyph: "⚧️"},
	{Spelling: "majuna", Glyph: "🪷"},
	{Spelling: "majuna", Glyph: "💾"},
	{Spelling: "majuna", Glyph: "🧓"},
	{Spelling: "su", Glyph: "🧙"},
	{Spelling: "su", Glyph: "🧵"},
}

var emojiPuncts = map[rune]rune{
	'[': '\U0001F58C',
	']': '\U0001F58C',
}
