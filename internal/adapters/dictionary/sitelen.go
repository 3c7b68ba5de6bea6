package dictionary

import "github.com/baditaflorin/go_ajemi/internal/core/domain"

// sitelen pona glyphs in the UCSUR private use block
var sitelenEntries = []domain.Entry{
	{Spelling: "a", Glyph: "\U000F1900"},
	{Spelling: "akesi", Glyph: "\U000F1901"},
	{Spelling: "ala", Glyph: "\U000F1902"},
	{Spelling: "alasa", Glyph: "\U000F1903"},
	{Spelling: "ale", Glyph: "\U000F1904"},
	{Spelling: "anpa", Glyph: "\U000F1905"},
	{Spelling: "ante", Glyph: "\U000F1906"},
	{Spelling: "anu", Glyph: "\U000F1907"},
	{Spelling: "awen", Glyph: "\U000F1908"},
	{Spelling: "e", Glyph: "\U000F1909"},
	{Spelling: "en", Glyph: "\U000F190A"},
	{Spelling: "esun", Glyph: "\U000F190B"},
	{Spelling: "ijo", Glyph: "\U000F190C"},
	{Spelling: "ike", Glyph: "\U000F190D"},
	{Spelling: "ilo", Glyph: "\U000F190E"},
	{Spelling: "insa", Glyph: "\U000F190F"},
	{Spelling: "jaki", Glyph: "\U000F1910"},
	{Spelling: "jan", Glyph: "\U000F1911"},
	{Spelling: "jelo", Glyph: "\U000F1912"},
	{Spelling: "jo", Glyph: "\U000F1913"},
	{Spelling: "kala", Glyph: "\U000F1914"},
	{Spelling: "kalama", Glyph: "\U000F1915"},
	{Spelling: "kama", Glyph: "\U000F1916"},
	{Spelling: "kasi", Glyph: "\U000F1917"},
	{Spelling: "ken", Glyph: "\U000F1918"},
	{Spelling: "kepeken", Glyph: "\U000F1919"},
	{Spelling: "kili", Glyph: "\U000F191A"},
	{Spelling: "kiwen", Glyph: "\U000F191B"},
	{Spelling: "ko", Glyph: "\U000F191C"},
	{Spelling: "kon", Glyph: "\U000F191D"},
	{Spelling: "kule", Glyph: "\U000F191E"},
	{Spelling: "kulupu", Glyph: "\U000F191F"},
	{Spelling: "kute", Glyph: "\U000F1920"},
	{Spelling: "la", Glyph: "\U000F1921"},
	{Spelling: "lape", Glyph: "\U000F1922"},
	{Spelling: "laso", Glyph: "\U000F1923"},
	{Spelling: "lawa", Glyph: "\U000F1924"},
	{Spelling: "len", Glyph: "\U000F1925"},
	{Spelling: "lete", Glyph: "\U000F1926"},
	{Spelling: "li", Glyph: "\U000F1927"},
	{Spelling: "lili", Glyph: "\U000F1928"},
	{Spelling: "linja", Glyph: "\U000F1929"},
	{Spelling: "lipu", Glyph: "\U000F192A"},
	{Spelling: "loje", Glyph: "\U000F192B"},
	{Spelling: "lon", Glyph: "\U000F192C"},
	{Spelling: "luka", Glyph: "\U000F192D"},
	{Spelling: "lukin", Glyph: "\U000F192E"},
	{Spelling: "lupa", Glyph: "\U000F192F"},
	{Spelling: "ma", Glyph: "\U000F1930"},
	{Spelling: "mama", Glyph: "\U000F1931"},
	{Spelling: "mani", Glyph: "\U000F1932"},
	{Spelling: "meli", Glyph: "\U000F1933"},
	{Spelling: "mi", Glyph: "\U000F1934"},
	{Spelling: "mije", Glyph: "\U000F1935"},
	{Spelling: "moku", Glyph: "\U000F1936"},
	{Spelling: "moli", Glyph: "\U000F1937"},
	{Spelling: "monsi", Glyph: "\U000F1938"},
	{Spelling: "mu", Glyph: "\U000F1939"},
	{Spelling: "mun", Glyph: "\U000F193A"},
	{Spelling: "musi", Glyph: "\U000F193B"},
	{Spelling: "mute", Glyph: "\U000F193C"},
	{Spelling: "nanpa", Glyph: "\U000F193D"},
	{Spelling: "nasa", Glyph: "\U000F193E"},
	{Spelling: "nasin", Glyph: "\U000F193F"},
	{Spelling: "nena", Glyph: "\U000F1940"},
	{Spelling: "ni", Glyph: "\U000F1941"},
	{Spelling: "nimi", Glyph: "\U000F1942"},
	{Spelling: "noka", Glyph: "\U000F1943"},
	{Spelling: "o", Glyph: "\U000F1944"},
	{Spelling: "olin", Glyph: "\U000F1945"},
	{Spelling: "ona", Glyph: "\U000F1946"},
	{Spelling: "open", Glyph: "\U000F1947"},
	{Spelling: "pakala", Glyph: "\U000F1948"},
	{Spelling: "pali", Glyph: "\U000F1949"},
	{Spelling: "palisa", Glyph: "\U000F194A"},
	{Spelling: "pan", Glyph: "\U000F194B"},
	{Spelling: "pana", Glyph: "\U000F194C"},
	{Spelling: "pi", Glyph: "\U000F194D"},
	{Spelling: "pilin", Glyph: "\U000F194E"},
	{Spelling: "pimeja", Glyph: "\U000F194F"},
	{Spelling: "pini", Glyph: "\U000F1950"},
	{Spelling: "pipi", Glyph: "\U000F1951"},
	{Spelling: "poka", Glyph: "\U000F1952"},
	{Spelling: "poki", Glyph: "\U000F1953"},
	{Spelling: "pona", Glyph: "\U000F1954"},
	{Spelling: "pu", Glyph: "\U000F1955"},
	{Spelling: "sama", Glyph: "\U000F1956"},
	{Spelling: "seli", Glyph: "\U000F1957"},
	{Spelling: "selo", Glyph: "\U000F1958"},
	{Spelling: "seme", Glyph: "\U000F1959"},
	{Spelling: "sewi", Glyph: "\U000F195A"},
	{Spelling: "sijelo", Glyph: "\U000F195B"},
	{Spelling: "sike", Glyph: "\U000F195C"},
	{Spelling: "sin", Glyph: "\U000F195D"},
	{Spelling: "sina", Glyph: "\U000F195E"},
	{Spelling: "sinpin", Glyph: "\U000F195F"},
	{Spelling: "sitelen", Glyph: "\U000F1960"},
	{Spelling: "sona", Glyph: "\U000F1961"},
	{Spelling: "soweli", Glyph: "\U000F1962"},
	{Spelling: "suli", Glyph: "\U000F1963"},
	{Spelling: "suno", Glyph: "\U000F1964"},
	{Spelling: "supa", Glyph: "\U000F1965"},
	{Spelling: "suwi", Glyph: "\U000F1966"},
	{Spelling: "tan", Glyph: "\U000F1967"},
	{Spelling: "taso", Glyph: "\U000F1968"},
	{Spelling: "tawa", Glyph: "\U000F1969"},
	{Spelling: "telo", Glyph: "\U000F196A"},
	{Spelling: "tenpo", Glyph: "\U000F196B"},
	{Spelling: "toki", Glyph: "\U000F196C"},
	{Spelling: "tomo", Glyph: "\U000F196D"},
	{Spelling: "tu", Glyph: "\U000F196E"},
	{Spelling: "unpa", Glyph: "\U000F196F"},
	{Spelling: "uta", Glyph: "\U000F1970"},
	{Spelling: "utala", Glyph: "\U000F1971"},
	{Spelling: "walo", Glyph: "\U000F1972"},
	{Spelling: "wan", Glyph: "\U000F1973"},
	{Spelling: "waso", Glyph: "\U000F1974"},
	{Spelling: "wawa", Glyph: "\U000F1975"},
	{Spelling: "weka", Glyph: "\U000F1976"},
	{Spelling: "wile", Glyph: "\U000F1977"},
	{Spelling: "namako", Glyph: "\U000F1978"},
	{Spelling: "kin", Glyph: "\U000F1979"},
	{Spelling: "oko", Glyph: "\U000F197A"},
	{Spelling: "kipisi", Glyph: "\U000F197B"},
	{Spelling: "leko", Glyph: "\U000F197C"},
	{Spelling: "monsuta", Glyph: "\U000F197D"},
	{Spelling: "tonsi", Glyph: "\U000F197E"},
	{Spelling: "jasima", Glyph: "\U000F197F"},
	{Spelling: "kijetesantakalu", Glyph: "\U000F1980"},
	{Spelling: "soko", Glyph: "\U000F1981"},
	{Spelling: "meso", Glyph: "\U000F1982"},
	{Spelling: "epiku", Glyph: "\U000F1983"},
	{Spelling: "kokosila", Glyph: "\U000F1984"},
	{Spelling: "lanpan", Glyph: "\U000F1985"},
	{Spelling: "n", Glyph: "\U000F1986"},
	{Spelling: "misikeke", Glyph: "\U000F1987"},
	{Spelling: "ku", Glyph: "\U000F1988"},
	{Spelling: "pake", Glyph: "\U000F19A0"},
	{Spelling: "apeja", Glyph: "\U000F19A1"},
	{Spelling: "majuna", Glyph: "\U000F19A2"},
	{Spelling: "powe", Glyph: "\U000F19A3"},
}

var sitelenPuncts = map[rune]rune{
	'[': '\U000F1990',
	']': '\U000F1991',
	'^': '\U000F1995',
	'*': '\U000F1996',
	'(': '\U000F1997',
	')': '\U000F1998',
	'{': '\U000F199A',
	'}': '\U000F199B',
	'.': '\U000F199C',
	':': '\U000F199D',
	'<': '\u300C',
	'>': '\u300D',
	'-': '\u200D',
	' ': '\u3000',
}

const (
	sitelenAla     = "\U000F1902"
	sitelenAwen    = "\U000F1908"
	sitelenKen     = "\U000F1918"
	sitelenKepeken = "\U000F1919"
	sitelenLon     = "\U000F192C"
	sitelenPi      = "\U000F194D"
	sitelenTawa    = "\U000F1969"

	sitelenLongStart    = "\U000F1997"
	sitelenLongEnd      = "\U000F1998"
	sitelenReverseStart = "\U000F199A"
	sitelenReverseEnd   = "\U000F199B"
)

var sitelenConventions = domain.Conventions{
	Wrappable: []string{sitelenAwen, sitelenKen, sitelenKepeken, sitelenLon, sitelenPi, sitelenTawa},
	Negation:  sitelenAla,
	Markers: domain.Markers{
		WrapStart: sitelenLongStart,
		WrapEnd:   sitelenLongEnd,
		NegStart:  sitelenReverseStart,
		NegEnd:    sitelenReverseEnd,
	},
}
