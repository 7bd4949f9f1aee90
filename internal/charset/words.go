package charset

// Word corpora for passphrase generation.

var englishWords = []string{
	"apple", "arrow", "badge", "beach", "brain", "bread", "brick", "bridge", "brush", "cable",
	"camel", "candy", "chair", "chalk", "charm", "chess", "chest", "child", "claim", "class",
	"clock", "cloud", "coach", "coast", "coral", "craft", "crane", "cream", "crown", "dance",
	"diary", "draft", "drain", "dream", "dress", "drink", "drive", "earth", "ember", "empty",
	"equal", "event", "faith", "feast", "fence", "field", "flame", "flash", "floor", "flower",
	"focus", "force", "frame", "frost", "fruit", "ghost", "glass", "globe", "grace", "grain",
	"grape", "grass", "green", "guard", "guide", "happy", "heart", "heavy", "horse", "house",
	"human", "image", "index", "inner", "input", "judge", "juice", "knife", "label", "lance",
	"laser", "layer", "learn", "lemon", "level", "light", "limit", "linen", "liver", "logic",
	"lunch", "magic", "major", "maker", "maple", "march", "match", "medal", "media", "melon",
	"metal", "meter", "minor", "model", "money", "month", "motor", "mount", "mouse", "music",
	"nerve", "night", "noble", "noise", "north", "nurse", "ocean", "offer", "olive", "opera",
	"orbit", "order", "organ", "other", "outer", "owner", "paint", "panel", "paper", "party",
	"pasta", "patch", "peace", "pearl", "phase", "phone", "photo", "piano", "piece", "pilot",
	"pitch", "place", "plain", "plane", "plant", "plate", "plaza", "point", "polar", "pound",
	"power", "press", "price", "pride", "prime", "print", "prize", "proof", "proud", "pulse",
	"punch", "queen", "quiet", "quote", "radar", "radio", "raise", "range", "rapid", "ratio",
	"reach", "ready", "realm", "rebel", "refer", "reign", "relax", "reply", "rider", "ridge",
	"right", "river", "robot", "rocky", "royal", "ruler", "rural", "salad", "scale", "scene",
	"scope", "score", "scout", "sense", "serve", "shade", "shake", "shape", "share", "shark",
	"sharp", "sheep", "shell", "shift", "shine", "shirt", "shock", "shore", "short", "sight",
	"sigma", "silly", "skill", "slate", "sleep", "slice", "slide", "slope", "smart", "smile",
	"smoke", "snake", "solar", "solid", "solve", "sonic", "sound", "south", "space", "spare",
	"spark", "speak", "speed", "spend", "spice", "spine", "spirit", "split", "sport", "spray",
	"squad", "stack", "staff", "stage", "stake", "stamp", "stand", "start", "state", "steam",
	"steel", "steep", "stick", "still", "stock", "stone", "store", "storm", "story", "stove",
	"strip", "study", "style", "sugar", "suite", "sunny", "super", "surge", "sweet", "swift",
	"swing", "sword", "table", "taste", "teach", "tempo", "theme", "think", "thorn", "tiger",
	"title", "toast", "today", "token", "tooth", "topic", "total", "touch", "tower", "trace",
	"track", "trade", "trail", "train", "trash", "treat", "trend", "trial", "tribe", "trick",
	"truck", "truly", "trump", "trunk", "trust", "truth", "tulip", "ultra", "uncle", "under",
	"union", "unity", "upper", "urban", "usual", "valid", "value", "vault", "verse", "video",
	"vigor", "viral", "virus", "visit", "vital", "vivid", "vocal", "voice", "watch", "water",
	"whale", "wheat", "wheel", "white", "whole", "width", "world", "worry", "worth", "wound",
	"wrist", "write", "wrong", "yacht", "young", "youth", "zebra", "zesty",
}

var germanWords = []string{
	"Ahorn", "Ampel", "Anker", "Apfel", "Arbeit", "Asche", "Bach", "Baum", "Berg", "Bild",
	"Blatt", "Blick", "Blitz", "Blume", "Boden", "Braut", "Brief", "Brise", "Brot", "Bruch",
	"Dach", "Dampf", "Degen", "Docht", "Drang", "Draht", "Dreck", "Druck", "Dunst", "Eiche",
	"Eimer", "Engel", "Ernte", "Faden", "Fahne", "Farbe", "Feder", "Feier", "Feind", "Feld",
	"Ferne", "Feuer", "Fisch", "Fleck", "Flucht", "Fluss", "Form", "Frost", "Fuchs", "Gabel",
	"Gasse", "Geist", "Glanz", "Glas", "Gleis", "Glied", "Gnade", "Gold", "Grube", "Grund",
	"Hafen", "Halle", "Hals", "Hammer", "Hand", "Harfe", "Hauch", "Haupt", "Haus", "Haut",
	"Hebel", "Hecke", "Heide", "Heim", "Held", "Hemd", "Herbst", "Herde", "Herz", "Hilfe",
	"Hirte", "Hobel", "Honig", "Hose", "Huhn", "Hund", "Insel", "Junge", "Kabel", "Kaffee",
	"Kampf", "Kanal", "Karte", "Kater", "Kegel", "Keller", "Kerze", "Kette", "Kind", "Kinn",
	"Kiste", "Klang", "Kleid", "Klotz", "Knabe", "Knochen", "Knopf", "Kohle", "Kopf", "Korb",
	"Kraft", "Kranz", "Kreis", "Kreuz", "Krone", "Kunst", "Kugel", "Lampe", "Lanze", "Laub",
	"Leben", "Leder", "Lehre", "Leier", "Licht", "Liebe", "Linie", "Liste", "Liter", "Loch",
	"Luft", "Macht", "Magen", "Markt", "Mauer", "Meile", "Meise", "Menge", "Milch", "Monat",
	"Motte", "Mund", "Musik", "Nagel", "Natur", "Nebel", "Neid", "Nerv", "Nest", "Netz",
	"Norden", "Nudel", "Ofen", "Osten", "Palme", "Pappe", "Paste", "Pfahl", "Pfand", "Pfeil",
	"Pflug", "Phase", "Platz", "Pokal", "Preis", "Prinz", "Probe", "Punkt", "Quelle", "Rache",
	"Rahmen", "Rand", "Rasen", "Ratte", "Rauch", "Raum", "Regal", "Regen", "Reich", "Reise",
	"Rinde", "Ring", "Rohr", "Rose", "Rumpf", "Sache", "Saft", "Salat", "Salz", "Sand",
	"Satz", "Schaf", "Schal", "Schatz", "Schein", "Schiff", "Schlaf", "Schloss", "Schnee", "Schrank",
	"Schuh", "Seele", "Segel", "Seide", "Seife", "Seil", "Seite", "Sicht", "Sieb", "Sitz",
	"Socke", "Sommer", "Sonne", "Sorge", "Spiel", "Spinne", "Stadt", "Stahl", "Stamm", "Stand",
	"Staub", "Steg", "Stein", "Stern", "Stich", "Stiel", "Stirn", "Stock", "Stoff", "Strand",
	"Stroh", "Stuck", "Stuhl", "Sturm", "Suche", "Sumpf", "Tafel", "Tal", "Tanne", "Tanz",
	"Tasche", "Tasse", "Taube", "Tee", "Teich", "Teil", "Teller", "Tier", "Tinte", "Tisch",
	"Titel", "Topf", "Traum", "Treue", "Tritt", "Tropf", "Truhe", "Tuch", "Turm", "Ufer",
	"Uhr", "Wald", "Wand", "Wange", "Ware", "Wasser", "Watte", "Wecker", "Wein", "Weise",
	"Welle", "Welt", "Werk", "Wert", "Wesen", "Weste", "Wiese", "Wille", "Wind", "Woche",
	"Wolke", "Wort", "Wunde", "Wurm", "Wurzel", "Zahl", "Zahn", "Zaun", "Zeile", "Zeit",
	"Zelle", "Ziege", "Ziel", "Zimmer", "Zinn", "Zopf", "Zucht", "Zucker", "Zunge", "Zweig",
}
