package game

// Messages holds the user-facing strings for one display language.
type Messages struct {
	Mines      string
	Time       string
	Won        string
	Lost       string
	Help       string
	Difficulty map[string]string
}

var messages = map[string]Messages{
	"en": {
		Mines: "Mines",
		Time:  "Time",
		Won:   "You win!",
		Lost:  "Boom! Game over.",
		Help:  "Enter/click: reveal  f/right-click: flag  n: new game  1-3: difficulty  q: quit",
		Difficulty: map[string]string{
			"beginner":     "Beginner",
			"intermediate": "Intermediate",
			"expert":       "Expert",
		},
	},
	"es": {
		Mines: "Minas",
		Time:  "Tiempo",
		Won:   "¡Has ganado!",
		Lost:  "¡Bum! Fin del juego.",
		Help:  "Intro/clic: descubrir  f/clic derecho: bandera  n: nueva partida  1-3: dificultad  q: salir",
		Difficulty: map[string]string{
			"beginner":     "Principiante",
			"intermediate": "Intermedio",
			"expert":       "Experto",
		},
	},
}

// MessagesFor falls back to English for unknown languages.
func MessagesFor(lang string) Messages {
	if m, ok := messages[lang]; ok {
		return m
	}
	return messages["en"]
}

func (m Messages) difficulty(name string) string {
	if label, ok := m.Difficulty[name]; ok {
		return label
	}
	return name
}
