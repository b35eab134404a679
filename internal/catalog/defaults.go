package catalog

var defaultGeneric = []string{
	"abstract",
	"creative",
	"minimal workspace",
	"notebook desk",
	"city skyline",
	"nature landscape",
}

var defaultCategories = map[string][]string{
	"Technology": {
		"technology", "circuit board", "server room", "coding laptop",
		"futuristic interface", "robotics", "data center", "microchip",
	},
	"Business": {
		"business meeting", "office team", "startup workspace", "handshake",
		"financial charts", "corporate building", "presentation",
	},
	"Health": {
		"healthy food", "fitness training", "meditation", "doctor consultation",
		"running outdoors", "yoga", "fresh vegetables",
	},
	"Travel": {
		"travel destination", "mountain landscape", "beach sunset", "old town street",
		"backpacker", "airplane window", "road trip",
	},
	"Lifestyle": {
		"cozy home", "morning coffee", "reading book", "friends gathering",
		"minimal interior", "plants",
	},
	"Science": {
		"laboratory", "microscope", "space galaxy", "chemistry",
		"scientist research", "dna helix",
	},
	"Education": {
		"classroom", "students studying", "library books", "online learning",
		"graduation", "chalkboard",
	},
	"Food": {
		"gourmet dish", "cooking kitchen", "fresh bread", "restaurant table",
		"spices", "dessert",
	},
	"Finance": {
		"stock market", "coins savings", "calculator budget", "banking",
		"investment growth", "wallet",
	},
	"Sports": {
		"stadium", "football match", "athlete training", "tennis court",
		"basketball", "cycling race",
	},
}
