package locale

var english = Strings{
	Weekdays: [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
	Months: [12]string{
		"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
		"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
	},
	EventsHeader: "EVENTS",
	TodosHeader:  "TASKS",
	NoEvents:     "No events today",
	NoTodos:      "No tasks",
	AllDay:       "all day",
}

var polish = Strings{
	Weekdays: [7]string{"NDZ", "PON", "WTO", "ŚRO", "CZW", "PIĄ", "SOB"},
	Months: [12]string{
		"STY", "LUT", "MAR", "KWI", "MAJ", "CZE",
		"LIP", "SIE", "WRZ", "PAŹ", "LIS", "GRU",
	},
	EventsHeader: "WYDARZENIA",
	TodosHeader:  "ZADANIA",
	NoEvents:     "Brak wydarzeń",
	NoTodos:      "Brak zadań",
	AllDay:       "cały dzień",
}

var german = Strings{
	Weekdays: [7]string{"SON", "MON", "DIE", "MIT", "DON", "FRE", "SAM"},
	Months: [12]string{
		"JAN", "FEB", "MAR", "APR", "MAI", "JUN",
		"JUL", "AUG", "SEP", "OKT", "NOV", "DEZ",
	},
	EventsHeader: "TERMINE",
	TodosHeader:  "AUFGABEN",
	NoEvents:     "Keine Termine",
	NoTodos:      "Keine Aufgaben",
	AllDay:       "ganztägig",
}
