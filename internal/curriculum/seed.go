package curriculum

func init() {
	c, err := New(seedModules())
	if err != nil {
		panic("invalid seed curriculum: " + err.Error())
	}
	defaultCatalog = c
}

// seedModules returns the built-in guitar curriculum. Lesson order
// within and across modules is the dependency order; checkpoints are
// the practice lessons an admin must validate before the student can
// move past them.
func seedModules() []Module {
	return []Module{
		{
			ID:             "foundations",
			Title:          "Foundations",
			EstimatedWeeks: 2,
			Lessons: []Lesson{
				{
					ID:           "holding-the-guitar",
					Title:        "Holding the Guitar",
					Type:         TypeStandard,
					Difficulty:   1,
					DurationMins: 10,
					Content: "Sit with the waist of the guitar on your right thigh.\n" +
						"Keep the neck angled slightly upward and your back straight.\n" +
						"The fretting thumb rests behind the neck, roughly opposite your middle finger.",
				},
				{
					ID:           "tuning-basics",
					Title:        "Tuning: Standard EADGBE",
					Type:         TypeStandard,
					Difficulty:   1,
					DurationMins: 15,
					Content: "Learn the open string names from low to high: E A D G B E.\n" +
						"Tune with a clip-on tuner first; later, practice tuning the B string\n" +
						"against the 4th fret of the G string.",
				},
				{
					ID:                 "first-frets",
					Title:              "Fretting Hand Basics",
					Type:               TypePractice,
					ValidationRequired: true,
					Difficulty:         2,
					DurationMins:       20,
					Content: "Press just behind the fret wire with the fingertip.\n" +
						"Exercise: fret the 1st, 2nd and 3rd frets of the high E string\n" +
						"with fingers 1, 2 and 3. Every note should ring without buzzing.\n" +
						"Record yourself playing the exercise slowly and submit it.",
				},
			},
		},
		{
			ID:             "open-chords",
			Title:          "Open Chords",
			EstimatedWeeks: 4,
			Lessons: []Lesson{
				{
					ID:           "em-and-am",
					Title:        "E minor and A minor",
					Type:         TypeStandard,
					Difficulty:   2,
					DurationMins: 20,
					Content: "Em: fingers 2 and 3 on the 2nd fret of the A and D strings.\n" +
						"Am: add finger 1 on the 1st fret of the B string, shift down a string.\n" +
						"Strum all six strings for Em, five for Am.",
				},
				{
					ID:           "d-and-g",
					Title:        "D major and G major",
					Type:         TypeStandard,
					Difficulty:   2,
					DurationMins: 25,
					Content: "D major uses only the thinnest four strings.\n" +
						"G major stretches across all six; keep fingers arched so the\n" +
						"open B and G strings ring clearly.",
				},
				{
					ID:           "c-major",
					Title:        "C major and the Curl",
					Type:         TypeStandard,
					Difficulty:   3,
					DurationMins: 25,
					Content: "C major is the first chord where finger independence matters.\n" +
						"Avoid touching the open G string with finger 2; mute the low E.",
				},
				{
					ID:                 "chord-changes-1",
					Title:              "Checkpoint: One-Minute Changes",
					Type:               TypePractice,
					ValidationRequired: true,
					Difficulty:         3,
					DurationMins:       30,
					Content: "Pick two chords and switch between them as many times as you\n" +
						"can in one minute. Target: 30 clean changes for Em-Am, 20 for G-C.\n" +
						"Submit a recording of your best G-C minute.",
				},
			},
		},
		{
			ID:             "rhythm",
			Title:          "Strumming & Rhythm",
			EstimatedWeeks: 3,
			Lessons: []Lesson{
				{
					ID:           "down-strums",
					Title:        "Downstrums and Counting",
					Type:         TypeStandard,
					Difficulty:   2,
					DurationMins: 15,
					Content: "Strum quarter-note downstrums while counting 1-2-3-4 aloud.\n" +
						"Keep the wrist loose; the motion comes from the elbow and wrist together.",
				},
				{
					ID:           "updown-patterns",
					Title:        "The Universal Strumming Pattern",
					Type:         TypeStandard,
					Difficulty:   3,
					DurationMins: 25,
					Content: "D D-U _-U D-U: keep the hand moving down-up throughout and\n" +
						"miss the strings on the rests. Practice over a single Em chord first.",
				},
				{
					ID:                 "rhythm-checkpoint",
					Title:              "Checkpoint: Pattern Over Changes",
					Type:               TypePractice,
					ValidationRequired: true,
					Difficulty:         4,
					DurationMins:       30,
					Content: "Play the universal pattern over G-Em-C-D, one bar each,\n" +
						"four times through without stopping. Submit a recording at 70 bpm.",
				},
			},
		},
		{
			ID:             "barre",
			Title:          "Barre Chords",
			EstimatedWeeks: 5,
			Lessons: []Lesson{
				{
					ID:           "f-major-prep",
					Title:        "The Small F",
					Type:         TypeStandard,
					Difficulty:   3,
					DurationMins: 20,
					Content: "Start with the four-string F: barre the 1st fret of the E and B\n" +
						"strings with finger 1. Build pressure gradually; buzzing is normal at first.",
				},
				{
					ID:           "full-barre-f",
					Title:        "Full E-Shape Barre",
					Type:         TypeStandard,
					Difficulty:   4,
					DurationMins: 30,
					Content: "Barre all six strings at the 1st fret and form an E shape with\n" +
						"fingers 2-4. Roll finger 1 slightly onto its bony edge.",
				},
				{
					ID:                 "barre-checkpoint",
					Title:              "Checkpoint: Moving Barres",
					Type:               TypePractice,
					ValidationRequired: true,
					Difficulty:         5,
					DurationMins:       35,
					Content: "Play F-G-A as E-shape barres at frets 1, 3 and 5, one clean\n" +
						"strum each, then descend. Submit a recording with every string ringing.",
				},
			},
		},
		{
			ID:             "lead",
			Title:          "Scales & Lead",
			EstimatedWeeks: 6,
			Lessons: []Lesson{
				{
					ID:           "minor-pentatonic",
					Title:        "A Minor Pentatonic, Box 1",
					Type:         TypeStandard,
					Difficulty:   3,
					DurationMins: 25,
					Content: "Learn the five-fret box at the 5th position, ascending and\n" +
						"descending with strict alternate picking.",
				},
				{
					ID:           "first-licks",
					Title:        "Three Essential Licks",
					Type:         TypeStandard,
					Difficulty:   4,
					DurationMins: 30,
					Content: "Hammer-ons, pull-offs and the quarter-tone blues bend,\n" +
						"combined into three short phrases inside box 1.",
				},
				{
					ID:                 "lead-checkpoint",
					Title:              "Checkpoint: 12-Bar Solo",
					Type:               TypePractice,
					ValidationRequired: true,
					Difficulty:         5,
					DurationMins:       40,
					Content: "Improvise over a 12-bar blues backing track in A using box 1\n" +
						"and at least two of the three licks. Submit your best take.",
				},
			},
		},
	}
}
