package data

// SampleBook returns the built-in book used to seed an empty library so
// the reader has something to open on first launch.
func SampleBook() (*Book, []*Chapter) {
	book := &Book{
		ID:     "sample-walking-guide",
		Title:  "A Short Walk",
		Author: "folio",
	}

	chapters := []*Chapter{
		{
			BookID: book.ID,
			Index:  0,
			Title:  "Leaving the House",
			Paragraphs: []string{
				"The door closed behind me with the small, satisfied click of a decision already made. The street was empty except for a cat inspecting a parked bicycle.",
				"Walking, I have found, is mostly a matter of continuing. The first hundred steps argue with you. The rest simply happen.",
				"At the corner I turned left, for no reason that would survive questioning.",
			},
		},
		{
			BookID: book.ID,
			Index:  1,
			Title:  "The Park",
			Paragraphs: []string{
				"The park keeps its own hours. Whatever time you arrive, it gives the impression you have just missed something interesting.",
				"An old man fed pigeons with the concentration of a chess player. The pigeons, for their part, treated the bread as both obvious and miraculous.",
				"I sat on a bench long enough to stop counting minutes, then got up before the bench could claim me permanently.",
			},
		},
		{
			BookID: book.ID,
			Index:  2,
			Title:  "Coming Home",
			Paragraphs: []string{
				"The way back is never the same distance as the way out. Houses I had not noticed leaving now insisted on being seen.",
				"By the last street the sky had gone the color of weak tea, and the windows were lighting up one by one, each a small announcement that the day was ending on schedule.",
				"The door opened with the same click. A walk, like a book, is improved by knowing where it ends.",
			},
		},
	}

	return book, chapters
}
