package slide

import "fmt"

func text(s string) *string { return &s }

// quizCategories are the column headings of the board slide
var quizCategories = []string{"Movies", "Music", "Science", "History", "Riddles"}

var quizTiers = []int{100, 200, 300, 400, 500}

// DefaultDeck returns the built-in show. Slide ids are index+1.
// Layout: program 0-16, board 17, questions 18-42, post-quiz 43, credits 44.
func DefaultDeck() Deck {
	deck := Deck{
		{Kind: KindTitle, Title: "New Year Gala 2026", Content: []string{"Class 1, Grade 10", "Welcome, everyone!"}},
		{Kind: KindContent, Title: "Opening Remarks", Subtitle: text("Our hosts"), Content: []string{"A year of growing up together", "Tonight we celebrate all of it"}},
		{Kind: KindList, Title: "Tonight's Program", Content: []string{"Songs and dances", "Comedy sketch", "Quiz round", "Lucky draw", "Closing"}},
		{Kind: KindTopLeft, Title: "Act 1: Chorus", Content: []string{"\"Auld Lang Syne\"", "Performed by the whole class"}},
		{Kind: KindContent, Title: "Act 2: Dance", Content: []string{"Street dance crew", "Choreography by the dance club"}},
		{Kind: KindTopLeft, Title: "Act 3: Comedy Sketch", Content: []string{"\"The Last Bus Home\"", "Written and performed by the drama group"}},
		{Kind: KindSoup, Title: "Game: Turtle Soup", Content: []string{"A man orders turtle soup, takes one sip, and leaves in tears.", "Ask yes or no questions to find out why."}},
		{Kind: KindSoup, Title: "Turtle Soup: the Answer", Content: []string{"Only yes or no answers from the host", "Five minutes on the clock"}},
		{Kind: KindContent, Title: "Act 4: Solo", Content: []string{"Guitar and vocals", "An original song"}},
		{Kind: KindTopLeft, Title: "Act 5: Magic", Content: []string{"Card tricks up close", "Volunteers welcome"}},
		{Kind: KindList, Title: "Lucky Draw Rules", Content: []string{"Keep your ticket stub", "Three rounds of prizes", "Winners come to the stage"}},
		{Kind: KindContent, Title: "Lucky Draw: Round 1", Content: []string{"Third prize", "Five winners"}},
		{Kind: KindContent, Title: "Act 6: Recitation", Content: []string{"Poems for the new year", "Read by the literature club"}},
		{Kind: KindTopLeft, Title: "Act 7: Band", Content: []string{"Three songs", "Sing along if you know the words"}},
		{Kind: KindContent, Title: "Lucky Draw: Round 2", Content: []string{"Second prize", "Three winners"}},
		{Kind: KindList, Title: "Quiz Round Rules", Content: []string{"Teams pick a category and a value", "Hint first, then the answer", "Highest score wins"}},
		{Kind: KindTitle, Title: "Quiz Time!", Content: []string{"Teams, get ready"}},
		{Kind: KindBoard, Title: "Quiz Board", Content: append([]string(nil), quizCategories...)},
	}

	for _, category := range quizCategories {
		for _, tier := range quizTiers {
			deck = append(deck, Record{
				Kind:    KindContent,
				Title:   fmt.Sprintf("%s for %d", category, tier),
				Content: []string{"Question goes here", "Answer goes here"},
			})
		}
	}

	deck = append(deck,
		Record{Kind: KindContent, Title: "Lucky Draw: Grand Prize", Content: []string{"First prize", "One winner"}},
		Record{Kind: KindCredits, Title: "Thank You", Content: []string{
			"Acknowledgements",
			"Our head teacher",
			"Everyone who helped backstage",
			"",
			"Cast list",
			"Hosts",
			"Performers",
			"Quiz masters",
		}},
	)

	for i := range deck {
		deck[i].ID = i + 1
	}
	return deck
}
