package main

var bank = []seedCategory{
	{
		Type: "Science",
		Questions: []seedQuestion{
			{"What is the heaviest organ in the human body?", "The Liver", 4},
			{"Who discovered penicillin?", "Alexander Fleming", 3},
			{"Hematology is a branch of medicine involving the study of what?", "Blood", 4},
		},
	},
	{
		Type: "Art",
		Questions: []seedQuestion{
			{"Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", 1},
			{"La Giaconda is better known as what?", "Mona Lisa", 3},
			{"How many paintings did Van Gogh sell in his lifetime?", "One", 4},
		},
	},
	{
		Type: "Geography",
		Questions: []seedQuestion{
			{"What is the largest lake in Africa?", "Lake Victoria", 2},
			{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3},
			{"The Taj Mahal is located in which Indian city?", "Agra", 2},
		},
	},
	{
		Type: "History",
		Questions: []seedQuestion{
			{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 2},
			{"What boxer's original name is Cassius Clay?", "Muhammad Ali", 1},
			{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4},
		},
	},
	{
		Type: "Entertainment",
		Questions: []seedQuestion{
			{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 4},
			{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 4},
			{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", 3},
		},
	},
	{
		Type: "Sports",
		Questions: []seedQuestion{
			{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", 3},
			{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", 4},
		},
	},
}
