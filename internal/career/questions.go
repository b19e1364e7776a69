package career

// QuestionOption is one selectable answer with its scoring weight.
type QuestionOption struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Question is one quiz question.
type Question struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Options  []QuestionOption `json:"options"`
}

// Questions returns the full ten-question quiz.
func Questions() []Question {
	return []Question{
		{
			ID:       "q1",
			Question: "When faced with a complex problem, what is your first instinct?",
			Options: []QuestionOption{
				{Text: "Break it down into smaller, logical steps and create a plan.", Value: 4},
				{Text: "Look for patterns and hidden connections in data.", Value: 5},
				{Text: "Think about potential security risks and how to defend against them.", Value: 3},
				{Text: "Visualize the final product and how a user will interact with it.", Value: 2},
			},
		},
		{
			ID:       "q2",
			Question: "Which of these projects sounds most exciting to you?",
			Options: []QuestionOption{
				{Text: "Designing a system that can predict stock market trends.", Value: 5},
				{Text: "Building a beautiful, interactive website for a new brand.", Value: 2},
				{Text: "Setting up a secure and efficient computer network for a company.", Value: 1},
				{Text: "Developing a reliable, scalable mobile banking application.", Value: 4},
			},
		},
		{
			ID:       "q3",
			Question: "How do you prefer to work?",
			Options: []QuestionOption{
				{Text: "In a structured environment, following a clear, agile plan.", Value: 4},
				{Text: "Experimenting with new ideas and iterating based on data.", Value: 5},
				{Text: "Methodically, with high attention to detail and security protocols.", Value: 3},
				{Text: "Collaboratively, connecting different systems and services together.", Value: 1},
			},
		},
		{
			ID:       "q4",
			Question: "What aspect of technology are you most curious about?",
			Options: []QuestionOption{
				{Text: "How large systems like Netflix handle massive global traffic.", Value: 1},
				{Text: "How to find and fix vulnerabilities before malicious hackers do.", Value: 3},
				{Text: "How to make computers think, see, and learn like humans.", Value: 5},
				{Text: "How to create seamless and delightful user experiences on the web.", Value: 2},
			},
		},
		{
			ID:       "q5",
			Question: "When learning something new, you are most interested in:",
			Options: []QuestionOption{
				{Text: "The underlying theory and abstract mathematical concepts.", Value: 5},
				{Text: "The practical application and building something tangible.", Value: 4},
				{Text: "The big picture and how all the components fit together at scale.", Value: 1},
				{Text: "The established best practices and security standards.", Value: 3},
			},
		},
		{
			ID:       "q6",
			Question: "What kind of tasks do you find most satisfying?",
			Options: []QuestionOption{
				{Text: "Solving a complex logical puzzle or algorithm.", Value: 4},
				{Text: "Finding a critical flaw in a system's defense.", Value: 3},
				{Text: "Automating a repetitive process to make it more efficient.", Value: 1},
				{Text: "Cleaning and interpreting a large, messy dataset to find a story.", Value: 5},
			},
		},
		{
			ID:       "q7",
			Question: "Which work environment appeals to you most?",
			Options: []QuestionOption{
				{Text: "A fast-paced startup, building a new product from the ground up.", Value: 2},
				{Text: "A large tech company, working on scalable, mission-critical systems.", Value: 4},
				{Text: "A government agency or financial institution focused on defense.", Value: 3},
				{Text: "A research lab, pushing the boundaries of what's possible.", Value: 5},
			},
		},
		{
			ID:       "q8",
			Question: "How do you feel about routine and maintenance tasks?",
			Options: []QuestionOption{
				{Text: "I enjoy them; ensuring a system is stable and secure is crucial.", Value: 3},
				{Text: "They are necessary, but I prefer to automate them away.", Value: 1},
				{Text: "I prefer focusing on building new features and functionalities.", Value: 2},
				{Text: "I'd rather be exploring new data and models.", Value: 5},
			},
		},
		{
			ID:       "q9",
			Question: "When a system goes down, what's your immediate reaction?",
			Options: []QuestionOption{
				{Text: "Trace the network path to see where the connection is failing.", Value: 1},
				{Text: "Check logs for unauthorized access or suspicious activity.", Value: 3},
				{Text: "Analyze the code and recent deployments to find the bug.", Value: 4},
				{Text: "Review the data pipeline for any corrupted inputs.", Value: 5},
			},
		},
		{
			ID:       "q10",
			Question: "What is your long-term career goal?",
			Options: []QuestionOption{
				{Text: "To design and architect large, resilient software systems.", Value: 4},
				{Text: "To create beautiful and highly functional web applications.", Value: 2},
				{Text: "To become a leading expert in protecting digital assets.", Value: 3},
				{Text: "To build intelligent systems that solve major world problems.", Value: 5},
			},
		},
	}
}

// QuickQuestions returns the abridged three-question variant.
func QuickQuestions() []Question {
	all := Questions()
	return []Question{all[0], all[1], all[3]}
}
