package question

// seedEntry is one static catalog question before it is assigned an ID.
type seedEntry struct {
	Category   string
	Text       string
	OrderIndex int
}

// Catalog is the fixed survey: four categories of four questions each.
// Static configuration data, seeded once into the questions table.
var Catalog = []seedEntry{
	{
		Category:   CategoryPsychologicalSafety,
		Text:       "Do you feel it's safe for everybody to share their ideas in team meetings, without getting judged or interrupted?",
		OrderIndex: 1,
	},
	{
		Category:   CategoryPsychologicalSafety,
		Text:       "Do you feel like everybody's contribution is valued by the other team members?",
		OrderIndex: 2,
	},
	{
		Category:   CategoryPsychologicalSafety,
		Text:       "Do you feel like the team can show vulnerability in front of each other, e.g. show that they don't know something, or that they have changed your mind after reading up on a subject?",
		OrderIndex: 3,
	},
	{
		Category:   CategoryPsychologicalSafety,
		Text:       "Do you think that the team is capable of raising and settling differing opinions in a healthy way, without lingering bad feelings?",
		OrderIndex: 4,
	},
	{
		Category:   CategoryDependability,
		Text:       "Do you feel like the team has the skills, tools and resources (time, budget, staffing) required to do their job?",
		OrderIndex: 1,
	},
	{
		Category:   CategoryDependability,
		Text:       "Do you feel like the team can successfully commit to finish a certain amount of work for a certain deadline?",
		OrderIndex: 2,
	},
	{
		Category:   CategoryDependability,
		Text:       "Do you feel like the team can hold team members accountable if they don't do their job properly?",
		OrderIndex: 3,
	},
	{
		Category:   CategoryDependability,
		Text:       "Do you feel like the team has the necessary support from any stakeholders or outside actors you depend on?",
		OrderIndex: 4,
	},
	{
		Category:   CategoryStructureClarity,
		Text:       "Do you feel like you have a good understanding of the team's / project's vision and roadmap?",
		OrderIndex: 1,
	},
	{
		Category:   CategoryStructureClarity,
		Text:       "Do you feel like the team has clear, measurable KPIs or goals, and do you know what they are?",
		OrderIndex: 2,
	},
	{
		Category:   CategoryStructureClarity,
		Text:       "Do you feel like the roles and responsibilities in the team are clear enough to you?",
		OrderIndex: 3,
	},
	{
		Category:   CategoryStructureClarity,
		Text:       "Is there a prioritised 'backlog' or checklist of items to accomplish?",
		OrderIndex: 4,
	},
	{
		Category:   CategoryMeaningImpact,
		Text:       "Do you feel like working on this team can help you reach your professional or private goals?",
		OrderIndex: 1,
	},
	{
		Category:   CategoryMeaningImpact,
		Text:       "Do you feel like this team has set up goals that are useful for your organisation / client / end-users?",
		OrderIndex: 2,
	},
	{
		Category:   CategoryMeaningImpact,
		Text:       "Do you feel like your work is impacting the team positively?",
		OrderIndex: 3,
	},
	{
		Category:   CategoryMeaningImpact,
		Text:       "Do you feel like the team's work is impacting the organisation / client / end-users positively?",
		OrderIndex: 4,
	},
}
