package archive

// HistoricalEvents is the hand-authored milestone table for the Little Rock
// School Integration Crisis, keyed by 4-digit year. The table is total and
// unchanging across sessions; it is not editable through the CMS.
var HistoricalEvents = map[string][]HistoricalEvent{
	"1954": {
		{
			ID:           "h1",
			Date:         "May 17, 1954",
			Title:        "Brown v. Board of Education Decision",
			Category:     CategoryLegalMilestone,
			Description:  "Supreme Court declares segregated schools unconstitutional",
			Significance: "Landmark ruling that set the legal foundation for school integration",
			Icon:         "⚖️",
		},
	},
	"1955": {
		{
			ID:           "h2",
			Date:         "May 31, 1955",
			Title:        "Brown II Implementation Decision",
			Category:     CategoryLegalMilestone,
			Description:  "Supreme Court orders integration \"with all deliberate speed\"",
			Significance: "Established timeline for implementation but left room for delay",
			Icon:         "📋",
		},
	},
	"1957": {
		{
			ID:           "h9",
			Date:         "Spring 1957",
			Title:        "Little Rock Nine Students Selected",
			Category:     CategoryIntegrationAttempt,
			Description:  "Nine African American students chosen from applicants to integrate Central High School",
			Significance: "Families commit to placing their children at the center of a historic struggle",
			Icon:         "🎓",
		},
		{
			ID:           "h10",
			Date:         "August 1957",
			Title:        "Elizabeth Eckford Family Decision",
			Category:     CategoryFamilyExperience,
			Description:  "Elizabeth engages in \"major battle with her family\" over attending Central High School",
			Significance: "Reveals children's agency in family decision-making process",
			Icon:         "👨‍👩‍👧‍👦",
		},
		{
			ID:           "h11",
			Date:         "August 1957",
			Title:        "Thelma Mothershed Family Conference",
			Category:     CategoryFamilyExperience,
			Description:  "Family holds conference when Thelma wants to attend Central despite cardiac condition",
			Significance: "Multi-generational family decision-making process with health concerns",
			Icon:         "💬",
		},
		{
			ID:           "h3",
			Date:         "September 2, 1957",
			Title:        "Governor Faubus Calls National Guard",
			Category:     CategoryGovernmentResistance,
			Description:  "Arkansas Governor prevents integration of Central High School",
			Significance: "State resistance to federal integration orders",
			Icon:         "🛡️",
		},
		{
			ID:           "h4",
			Date:         "September 4, 1957",
			Title:        "Little Rock Nine Attempt Entry",
			Category:     CategoryIntegrationAttempt,
			Description:  "Nine children attempt to enter Central High School",
			Significance: "First major test of Brown v. Board implementation",
			Icon:         "🎒",
		},
		{
			ID:           "h12",
			Date:         "September 16, 1957",
			Title:        "Nine Students \"Marking Time\"",
			Category:     CategoryFamilyExperience,
			Description:  "Terrance Roberts helps mother care for six younger siblings during crisis",
			Significance: "Integration crisis reshapes family roles and responsibilities",
			Icon:         "👶",
		},
		{
			ID:           "h13",
			Date:         "September 20, 1957",
			Title:        "Federal Injunction Removes National Guard",
			Category:     CategoryFederalIntervention,
			Description:  "Federal judge orders removal of Arkansas National Guard",
			Significance: "Federal courts override state resistance but leave families without protection",
			Icon:         "⚖️",
		},
		{
			ID:           "h14",
			Date:         "September 23, 1957",
			Title:        "Mob Entry Attempt Fails",
			Category:     CategoryIntegrationAttempt,
			Description:  "Nine students evacuated after mob overwhelms police protection",
			Significance: "Families experience terror as children escape mob violence",
			Icon:         "🚨",
		},
		{
			ID:           "h5",
			Date:         "September 24, 1957",
			Title:        "Federal Troops Deployed",
			Category:     CategoryFederalIntervention,
			Description:  "President Eisenhower sends 1,000 paratroopers to Little Rock",
			Significance: "Federal government enforces integration by military force",
			Icon:         "🇺🇸",
		},
		{
			ID:           "h6",
			Date:         "September 25, 1957",
			Title:        "Little Rock Nine Enter School",
			Category:     CategoryIntegrationSuccess,
			Description:  "Nine students successfully enter Central High under federal protection",
			Significance: "Historic moment of successful school integration",
			Icon:         "🏫",
		},
	},
	"1958": {
		{
			ID:           "h15",
			Date:         "February 1958",
			Title:        "Minnie Jean Brown Expelled",
			Category:     CategoryIntegrationAttempt,
			Description:  "First of the Nine expelled from Central High School",
			Significance: "First family forced to withdraw child despite federal protection",
			Icon:         "📋",
		},
		{
			ID:           "h7",
			Date:         "September 1958",
			Title:        "Schools Closed by Governor",
			Category:     CategoryGovernmentResistance,
			Description:  "Faubus closes all Little Rock high schools for the year",
			Significance: "Massive resistance to integration continues",
			Icon:         "🔒",
		},
		{
			ID:           "h16",
			Date:         "1958-1959",
			Title:        "The Lost Year",
			Category:     CategoryGovernmentResistance,
			Description:  "Families seek alternative education as all high schools remain closed",
			Significance: "Massive educational disruption forces family relocations",
			Icon:         "🏫",
		},
	},
	"1959": {
		{
			ID:           "h8",
			Date:         "August 1959",
			Title:        "Schools Reopen",
			Category:     CategoryIntegrationSuccess,
			Description:  "Federal court orders reopening of Little Rock schools",
			Significance: "Integration resumes after year-long closure",
			Icon:         "🔓",
		},
	},
	"1960": {
		{
			ID:           "h17",
			Date:         "February 1960",
			Title:        "Carlotta Walls Family Home Bombed",
			Category:     CategoryIntegrationAttempt,
			Description:  "Walls family home bombed three months before graduation",
			Significance: "Families face extreme violence even as integration nears completion",
			Icon:         "💥",
		},
		{
			ID:           "h18",
			Date:         "May 1960",
			Title:        "Carlotta Walls Graduates",
			Category:     CategoryGraduation,
			Description:  "First black girl to receive diploma from Central High School",
			Significance: "Historic achievement despite enormous family cost",
			Icon:         "🎓",
		},
	},
}
