package taxonomy

// scaleFive is the standard five-point agreement scale used by scale questions.
var scaleFive = []string{"Not at all", "Rarely", "Sometimes", "Mostly", "Consistently"}

// catalog is the fixed 45-question assessment. Order matters: questions are
// grouped by chapter and category, and Number follows catalog position.
var catalog = []Question{
	// Direction / Strategy & Planning
	{
		ID: "LQ001", Number: 1,
		Text:         "The business has a written strategic plan covering the next 12-36 months.",
		Category:     CategoryStrategy, Chapter: ChapterDirection,
		ResponseType: ResponseScale, Weight: 1.8, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ002", Number: 2,
		Text:         "What percentage of your revenue comes from your top three customers?",
		Category:     CategoryStrategy, Chapter: ChapterDirection,
		ResponseType: ResponsePercentage, Weight: 1.5, Benchmarkable: true,
		FollowUp:     "Which customers, and how long have they been with you?",
	},
	{
		ID: "LQ003", Number: 3,
		Text:         "Progress against strategic goals is reviewed on a fixed cadence.",
		Category:     CategoryStrategy, Chapter: ChapterDirection,
		ResponseType: ResponseScale, Weight: 1.4, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ004", Number: 4,
		Text:         "Describe your competitive advantage in one or two sentences.",
		Category:     CategoryStrategy, Chapter: ChapterDirection,
		ResponseType: ResponseText, Weight: 1.0, Benchmarkable: false,
	},

	// Direction / Leadership & Governance
	{
		ID: "LQ005", Number: 5,
		Text:         "The business can run for four weeks without the owner being involved day to day.",
		Category:     CategoryLeadership, Chapter: ChapterDirection,
		ResponseType: ResponseScale, Weight: 2.0, Benchmarkable: true,
		ScaleLabels:  scaleFive,
		FollowUp:     "What breaks first when the owner steps away?",
	},
	{
		ID: "LQ006", Number: 6,
		Text:         "How many people are on your leadership team, excluding the owner?",
		Category:     CategoryLeadership, Chapter: ChapterDirection,
		ResponseType: ResponseCount, Weight: 1.2, Benchmarkable: true,
	},
	{
		ID: "LQ007", Number: 7,
		Text:         "Decision-making authority is documented and delegated below owner level.",
		Category:     CategoryLeadership, Chapter: ChapterDirection,
		ResponseType: ResponseScale, Weight: 1.6, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ008", Number: 8,
		Text:         "There is a documented succession or exit plan for the business.",
		Category:     CategoryLeadership, Chapter: ChapterDirection,
		ResponseType: ResponseBoolean, Weight: 1.3, Benchmarkable: false,
	},

	// Direction / Innovation
	{
		ID: "LQ009", Number: 9,
		Text:         "New products or services have been launched in the last 24 months.",
		Category:     CategoryInnovation, Chapter: ChapterDirection,
		ResponseType: ResponseBoolean, Weight: 1.1, Benchmarkable: true,
	},
	{
		ID: "LQ010", Number: 10,
		Text:         "What percentage of revenue comes from offerings introduced in the last three years?",
		Category:     CategoryInnovation, Chapter: ChapterDirection,
		ResponseType: ResponsePercentage, Weight: 1.2, Benchmarkable: true,
	},
	{
		ID: "LQ011", Number: 11,
		Text:         "Ideas from staff and customers are captured and reviewed systematically.",
		Category:     CategoryInnovation, Chapter: ChapterDirection,
		ResponseType: ResponseScale, Weight: 0.9, Benchmarkable: false,
		ScaleLabels:  scaleFive,
	},

	// Go To Market / Marketing
	{
		ID: "LQ012", Number: 12,
		Text:         "The business has a documented marketing plan with a defined budget.",
		Category:     CategoryMarketing, Chapter: ChapterGoToMarket,
		ResponseType: ResponseScale, Weight: 1.4, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ013", Number: 13,
		Text:         "Which marketing channels do you actively invest in?",
		Category:     CategoryMarketing, Chapter: ChapterGoToMarket,
		ResponseType: ResponseMultiSelect, Weight: 0.8, Benchmarkable: false,
	},
	{
		ID: "LQ014", Number: 14,
		Text:         "Cost of acquiring a new customer is known and tracked.",
		Category:     CategoryMarketing, Chapter: ChapterGoToMarket,
		ResponseType: ResponseScale, Weight: 1.5, Benchmarkable: true,
		ScaleLabels:  scaleFive,
		FollowUp:     "What is your current acquisition cost?",
	},
	{
		ID: "LQ015", Number: 15,
		Text:         "Share of leads generated by referrals versus paid channels.",
		Category:     CategoryMarketing, Chapter: ChapterGoToMarket,
		ResponseType: ResponseDerived, Weight: 1.0, Benchmarkable: true,
	},

	// Go To Market / Sales
	{
		ID: "LQ016", Number: 16,
		Text:         "There is a defined sales process that the team follows for every opportunity.",
		Category:     CategorySales, Chapter: ChapterGoToMarket,
		ResponseType: ResponseScale, Weight: 1.7, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ017", Number: 17,
		Text:         "What was your revenue over the last twelve months?",
		Category:     CategorySales, Chapter: ChapterGoToMarket,
		ResponseType: ResponseCurrency, Weight: 1.3, Benchmarkable: true,
	},
	{
		ID: "LQ018", Number: 18,
		Text:         "What percentage of quotes or proposals convert to sales?",
		Category:     CategorySales, Chapter: ChapterGoToMarket,
		ResponseType: ResponsePercentage, Weight: 1.5, Benchmarkable: true,
	},
	{
		ID: "LQ019", Number: 19,
		Text:         "Sales results depend on the owner's personal relationships.",
		Category:     CategorySales, Chapter: ChapterGoToMarket,
		ResponseType: ResponseScale, Weight: 1.6, Benchmarkable: false,
		ScaleLabels:  scaleFive,
		FollowUp:     "Which accounts would be at risk if the owner stepped back?",
	},

	// Go To Market / Customer Experience
	{
		ID: "LQ020", Number: 20,
		Text:         "Customer satisfaction is measured on a regular schedule.",
		Category:     CategoryCustomer, Chapter: ChapterGoToMarket,
		ResponseType: ResponseScale, Weight: 1.4, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ021", Number: 21,
		Text:         "What percentage of customers made a repeat purchase in the last year?",
		Category:     CategoryCustomer, Chapter: ChapterGoToMarket,
		ResponseType: ResponsePercentage, Weight: 1.5, Benchmarkable: true,
	},
	{
		ID: "LQ022", Number: 22,
		Text:         "Complaints are logged, tracked, and resolved against a target turnaround.",
		Category:     CategoryCustomer, Chapter: ChapterGoToMarket,
		ResponseType: ResponseScale, Weight: 1.1, Benchmarkable: false,
		ScaleLabels:  scaleFive,
	},

	// Engine Room / Operations
	{
		ID: "LQ023", Number: 23,
		Text:         "Core processes are documented well enough for a new hire to follow them.",
		Category:     CategoryOperations, Chapter: ChapterEngine,
		ResponseType: ResponseScale, Weight: 1.8, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ024", Number: 24,
		Text:         "What percentage of jobs or orders are delivered on time and in full?",
		Category:     CategoryOperations, Chapter: ChapterEngine,
		ResponseType: ResponsePercentage, Weight: 1.6, Benchmarkable: true,
	},
	{
		ID: "LQ025", Number: 25,
		Text:         "Key supplier relationships have documented backup alternatives.",
		Category:     CategoryOperations, Chapter: ChapterEngine,
		ResponseType: ResponseScale, Weight: 1.2, Benchmarkable: false,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ026", Number: 26,
		Text:         "How many distinct handoffs does your most common job pass through?",
		Category:     CategoryOperations, Chapter: ChapterEngine,
		ResponseType: ResponseCount, Weight: 0.8, Benchmarkable: false,
	},

	// Engine Room / Technology & Systems
	{
		ID: "LQ027", Number: 27,
		Text:         "Business data lives in systems, not in individual spreadsheets or heads.",
		Category:     CategoryTechnology, Chapter: ChapterEngine,
		ResponseType: ResponseScale, Weight: 1.5, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ028", Number: 28,
		Text:         "Critical systems are backed up and a restore has been tested in the last year.",
		Category:     CategoryTechnology, Chapter: ChapterEngine,
		ResponseType: ResponseBoolean, Weight: 1.7, Benchmarkable: true,
	},
	{
		ID: "LQ029", Number: 29,
		Text:         "Which business functions run on dedicated software today?",
		Category:     CategoryTechnology, Chapter: ChapterEngine,
		ResponseType: ResponseMultiSelect, Weight: 0.9, Benchmarkable: false,
	},
	{
		ID: "LQ030", Number: 30,
		Text:         "Repetitive administrative work is automated where practical.",
		Category:     CategoryTechnology, Chapter: ChapterEngine,
		ResponseType: ResponseScale, Weight: 1.1, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},

	// Engine Room / People & Culture
	{
		ID: "LQ031", Number: 31,
		Text:         "Every role has a written description with clear accountabilities.",
		Category:     CategoryPeople, Chapter: ChapterEngine,
		ResponseType: ResponseScale, Weight: 1.3, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ032", Number: 32,
		Text:         "What was staff turnover over the last twelve months, as a percentage?",
		Category:     CategoryPeople, Chapter: ChapterEngine,
		ResponseType: ResponsePercentage, Weight: 1.4, Benchmarkable: true,
	},
	{
		ID: "LQ033", Number: 33,
		Text:         "Team members receive structured feedback at least twice a year.",
		Category:     CategoryPeople, Chapter: ChapterEngine,
		ResponseType: ResponseScale, Weight: 1.0, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ034", Number: 34,
		Text:         "The business could fill its most critical role within three months if it became vacant.",
		Category:     CategoryPeople, Chapter: ChapterEngine,
		ResponseType: ResponseScale, Weight: 1.5, Benchmarkable: false,
		ScaleLabels:  scaleFive,
		FollowUp:     "Which role is hardest to replace, and why?",
	},

	// Resilience / Financials
	{
		ID: "LQ035", Number: 35,
		Text:         "Monthly financial statements are produced within two weeks of month end.",
		Category:     CategoryFinancials, Chapter: ChapterResilience,
		ResponseType: ResponseScale, Weight: 1.8, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ036", Number: 36,
		Text:         "How many months of operating expenses could the business cover from cash reserves?",
		Category:     CategoryFinancials, Chapter: ChapterResilience,
		ResponseType: ResponseCount, Weight: 2.0, Benchmarkable: true,
		FollowUp:     "What is the plan if a major receivable slips 60 days?",
	},
	{
		ID: "LQ037", Number: 37,
		Text:         "What is your gross margin on your main product or service line?",
		Category:     CategoryFinancials, Chapter: ChapterResilience,
		ResponseType: ResponsePercentage, Weight: 1.7, Benchmarkable: true,
	},
	{
		ID: "LQ038", Number: 38,
		Text:         "A cash-flow forecast is maintained and reviewed at least monthly.",
		Category:     CategoryFinancials, Chapter: ChapterResilience,
		ResponseType: ResponseScale, Weight: 1.9, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},

	// Resilience / Risk Management
	{
		ID: "LQ039", Number: 39,
		Text:         "The top five risks to the business are written down with mitigation owners.",
		Category:     CategoryRisk, Chapter: ChapterResilience,
		ResponseType: ResponseScale, Weight: 1.6, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ040", Number: 40,
		Text:         "Insurance coverage has been reviewed against current operations in the last year.",
		Category:     CategoryRisk, Chapter: ChapterResilience,
		ResponseType: ResponseBoolean, Weight: 1.2, Benchmarkable: true,
	},
	{
		ID: "LQ041", Number: 41,
		Text:         "Revenue concentration risk, derived from customer and channel mix.",
		Category:     CategoryRisk, Chapter: ChapterResilience,
		ResponseType: ResponseDerived, Weight: 1.5, Benchmarkable: true,
	},
	{
		ID: "LQ042", Number: 42,
		Text:         "There is a tested plan for business interruption (site loss, key system outage).",
		Category:     CategoryRisk, Chapter: ChapterResilience,
		ResponseType: ResponseScale, Weight: 1.3, Benchmarkable: false,
		ScaleLabels:  scaleFive,
	},

	// Resilience / Compliance & Legal
	{
		ID: "LQ043", Number: 43,
		Text:         "Licences, registrations, and statutory filings are current and tracked.",
		Category:     CategoryCompliance, Chapter: ChapterResilience,
		ResponseType: ResponseScale, Weight: 1.4, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ044", Number: 44,
		Text:         "Key customer and supplier relationships are covered by written contracts.",
		Category:     CategoryCompliance, Chapter: ChapterResilience,
		ResponseType: ResponseScale, Weight: 1.2, Benchmarkable: false,
		ScaleLabels:  scaleFive,
	},
	{
		ID: "LQ045", Number: 45,
		Text:         "Employment agreements and workplace policies meet current regulations.",
		Category:     CategoryCompliance, Chapter: ChapterResilience,
		ResponseType: ResponseScale, Weight: 1.3, Benchmarkable: true,
		ScaleLabels:  scaleFive,
	},
}
