package agent

// The four agents the API serves. Each registers its model, instruction, and
// callable tool surface; sub-agents contribute their tools to the parent's
// callback surface.

var ExpenseAgent = register(&Agent{
	Name:        "expense_agent",
	Model:       "gemini-2.0-flash",
	Description: "Tracks expenses and monthly budgets through conversation.",
	Instruction: expenseAgentInstruction,
	Tools: []Tool{
		{Name: "add_expense", Description: "Record a new expense with name, amount, date, and category.", Handler: addExpense},
		{Name: "get_all_expenses", Description: "List every recorded expense with the running total.", Handler: getAllExpenses},
		{Name: "get_expense_by_date", Description: "List expenses for a single date (YYYY-MM-DD).", Handler: getExpenseByDate},
		{Name: "get_expense_by_date_range", Description: "List expenses between two dates, inclusive.", Handler: getExpenseByDateRange},
		{Name: "get_expenses_by_category", Description: "List expenses in a category.", Handler: getExpensesByCategory},
		{Name: "get_all_categories", Description: "List the distinct expense categories in use.", Handler: getAllCategories},
		{Name: "update_expense", Description: "Update fields of an expense by its ID.", Handler: updateExpense},
		{Name: "delete_expense", Description: "Delete an expense by its ID.", Handler: deleteExpense},
		{Name: "add_budget", Description: "Set a budget amount for a month and year.", Handler: addBudget},
		{Name: "get_current_month_budget", Description: "Fetch the budget for the current month, if set.", Handler: getCurrentMonthBudget},
		{Name: "update_budget", Description: "Update fields of a budget by its ID.", Handler: updateBudget},
		{Name: "delete_budget", Description: "Delete a budget by its ID.", Handler: deleteBudget},
		{Name: "get_expense_summary", Description: "Summarize the current month: total, category sums, and budget.", Handler: getExpenseSummary},
	},
})

var spendingAnalyzer = &Agent{
	Name:        "spending_analyzer",
	Model:       "gemini-2.0-flash",
	Description: "Analyzes spending patterns and budget-vs-actual status.",
	Instruction: spendingAnalyzerInstruction,
	Tools: []Tool{
		{Name: "analyze_spending_patterns", Description: "Break down spending by category over a period and persist the pattern.", Handler: analyzeSpendingPatterns},
		{Name: "compare_budget_vs_actual", Description: "Compare a trip plan or monthly budget against recorded spending.", Handler: compareBudgetVsActual},
	},
}

var dealFinder = &Agent{
	Name:        "deal_finder",
	Model:       "gemini-2.0-flash",
	Description: "Finds, stores, and tracks travel deals.",
	Instruction: dealFinderInstruction,
	Tools: []Tool{
		{Name: "save_deal_alerts", Description: "Store a batch of deal alerts for a trip.", Handler: saveDealAlerts},
		{Name: "get_deal_alerts", Description: "List stored deal alerts, active ones by default.", Handler: getDealAlerts},
		{Name: "track_price_changes", Description: "Report a price drop against stored deals or start tracking a price.", Handler: trackPriceChanges},
	},
}

var budgetOptimizer = &Agent{
	Name:        "optimizer",
	Model:       "gemini-2.0-flash",
	Description: "Generates savings recommendations and trip budget plans.",
	Instruction: optimizerInstruction,
	Tools: []Tool{
		{Name: "suggest_optimizations", Description: "Generate savings recommendations from top spending categories.", Handler: suggestOptimizations},
		{Name: "create_budget_plan", Description: "Create a trip budget plan with destination, dates, and category splits.", Handler: createBudgetPlan},
		{Name: "get_budget_plans", Description: "List budget plans, optionally by trip or status.", Handler: getBudgetPlans},
	},
}

var recommender = &Agent{
	Name:        "recommender",
	Model:       "gemini-2.0-flash",
	Description: "Combines spending history, recommendations, and deals into advice.",
	Instruction: recommenderInstruction,
	Tools: []Tool{
		{Name: "get_personalized_recommendations", Description: "Join stored patterns, recommendations, and active deals.", Handler: getPersonalizedRecommendations},
		{Name: "predict_budget_needs", Description: "Forecast a trip budget from spending history and daily rates.", Handler: predictBudgetNeeds},
	},
}

var BudgetOptimizerAgent = register(&Agent{
	Name:        "budget_optimizer",
	Model:       "gemini-2.0-flash",
	Description: "Coordinates spending analysis, deal finding, optimization, and recommendations.",
	Instruction: budgetOptimizerInstruction,
	SubAgents:   []*Agent{spendingAnalyzer, dealFinder, budgetOptimizer, recommender},
})

var PackingAgent = register(&Agent{
	Name:        "packing_concierge",
	Model:       "gemini-2.0-flash",
	Description: "Weather-aware packing advice: outfits, efficiency, and cultural dress guidance.",
	Instruction: packingConciergeInstruction,
	Tools: []Tool{
		{Name: "get_itinerary_details", Description: "Project a saved itinerary down to destination, dates, and activities.", Handler: getItineraryDetails},
		{Name: "get_weather_forecast", Description: "Day-by-day weather outlook for the trip dates.", Handler: getWeatherForecastRange},
		{Name: "analyze_packing_efficiency", Description: "Score a packing list against the trip length.", Handler: analyzePackingEfficiency},
		{Name: "suggest_packing_optimizations", Description: "Suggest weight and space reductions for a packing list.", Handler: suggestPackingOptimizations},
		{Name: "get_cultural_guidelines", Description: "Dress-code and etiquette guidance for the destination.", Handler: getCulturalGuidelines},
		{Name: "create_daily_outfits", Description: "Plan a daily outfit for each day of the trip.", Handler: createDailyOutfits},
	},
})

var TravelAgent = register(&Agent{
	Name:        "travel_concierge",
	Model:       "gemini-2.0-flash",
	Description: "Plans trips: itinerary persistence, weather, traffic, and local customs.",
	Instruction: travelConciergeInstruction,
	Tools: []Tool{
		{Name: "save_itinerary", Description: "Save or merge the user's itinerary.", Handler: saveItinerary},
		{Name: "load_itinerary", Description: "Load the user's saved itinerary.", Handler: loadItinerary},
		{Name: "delete_itinerary", Description: "Delete the user's saved itinerary.", Handler: deleteItinerary},
		{Name: "get_weather_forecast", Description: "One-line weather outlook for the destination.", Handler: getWeatherForecast},
		{Name: "get_traffic_conditions", Description: "Traffic conditions between two locations.", Handler: getTrafficConditions},
		{Name: "get_local_customs", Description: "Local customs and dress-code advice for a destination.", Handler: getLocalCustoms},
	},
})
