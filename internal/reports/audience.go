package reports

import "bizhealth-backend/internal/taxonomy"

// OwnerPrimaryCategories is the ordered category subset the owner report
// prioritizes in decisions, roadmap selection, and deep-dive sections. Order
// matters: the decision scan walks it front to back.
var OwnerPrimaryCategories = []string{
	taxonomy.CategoryStrategy,
	taxonomy.CategoryFinancials,
	taxonomy.CategorySales,
	taxonomy.CategoryOperations,
	taxonomy.CategoryRisk,
}

// OwnerAudienceLabel names the audience in prompts and report copy.
const OwnerAudienceLabel = "business owner"

// defaultCompanyName is substituted when the profile omits a display name.
const defaultCompanyName = "Your Business"
