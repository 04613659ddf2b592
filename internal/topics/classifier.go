package topics

import "strings"

// Category labels a query for analytics.
type Category string

const (
	CategoryPTO          Category = "PTO & Leave"
	CategoryHealth       Category = "Health Benefits"
	CategoryITSecurity   Category = "IT Security"
	CategoryHandbook     Category = "Employee Handbook"
	CategoryOrganization Category = "Organization"
	CategoryAIUsage      Category = "AI Usage"
	CategoryGeneral      Category = "General"
)

type classifierRule struct {
	category Category
	keywords []string
}

// Classification rules are evaluated in order; the first match wins, so a
// query hitting multiple buckets lands in the earliest one.
var classifierRules = []classifierRule{
	{CategoryPTO, []string{"pto", "vacation", "time off", "leave", "holiday"}},
	{CategoryHealth, []string{"health", "medical", "benefits", "insurance", "dental"}},
	{CategoryITSecurity, []string{"security", "password", "it policy", "vpn", "network"}},
	{CategoryHandbook, []string{"handbook", "policy", "employee", "work hours", "dress code"}},
	{CategoryOrganization, []string{"org", "organization", "structure", "contact", "email", "phone"}},
	{CategoryAIUsage, []string{"claude", "ai", "usage", "policy"}},
}

// Classify assigns a query to its analytics category.
func Classify(query string) Category {
	queryLower := strings.ToLower(query)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(queryLower, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
