package plan

// Default returns the built-in catalog for the three legal-practice
// tiers. Limits and feature sets mirror the published pricing page;
// prices are monthly, in euro cents.
func Default() Catalog {
	return MustCatalog(
		Plan{
			Tier:        TierBasic,
			Name:        "Basic",
			Description: "For small firms",
			Price:       Money{Amount: 2900, Currency: "EUR"},
			Limits: map[Resource]int64{
				ResourceCases:     10,
				ResourceClients:   25,
				ResourceDocuments: 50,
				ResourceUsers:     1,
			},
			Features: []Feature{
				FeatureBasicCaseManagement,
				FeatureBasicClientManagement,
				FeatureBasicCalendar,
				FeatureBasicDocuments,
				FeatureEmailSupport,
			},
		},
		Plan{
			Tier:        TierPremium,
			Name:        "Premium",
			Description: "For mid-size firms",
			Price:       Money{Amount: 7900, Currency: "EUR"},
			Limits: map[Resource]int64{
				ResourceCases:     500,
				ResourceClients:   1000,
				ResourceDocuments: 5000,
				ResourceUsers:     5,
			},
			Features: []Feature{
				FeatureBasicCaseManagement,
				FeatureBasicClientManagement,
				FeatureBasicCalendar,
				FeatureBasicDocuments,
				FeatureEmailSupport,
				FeatureAdvancedCaseManagement,
				FeatureAdvancedClientManagement,
				FeatureAdvancedCalendar,
				FeatureAdvancedDocuments,
				FeatureDocumentAutomation,
				FeatureWhatsAppNotifications,
				FeatureEmailNotifications,
				FeaturePrioritySupport,
				FeatureBillingManagement,
				FeatureAdvancedSearch,
				FeatureCaseTemplates,
				FeatureClientPortal,
				FeatureTimeTracking,
				FeatureInvoiceGeneration,
			},
		},
		Plan{
			Tier:        TierEnterprise,
			Name:        "Enterprise",
			Description: "For large firms",
			Price:       Money{Amount: 14900, Currency: "EUR"},
			Limits: map[Resource]int64{
				ResourceCases:     Unlimited,
				ResourceClients:   Unlimited,
				ResourceDocuments: Unlimited,
				ResourceUsers:     Unlimited,
			},
			Features: []Feature{
				FeatureBasicCaseManagement,
				FeatureBasicClientManagement,
				FeatureBasicCalendar,
				FeatureBasicDocuments,
				FeatureEmailSupport,
				FeatureAdvancedCaseManagement,
				FeatureAdvancedClientManagement,
				FeatureAdvancedCalendar,
				FeatureAdvancedDocuments,
				FeatureDocumentAutomation,
				FeatureWhatsAppNotifications,
				FeatureEmailNotifications,
				FeaturePrioritySupport,
				FeatureBillingManagement,
				FeatureAdvancedSearch,
				FeatureCaseTemplates,
				FeatureClientPortal,
				FeatureTimeTracking,
				FeatureInvoiceGeneration,
				FeatureMultiUserManagement,
				FeatureAdvancedReporting,
				FeatureAPIAccess,
				FeatureCustomIntegrations,
				FeatureDedicatedSupport,
				FeatureAdvancedSecurity,
				FeatureAuditLogs,
				FeatureWhiteLabeling,
				FeatureCustomWorkflows,
				FeatureBulkOperations,
				FeatureAdvancedAnalytics,
				FeatureComplianceTools,
			},
		},
	)
}
