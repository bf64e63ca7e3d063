package plan

import "slices"

// Tier is a named subscription level. Tiers are ordered: comparing two
// tiers by their position in tierOrder decides upgrade/downgrade wording.
type Tier string

const (
	TierBasic      Tier = "basic"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// tierOrder defines the tier ordering used for change-direction wording.
var tierOrder = []Tier{TierBasic, TierPremium, TierEnterprise}

// Tiers returns all defined tiers in ascending order.
func Tiers() []Tier {
	return slices.Clone(tierOrder)
}

// Valid reports whether t is one of the defined tiers.
func (t Tier) Valid() bool {
	return slices.Contains(tierOrder, t)
}

// ParseTier converts a raw string into a Tier.
// Returns ErrUnknownTier for anything outside the closed set.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", ErrUnknownTier
	}
	return t, nil
}

// ChangeDirection describes how a target tier relates to the current one.
// It affects presentation wording only: the lifecycle manager processes
// any tier change identically.
type ChangeDirection int

const (
	DirectionCurrent ChangeDirection = iota
	DirectionUpgrade
	DirectionDowngrade
)

func (d ChangeDirection) String() string {
	switch d {
	case DirectionUpgrade:
		return "upgrade"
	case DirectionDowngrade:
		return "downgrade"
	default:
		return "current"
	}
}

// Direction compares target against current by tier ordering.
func Direction(current, target Tier) ChangeDirection {
	ci := slices.Index(tierOrder, current)
	ti := slices.Index(tierOrder, target)
	switch {
	case ti > ci:
		return DirectionUpgrade
	case ti < ci:
		return DirectionDowngrade
	default:
		return DirectionCurrent
	}
}

// Resource represents a countable tenant resource type.
type Resource string

const (
	ResourceCases     Resource = "cases"
	ResourceClients   Resource = "clients"
	ResourceDocuments Resource = "documents"
	ResourceUsers     Resource = "users"
)

const (
	// Unlimited indicates no limit for a resource (-1 chosen for SQL compatibility)
	Unlimited int64 = -1
)

// Feature represents a plan-specific capability that can be enabled/disabled.
type Feature string

const (
	FeatureBasicCaseManagement   Feature = "basic_case_management"
	FeatureBasicClientManagement Feature = "basic_client_management"
	FeatureBasicCalendar         Feature = "basic_calendar"
	FeatureBasicDocuments        Feature = "basic_documents"
	FeatureEmailSupport          Feature = "email_support"

	FeatureAdvancedCaseManagement   Feature = "advanced_case_management"
	FeatureAdvancedClientManagement Feature = "advanced_client_management"
	FeatureAdvancedCalendar         Feature = "advanced_calendar"
	FeatureAdvancedDocuments        Feature = "advanced_documents"
	FeatureDocumentAutomation       Feature = "document_automation"
	FeatureWhatsAppNotifications    Feature = "whatsapp_notifications"
	FeatureEmailNotifications       Feature = "email_notifications"
	FeaturePrioritySupport          Feature = "priority_support"
	FeatureBillingManagement        Feature = "billing_management"
	FeatureAdvancedSearch           Feature = "advanced_search"
	FeatureCaseTemplates            Feature = "case_templates"
	FeatureClientPortal             Feature = "client_portal"
	FeatureTimeTracking             Feature = "time_tracking"
	FeatureInvoiceGeneration        Feature = "invoice_generation"

	FeatureMultiUserManagement Feature = "multi_user_management"
	FeatureAdvancedReporting   Feature = "advanced_reporting"
	FeatureAPIAccess           Feature = "api_access"
	FeatureCustomIntegrations  Feature = "custom_integrations"
	FeatureDedicatedSupport    Feature = "dedicated_support"
	FeatureAdvancedSecurity    Feature = "advanced_security"
	FeatureAuditLogs           Feature = "audit_logs"
	FeatureWhiteLabeling       Feature = "white_labeling"
	FeatureCustomWorkflows     Feature = "custom_workflows"
	FeatureBulkOperations      Feature = "bulk_operations"
	FeatureAdvancedAnalytics   Feature = "advanced_analytics"
	FeatureComplianceTools     Feature = "compliance_tools"
)

// Money represents a monetary amount in the smallest currency unit.
// For example, 29.00 EUR would be Amount: 2900, Currency: "EUR".
type Money struct {
	Amount   int64  `json:"amount" yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
}
