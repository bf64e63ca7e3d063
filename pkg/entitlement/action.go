package entitlement

import "github.com/juristech/lexkit/pkg/plan"

// ActionID identifies a resource-creating operation subject to quota
// checks. The set is closed: every known action maps to exactly one
// plan resource.
type ActionID string

const (
	ActionCreateCase     ActionID = "create_case"
	ActionAddClient      ActionID = "add_client"
	ActionUploadDocument ActionID = "upload_document"
	ActionInviteUser     ActionID = "invite_user"
)

// resource returns the plan resource an action consumes.
// The second return is false for ids outside the closed set; callers
// treat those as ungated (permissive default, see Engine.CanPerformAction).
func (a ActionID) resource() (plan.Resource, bool) {
	switch a {
	case ActionCreateCase:
		return plan.ResourceCases, true
	case ActionAddClient:
		return plan.ResourceClients, true
	case ActionUploadDocument:
		return plan.ResourceDocuments, true
	case ActionInviteUser:
		return plan.ResourceUsers, true
	default:
		return "", false
	}
}
