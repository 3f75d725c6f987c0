package routes

import (
	"craftbridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathConversations   = "/conversations"
	PathDesignApprovals = "/design-approvals"
	PathQuotes          = "/quotes"
	PathPurchases       = "/purchases"
)

func addWorkflowRoutes(rg *gin.RouterGroup, approvalHandler *handlers.DesignApprovalHandler, quoteHandler *handlers.QuoteHandler, workflowHandler *handlers.WorkflowHandler, purchaseHandler *handlers.PurchaseHandler, preferenceHandler *handlers.PreferenceHandler) {
	conversations := rg.Group(PathConversations)
	{
		conversations.POST("/:conversation_id/design-approvals", approvalHandler.Create)
		conversations.GET("/:conversation_id/design-approvals", approvalHandler.ListByConversation)
		conversations.POST("/:conversation_id/quotes", quoteHandler.Issue)
		conversations.GET("/:conversation_id/quotes", quoteHandler.ListByConversation)
		conversations.GET("/:conversation_id/workflow", workflowHandler.Summary)
		conversations.GET("/:conversation_id/eligibility", workflowHandler.Evaluate)
		conversations.POST("/:conversation_id/purchases", purchaseHandler.Finalize)
		conversations.GET("/:conversation_id/purchases", purchaseHandler.ListByConversation)
		conversations.PUT("/:conversation_id/preferences", preferenceHandler.Set)
		conversations.GET("/:conversation_id/preferences", preferenceHandler.Get)
	}

	approvals := rg.Group(PathDesignApprovals)
	{
		approvals.GET("/:id", approvalHandler.GetByID)
		approvals.PATCH("/:id/approve", approvalHandler.Approve)
		approvals.PATCH("/:id/reject", approvalHandler.Reject)
		approvals.PATCH("/:id/request-changes", approvalHandler.RequestChanges)
		approvals.PATCH("/:id/start-review", approvalHandler.StartReview)
		approvals.POST("/:id/resubmit", approvalHandler.Resubmit)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:id", quoteHandler.GetByID)
		quotes.PATCH("/:id/accept", quoteHandler.Accept)
		quotes.PATCH("/:id/reject", quoteHandler.Reject)
	}

	purchases := rg.Group(PathPurchases)
	{
		purchases.GET("/:id", purchaseHandler.GetByID)
	}
}
