package middleware

import (
	"encoding/json"
	"net/http"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful deposit write operations after the handler
// ran. Routes are matched on their template, so path parameters never
// leak into the action lookup.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var actorID *uuid.UUID
		if r, ok := GetRequester(c); ok && r.AccountID != uuid.Nil {
			id := r.AccountID
			actorID = &id
		}

		resourceID := c.Param("id")
		if id := c.GetString(CtxResourceID); id != "" {
			resourceID = id
		}

		role, _ := c.Get(CtxRole)
		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"role":   role,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, domain.AuditResource) {
	if method != http.MethodPost {
		return "", ""
	}
	switch route {
	case "/api/v1/deposits":
		return domain.AuditActionInitiateDeposit, domain.AuditResourceDeposit
	case "/api/v1/deposits/:id/proof", "/internal/v1/deposits/:id/proof":
		return domain.AuditActionSubmitProof, domain.AuditResourceDeposit
	case "/api/v1/admin/deposits/:id/decision":
		return domain.AuditActionDecideDeposit, domain.AuditResourceDeposit
	case "/api/v1/admin/deposits/:id/retry-credit":
		return domain.AuditActionRetryCredit, domain.AuditResourceDeposit
	}
	return "", ""
}
